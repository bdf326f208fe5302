package cmd

import (
	"fmt"

	"github.com/katalvlaran/groupformer/roster"
	"github.com/katalvlaran/groupformer/rosterfile"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var rosterPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a roster document without forming groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := rosterfile.Load(rosterPath)
			if err != nil {
				return err
			}
			r, err := roster.New(doc.Names(), doc.Topics)
			if err != nil {
				return err
			}
			if err := doc.Apply(r); err != nil {
				return err
			}
			prefs, err := doc.Resolve()
			if err != nil {
				return err
			}
			a.log.Debug("roster validated", "path", rosterPath)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d participants, %d topics, %d with preferences)\n",
				rosterPath, r.Len(), len(r.Topics()), len(prefs))
			return err
		},
	}
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "roster document (YAML)")
	_ = cmd.MarkFlagRequired("roster")

	return cmd
}
