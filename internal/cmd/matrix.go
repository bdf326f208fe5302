package cmd

import (
	"github.com/katalvlaran/groupformer/internal/render"
	"github.com/spf13/cobra"
)

func newMatrixCmd(a *app) *cobra.Command {
	var rosterPath string

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the pairwise score matrix of a roster document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openSession(rosterPath, nil)
			if err != nil {
				return err
			}
			m, err := s.BuildScoreMatrix()
			if err != nil {
				return err
			}
			names := make([]string, 0, s.Roster().Len())
			for _, p := range s.Roster().Participants() {
				names = append(names, p.Name)
			}

			return render.Matrix(cmd.OutOrStdout(), m, names)
		},
	}
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "roster document (YAML)")
	_ = cmd.MarkFlagRequired("roster")

	return cmd
}
