package cmd

import (
	"fmt"

	"github.com/katalvlaran/groupformer/internal/metrics"
	"github.com/katalvlaran/groupformer/internal/render"
	"github.com/katalvlaran/groupformer/rosterfile"
	"github.com/katalvlaran/groupformer/session"
	"github.com/spf13/cobra"
)

func newFormCmd(a *app) *cobra.Command {
	var (
		rosterPath  string
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Form groups from a roster document",
		Example: `  groupformer form --roster class.yaml
  groupformer form --roster class.yaml --format json --max-group-size 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rec *metrics.Recorder
			if showMetrics {
				rec = metrics.New()
			}
			s, err := a.openSession(rosterPath, rec)
			if err != nil {
				return err
			}
			done, total := s.Progress()
			if done < total {
				a.log.Warn("not every participant has submitted preferences", "submitted", done, "total", total)
			}

			res, _, err := s.Run()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := render.Result(out, a.cfg.Output.Format, res); err != nil {
				return err
			}
			if showMetrics {
				fmt.Fprintln(out)
				return rec.WriteText(out)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&rosterPath, "roster", "r", "", "roster document (YAML)")
	f.BoolVar(&showMetrics, "metrics", false, "print run metrics in Prometheus text format")
	f.String("format", "", "output format: text, json")
	f.Int("max-group-size", 0, "largest group size (2-6)")
	f.String("topic-policy", "", "topic policy: exclusive, reuse")
	f.String("tie-break", "", "tie-break: prefer-larger, first-seen")
	f.String("leftover", "", "leftover policy: chunked, single")
	f.String("scheme", "", "scoring scheme: ranked, tiered")
	_ = cmd.MarkFlagRequired("roster")

	_ = a.v.BindPFlag("output.format", f.Lookup("format"))
	_ = a.v.BindPFlag("formation.max_group_size", f.Lookup("max-group-size"))
	_ = a.v.BindPFlag("formation.topic_policy", f.Lookup("topic-policy"))
	_ = a.v.BindPFlag("formation.tie_break", f.Lookup("tie-break"))
	_ = a.v.BindPFlag("formation.leftover", f.Lookup("leftover"))
	_ = a.v.BindPFlag("scoring.scheme", f.Lookup("scheme"))

	return cmd
}

// openSession loads the roster document and builds a configured session.
func (a *app) openSession(path string, rec *metrics.Recorder) (*session.Session, error) {
	doc, err := rosterfile.Load(path)
	if err != nil {
		return nil, err
	}
	scorer, err := a.cfg.Scorer()
	if err != nil {
		return nil, err
	}
	formOpts, err := a.cfg.FormationOptions()
	if err != nil {
		return nil, err
	}

	return doc.NewSession(
		session.WithLogger(a.log),
		session.WithMetrics(rec),
		session.WithScorer(scorer),
		session.WithFormationOptions(formOpts...),
	)
}
