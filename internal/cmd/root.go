// Package cmd implements the groupformer command line.
package cmd

import (
	"fmt"

	"github.com/katalvlaran/groupformer/internal/config"
	"github.com/katalvlaran/groupformer/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every subcommand of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *logging.Logger
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "groupformer",
		Short: "Form small topic-bound groups from partner and topic preferences",
		Long: `groupformer reads a roster of participants with their partner and topic
preferences, scores every pair and greedily commits the best-scoring groups,
one topic per group. Participants that cannot be placed greedily are grouped
by the leftover policy.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/groupformer/config.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text, json")
	_ = a.v.BindPFlag("logging.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", pf.Lookup("log-format"))

	root.AddCommand(newFormCmd(a), newMatrixCmd(a), newValidateCmd(a))

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// init loads configuration once flags are parsed.
func (a *app) init(cmd *cobra.Command) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	return nil
}
