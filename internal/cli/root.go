// Package cli wires the spiders commands together.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"spiders/internal/config"
	"spiders/internal/console"
	"spiders/internal/logging"
)

// ErrRunsFailed is returned by the run command when any spider ended in error.
var ErrRunsFailed = errors.New("one or more spiders failed")

type options struct {
	configPath string
	logLevel   string
	grid       bool
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, ErrRunsFailed) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "spiders",
		Short:        "Move robotic spiders around a wall",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			session := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logging.Component(logger, "console"))
			return session.Run()
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&opts.grid, "grid", false, "draw the wall after each run")

	cmd.AddCommand(runCmd(opts))
	return cmd
}

// setup loads config, applies flag overrides and builds the logger.
func (o *options) setup(logOut io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.grid {
		cfg.Console.Grid = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, logging.New(cfg.Log, logOut), nil
}
