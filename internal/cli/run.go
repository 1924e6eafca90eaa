package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"spiders/internal/console"
	"spiders/internal/logging"
	"spiders/internal/scenario"
	"spiders/internal/sim"
)

func runCmd(opts *options) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "run <scenario file>",
		Short: "Run every spider in a scenario file against its wall",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if format != "" {
				cfg.Output.Format = format
			}

			f, err := scenario.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("load scenario: %w", err)
			}
			rep := scenario.Run(f, logging.Component(logger, "scenario"))

			out := cmd.OutOrStdout()
			switch cfg.Output.Format {
			case "json":
				err = rep.WriteJSON(out)
			case "text":
				err = rep.WriteText(out)
			default:
				return fmt.Errorf("unknown output format %q", cfg.Output.Format)
			}
			if err != nil {
				return err
			}

			if cfg.Console.Grid && cfg.Output.Format == "text" {
				spiders := make([]*sim.Spider, 0, len(rep.Outcomes))
				for _, o := range rep.Outcomes {
					if o.Err() == nil {
						spiders = append(spiders, o.Spider)
					}
				}
				if g := console.RenderGrid(rep.Wall, cfg.Grid.MaxSize, spiders...); g != "" {
					fmt.Fprint(out, "\n"+g)
				}
			}

			if n := rep.Failed(); n > 0 {
				return fmt.Errorf("%d of %d: %w", n, len(rep.Outcomes), ErrRunsFailed)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&format, "output", "o", "", "output format (text|json)")
	return c
}
