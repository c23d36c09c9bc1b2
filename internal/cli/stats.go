package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show index and storage statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, cfg, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := eng.Stats(ctx)
			if err != nil {
				return err
			}

			output, err := formatStats(stats, cfg.Output.DefaultFormat)
			if err != nil {
				return err
			}
			fmt.Print(output)
			return nil
		},
	}
}
