package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, cfg, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			docs, err := eng.List(ctx)
			if err != nil {
				return err
			}

			output, err := formatDocumentList(docs, cfg.Output.DefaultFormat)
			if err != nil {
				return err
			}
			fmt.Print(output)
			return nil
		},
	}
}
