package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <doc-id>...",
		Short: "Remove documents from the collection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, _, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, id := range args {
				if err := eng.RemoveDocument(ctx, id); err != nil {
					return fmt.Errorf("failed to remove %s: %w", id, err)
				}
				fmt.Printf("Removed %s\n", id)
			}
			return nil
		},
	}
}
