package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addDir string
	addID  string
)

func newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [file...]",
		Short: "Add documents to the collection",
		Long: `Add one or more text files to the document collection.

Each file is stored, tokenized, and indexed. The document ID defaults to the
file name without its extension; use --id to override it for a single file.

Examples:
  questify add notes.txt
  questify add --id meeting-2026 minutes.txt
  questify add --dir ./documents`,
		RunE: runAdd,
	}

	cmd.Flags().StringVarP(&addDir, "dir", "d", "", "ingest every .txt and .md file under a directory")
	cmd.Flags().StringVar(&addID, "id", "", "document ID (single file only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && addDir == "" {
		return fmt.Errorf("provide at least one file or --dir")
	}
	if addID != "" && len(args) != 1 {
		return fmt.Errorf("--id requires exactly one file")
	}

	ctx := cmd.Context()
	eng, _, cleanup, err := openEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	added := 0
	for _, path := range args {
		id, err := eng.AddFile(ctx, path, addID)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", path, err)
		}
		fmt.Printf("Added %s\n", id)
		added++
	}

	if addDir != "" {
		count, err := eng.AddDirectory(ctx, addDir)
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", addDir, err)
		}
		fmt.Printf("Added %d document(s) from %s\n", count, addDir)
		added += count
	}

	if added == 0 {
		fmt.Println("Nothing to add.")
	}
	return nil
}
