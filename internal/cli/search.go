package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/questify/questify/internal/engine"
	"github.com/questify/questify/internal/ui"
)

var (
	searchThreshold   float64
	searchMaxResults  int
	searchInteractive bool
)

func newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the document collection",
		Long: `Rank stored documents against a keyword query by cosine similarity.

Without arguments, --interactive opens a live search TUI that re-queries on
every keystroke.

Examples:
  questify search machine learning
  questify search --threshold 0.1 --max-results 3 neural networks
  questify search --interactive`,
		RunE: runSearch,
	}

	cmd.Flags().Float64VarP(&searchThreshold, "threshold", "t", -1, "minimum similarity score (0..1)")
	cmd.Flags().IntVarP(&searchMaxResults, "max-results", "n", 0, "maximum number of results")
	cmd.Flags().BoolVarP(&searchInteractive, "interactive", "i", false, "interactive search TUI")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	eng, cfg, cleanup, err := openEngine(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if searchInteractive {
		return ui.Run(eng)
	}

	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("provide a query or use --interactive")
	}

	resp, err := eng.Search(ctx, query, &engine.SearchOptions{
		Threshold:  searchThreshold,
		MaxResults: searchMaxResults,
	})
	if err != nil {
		return err
	}

	output, err := formatSearchResults(resp, cfg.Output.DefaultFormat)
	if err != nil {
		return err
	}
	fmt.Print(output)
	return nil
}
