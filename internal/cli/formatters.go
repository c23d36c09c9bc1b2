package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/questify/questify/internal/docstore"
	"github.com/questify/questify/internal/engine"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#3B82F6"})
	scoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

func styled(style lipgloss.Style, text string) string {
	if isColorDisabled() {
		return text
	}
	return style.Render(text)
}

// formatSearchResults renders a search response in the requested format.
func formatSearchResults(resp *engine.SearchResponse, format string) (string, error) {
	if format == "json" {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	}

	var b strings.Builder
	if len(resp.Results) == 0 {
		b.WriteString("No matching documents.\n")
		return b.String(), nil
	}

	b.WriteString(styled(headerStyle, fmt.Sprintf("Found %d result(s) in %s", len(resp.Results), resp.Duration.Round(time.Microsecond))))
	b.WriteString("\n\n")
	for i, result := range resp.Results {
		b.WriteString(fmt.Sprintf("%d. %s  %s\n", i+1,
			styled(scoreStyle, fmt.Sprintf("%.3f", result.Score)),
			result.DocID))
		if result.Preview != "" {
			b.WriteString("   ")
			b.WriteString(styled(mutedStyle, result.Preview))
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// formatDocumentList renders a stored document listing.
func formatDocumentList(docs []docstore.Document, format string) (string, error) {
	if format == "json" {
		type docView struct {
			ID       string    `json:"id"`
			Filename string    `json:"filename,omitempty"`
			Size     int64     `json:"size"`
			AddedAt  time.Time `json:"added_at"`
		}
		views := make([]docView, len(docs))
		for i, doc := range docs {
			views[i] = docView{ID: doc.ID, Filename: doc.Filename, Size: doc.Size, AddedAt: doc.AddedAt}
		}
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	}

	var b strings.Builder
	if len(docs) == 0 {
		b.WriteString("No documents stored.\n")
		return b.String(), nil
	}

	b.WriteString(styled(headerStyle, fmt.Sprintf("%d document(s)", len(docs))))
	b.WriteString("\n\n")
	for _, doc := range docs {
		b.WriteString(fmt.Sprintf("  %-24s", doc.ID))
		b.WriteString(styled(mutedStyle, fmt.Sprintf("%6d bytes  %s", doc.Size, doc.AddedAt.Format("2006-01-02 15:04"))))
		if doc.Filename != "" {
			b.WriteString(styled(mutedStyle, "  "+doc.Filename))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// formatStats renders the aggregated engine statistics.
func formatStats(stats engine.Stats, format string) (string, error) {
	if format == "json" {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	}

	var b strings.Builder
	b.WriteString(styled(headerStyle, "Index"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Documents:       %d\n", stats.Index.DocumentCount))
	b.WriteString(fmt.Sprintf("  Vocabulary:      %d terms\n", stats.Index.VocabularySize))
	b.WriteString(fmt.Sprintf("  Avg dimensions:  %.1f\n", stats.Index.AvgDimensionsPerDocument))

	b.WriteString(styled(headerStyle, "Storage"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Documents:       %d\n", stats.Storage.DocumentCount))
	b.WriteString(fmt.Sprintf("  Total size:      %d bytes\n", stats.Storage.TotalSizeBytes))
	b.WriteString(fmt.Sprintf("  Avg size:        %.1f bytes\n", stats.Storage.AvgDocumentSize))

	b.WriteString(styled(headerStyle, "Searches"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Total:           %d\n", stats.Search.TotalSearches))
	if stats.Search.TotalSearches > 0 {
		b.WriteString(fmt.Sprintf("  Last duration:   %s\n", stats.Search.LastDuration.Round(time.Microsecond)))
		b.WriteString(fmt.Sprintf("  Avg duration:    %s\n", stats.Search.AverageDuration.Round(time.Microsecond)))
	}
	return b.String(), nil
}
