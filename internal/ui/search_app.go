// Package ui provides the interactive search TUI built on Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/questify/questify/internal/engine"
)

// searchResultsMsg carries the results of a completed query.
type searchResultsMsg struct {
	query   string
	results []engine.SearchResult
}

// searchErrorMsg carries a failed query.
type searchErrorMsg struct {
	query string
	err   error
}

// SearchModel is the interactive search model: a query line at the top and
// live results below, re-queried on every keystroke.
type SearchModel struct {
	engine  *engine.Engine
	styles  *Styles
	width   int
	height  int
	query   string
	results []engine.SearchResult
	cursor  int
	err     error
	ready   bool
}

// NewSearchModel creates a search model over eng.
func NewSearchModel(eng *engine.Engine) *SearchModel {
	return &SearchModel{
		engine: eng,
		styles: DefaultStyles(),
	}
}

// Init initializes the model.
func (m *SearchModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages.
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case "backspace":
			if m.query != "" {
				_, size := utf8.DecodeLastRuneInString(m.query)
				m.query = m.query[:len(m.query)-size]
				return m, m.runSearch()
			}
		case "enter":
			return m, m.runSearch()
		default:
			if msg.Type == tea.KeyRunes || msg.String() == " " {
				m.query += msg.String()
				return m, m.runSearch()
			}
		}

	case searchResultsMsg:
		// Results for a stale query arrive after the user kept typing.
		if msg.query == m.query {
			m.results = msg.results
			m.cursor = 0
			m.err = nil
		}

	case searchErrorMsg:
		if msg.query == m.query {
			m.err = msg.err
		}
	}

	return m, nil
}

// View renders the model.
func (m *SearchModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Questify Search"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Prompt.Render("> "))
	b.WriteString(m.styles.Query.Render(m.query))
	b.WriteString("█\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("search failed: %v", m.err)))
	case m.query == "":
		b.WriteString(m.styles.Muted.Render("Type to search. Esc to quit."))
	case len(m.results) == 0:
		b.WriteString(m.styles.Muted.Render("No matching documents."))
	default:
		for i, result := range m.results {
			line := fmt.Sprintf("%5.3f  %s", result.Score, result.DocID)
			if i == m.cursor {
				b.WriteString(m.styles.Selected.Render(line))
			} else {
				b.WriteString(m.styles.Score.Render(fmt.Sprintf("%5.3f", result.Score)))
				b.WriteString("  ")
				b.WriteString(m.styles.DocID.Render(result.DocID))
			}
			b.WriteString("\n")
			if preview := result.Preview; preview != "" {
				b.WriteString(m.styles.Preview.Render("       " + truncate(preview, m.width-10)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("↑/↓ select · esc quit"))

	return m.styles.Box.Width(m.width - 4).Render(b.String())
}

func (m *SearchModel) runSearch() tea.Cmd {
	query := m.query
	if strings.TrimSpace(query) == "" {
		m.results = nil
		m.cursor = 0
		return nil
	}
	return func() tea.Msg {
		resp, err := m.engine.Search(context.Background(), query, nil)
		if err != nil {
			return searchErrorMsg{query: query, err: err}
		}
		return searchResultsMsg{query: query, results: resp.Results}
	}
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Run starts the interactive search TUI and blocks until the user quits.
func Run(eng *engine.Engine) error {
	model := NewSearchModel(eng)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
