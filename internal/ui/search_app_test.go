package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pressBackspace(m *SearchModel) {
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"ascii", "cats", "cat"},
		{"accented", "café", "caf"},
		{"cjk", "猫検索", "猫検"},
		{"single rune", "é", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSearchModel(nil)
			m.query = tt.query
			pressBackspace(m)
			if m.query != tt.want {
				t.Errorf("query after backspace = %q, want %q", m.query, tt.want)
			}
		})
	}
}

func TestTypingAppendsRunes(t *testing.T) {
	m := NewSearchModel(nil)
	for _, r := range "café" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.query != "café" {
		t.Errorf("query = %q, want %q", m.query, "café")
	}
}
