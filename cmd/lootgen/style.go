package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Yalort/lootgen/internal/loot"
)

type styles struct {
	common  lipgloss.Style
	rare    lipgloss.Style
	epic    lipgloss.Style
	detail  lipgloss.Style
	summary lipgloss.Style
	warning lipgloss.Style
}

// newStyles binds styles to w so colour is only emitted on terminals.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		common:  r.NewStyle().Foreground(lipgloss.Color("252")),
		rare:    r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		epic:    r.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		detail:  r.NewStyle().Foreground(lipgloss.Color("243")),
		summary: r.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

func (s styles) name(it loot.Item) string {
	switch {
	case it.Rarity >= 20:
		return s.epic.Render(it.Name)
	case it.Rarity >= 5:
		return s.rare.Render(it.Name)
	default:
		return s.common.Render(it.Name)
	}
}
