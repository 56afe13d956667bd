package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/request-desk/internal/catalog"
)

// Theme is the color palette. Colors are ANSI 256 codes so the UI reads
// the same in tmux and plain terminals.
type Theme struct {
	Title       lipgloss.Color
	NormalText  lipgloss.Color
	FaintText   lipgloss.Color
	Accent      lipgloss.Color
	BorderColor lipgloss.Color
	HintText    lipgloss.Color
	ErrorText   lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color
	DropdownBackground lipgloss.Color

	// Tone colors, indexed by catalog.Tone.
	Tones map[catalog.Tone]lipgloss.Color
}

// DefaultTheme targets dark terminals.
var DefaultTheme = Theme{
	Title:       lipgloss.Color("255"),
	NormalText:  lipgloss.Color("252"),
	FaintText:   lipgloss.Color("245"),
	Accent:      lipgloss.Color("75"),
	BorderColor: lipgloss.Color("240"),
	HintText:    lipgloss.Color("241"),
	ErrorText:   lipgloss.Color("203"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),
	DropdownBackground: lipgloss.Color("237"),

	Tones: map[catalog.Tone]lipgloss.Color{
		catalog.ToneNeutral:   lipgloss.Color("252"),
		catalog.ToneInfo:      lipgloss.Color("80"),  // cyan
		catalog.ToneWarning:   lipgloss.Color("220"), // amber
		catalog.ToneSecondary: lipgloss.Color("245"), // gray
		catalog.TonePrimary:   lipgloss.Color("75"),  // blue
		catalog.ToneDanger:    lipgloss.Color("196"), // red
		catalog.ToneSuccess:   lipgloss.Color("114"), // green
	},
}

// ToneColor returns the color for a tone, falling back to NormalText.
func (theme Theme) ToneColor(tone catalog.Tone) lipgloss.Color {
	if color, ok := theme.Tones[tone]; ok {
		return color
	}
	return theme.NormalText
}

// ToneStyle returns a foreground style for a tone.
func (theme Theme) ToneStyle(tone catalog.Tone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.ToneColor(tone))
}
