package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dropdownOption is a single selectable item.
type dropdownOption struct {
	Label string
	Value string
}

// dropdownResult tells the owner what a key did to an open dropdown.
type dropdownResult int

const (
	dropdownPending dropdownResult = iota
	dropdownChosen
	dropdownDismissed
)

// dropdown is the terminal stand-in for a <select>: it captures keyboard
// input while open (up/down to move, enter to choose, esc to dismiss).
// The owning screen decides what the chosen value mutates.
type dropdown struct {
	Title   string
	Options []dropdownOption
	Cursor  int
}

// newDropdown opens a dropdown with the cursor on the option whose value
// matches current, or on the first option.
func newDropdown(title string, options []dropdownOption, current string) *dropdown {
	d := &dropdown{Title: title, Options: options}
	for i, option := range options {
		if option.Value == current {
			d.Cursor = i
			break
		}
	}
	return d
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (d *dropdown) MoveUp() {
	d.Cursor--
	if d.Cursor < 0 {
		d.Cursor = len(d.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (d *dropdown) MoveDown() {
	d.Cursor++
	if d.Cursor >= len(d.Options) {
		d.Cursor = 0
	}
}

// Selected returns the highlighted option.
func (d *dropdown) Selected() dropdownOption {
	if len(d.Options) == 0 {
		return dropdownOption{}
	}
	return d.Options[d.Cursor]
}

// HandleKey applies a key press.
func (d *dropdown) HandleKey(msg tea.KeyMsg, keys KeyMap) dropdownResult {
	switch {
	case key.Matches(msg, keys.Dismiss):
		return dropdownDismissed
	case key.Matches(msg, keys.Choose):
		if len(d.Options) == 0 {
			return dropdownDismissed
		}
		return dropdownChosen
	case key.Matches(msg, keys.Up):
		d.MoveUp()
	case key.Matches(msg, keys.Down):
		d.MoveDown()
	}
	return dropdownPending
}

// Render draws the option list with a solid background. Every line has
// the same visible width; the highlighted option is inverted.
func (d *dropdown) Render(theme Theme) string {
	maxLabelWidth := ansi.StringWidth(d.Title)
	for _, option := range d.Options {
		if w := ansi.StringWidth(option.Label); w > maxLabelWidth {
			maxLabelWidth = w
		}
	}
	// " > LABEL " : marker, space, label, then one column of padding.
	innerWidth := 2 + maxLabelWidth

	base := lipgloss.NewStyle().
		Background(theme.DropdownBackground).
		Foreground(theme.NormalText)
	selected := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground).
		Bold(true)
	title := base.Foreground(theme.FaintText)

	pad := func(content string) string {
		if gap := innerWidth - ansi.StringWidth(content); gap > 0 {
			content += strings.Repeat(" ", gap)
		}
		return " " + content + " "
	}

	lines := []string{title.Render(pad(d.Title))}
	for index, option := range d.Options {
		if index == d.Cursor {
			lines = append(lines, selected.Render(pad("> "+option.Label)))
			continue
		}
		lines = append(lines, base.Render(pad("  "+option.Label)))
	}
	if len(d.Options) == 0 {
		lines = append(lines, base.Render(pad("  (no options)")))
	}
	return strings.Join(lines, "\n")
}
