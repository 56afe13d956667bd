package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestDropdownWrapsAndChooses(t *testing.T) {
	d := newDropdown("Priority", []dropdownOption{
		{Label: "Low", Value: "Low"},
		{Label: "Medium", Value: "Medium"},
		{Label: "High", Value: "High"},
	}, "Medium")
	if d.Cursor != 1 {
		t.Fatalf("cursor should start on the current value, got %d", d.Cursor)
	}
	d.HandleKey(keyPress(tea.KeyDown), DefaultKeyMap)
	d.HandleKey(runes("j"), DefaultKeyMap)
	if d.Selected().Value != "Low" {
		t.Fatalf("expected wrap to Low, got %s", d.Selected().Value)
	}
	d.HandleKey(runes("k"), DefaultKeyMap)
	if d.Selected().Value != "High" {
		t.Fatalf("expected wrap to High, got %s", d.Selected().Value)
	}
	if got := d.HandleKey(keyPress(tea.KeyEnter), DefaultKeyMap); got != dropdownChosen {
		t.Fatalf("enter should choose, got %d", got)
	}
	if got := d.HandleKey(keyPress(tea.KeyEsc), DefaultKeyMap); got != dropdownDismissed {
		t.Fatalf("esc should dismiss, got %d", got)
	}
}

func TestDropdownEmptyDismissesOnEnter(t *testing.T) {
	d := newDropdown("Request Name", nil, "")
	if got := d.HandleKey(keyPress(tea.KeyEnter), DefaultKeyMap); got != dropdownDismissed {
		t.Fatalf("empty dropdown should dismiss, got %d", got)
	}
	if d.Selected() != (dropdownOption{}) {
		t.Fatalf("empty dropdown should select nothing")
	}
}

func TestDropdownRenderHasEvenWidth(t *testing.T) {
	d := newDropdown("Status", []dropdownOption{
		{Label: "New", Value: "New"},
		{Label: "Waiting for Input", Value: "Waiting for Input"},
	}, "New")
	lines := strings.Split(d.Render(DefaultTheme), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected title plus two options, got %d lines", len(lines))
	}
	width := ansi.StringWidth(lines[0])
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != width {
			t.Fatalf("line %d width %d, want %d", i, w, width)
		}
	}
	if !strings.Contains(lines[1], "> New") {
		t.Fatalf("highlighted option missing marker: %q", lines[1])
	}
}
