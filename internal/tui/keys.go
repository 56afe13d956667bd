package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the whole application. Text fields
// swallow printable keys, so shell-level bindings use ctrl chords.
type KeyMap struct {
	// Shell.
	ShowSubmit    key.Binding
	ShowTrack     key.Binding
	ToggleJournal key.Binding
	ToggleHelp    key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding

	// Form.
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	// Dropdowns and table.
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Open         key.Binding
	Choose       key.Binding
	Dismiss      key.Binding
	EditPriority key.Binding
	EditStatus   key.Binding
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	ShowSubmit: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("C-n", "submit request"),
	),
	ShowTrack: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("C-t", "track requests"),
	),
	ToggleJournal: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("C-l", "journal"),
	),
	ToggleHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "submit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/←", "priority column"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("l/→", "status column"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "open"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "choose"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close"),
	),
	EditPriority: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "set priority"),
	),
	EditStatus: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "set status"),
	),
}

// formHelp and trackerHelp adapt the key map to bubbles/help for each view.
type formHelp struct{ keys KeyMap }

func (h formHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.NextField, h.keys.PrevField, h.keys.Open, h.keys.Submit, h.keys.ShowTrack, h.keys.ForceQuit}
}

func (h formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.keys.NextField, h.keys.PrevField, h.keys.Submit},
		{h.keys.Open, h.keys.Up, h.keys.Down, h.keys.Dismiss},
		{h.keys.ShowSubmit, h.keys.ShowTrack, h.keys.ToggleJournal, h.keys.ForceQuit},
	}
}

type trackerHelp struct{ keys KeyMap }

func (h trackerHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Up, h.keys.Down, h.keys.EditPriority, h.keys.EditStatus, h.keys.ShowSubmit, h.keys.ToggleHelp, h.keys.Quit}
}

func (h trackerHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.keys.Up, h.keys.Down, h.keys.Left, h.keys.Right},
		{h.keys.Open, h.keys.EditPriority, h.keys.EditStatus, h.keys.Dismiss},
		{h.keys.ShowSubmit, h.keys.ShowTrack, h.keys.ToggleJournal, h.keys.ToggleHelp, h.keys.Quit},
	}
}
