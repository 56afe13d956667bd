package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/kingrea/request-desk/internal/catalog"
	"github.com/kingrea/request-desk/internal/request"
)

// editField names the request field a table edit targets.
type editField string

const (
	editPriority editField = "priority"
	editStatus   editField = "status"
)

// cellEditedMsg asks the shell to apply a by-id field update.
type cellEditedMsg struct {
	field editField
	id    int
	value string
}

var trackerHeaders = []string{"Category", "Request Name", "Priority", "Status", "Requester", "Request Date", "Time Passed"}

const (
	colPriority = 2
	colStatus   = 3

	// natural width of the table before the name column is squeezed
	wideTableWidth = 140
	minNameWidth   = 12
)

// tracker is the Request Tracking Screen. It keeps only cursor and
// dropdown state; the rows are passed in by the shell on every call.
type tracker struct {
	cursor   int
	column   editField
	dropdown *dropdown
	editID   int
	keys     KeyMap
	theme    Theme
	layout   string
	width    int
}

func newTracker(keys KeyMap, theme Theme, layout string) *tracker {
	return &tracker{
		column: editPriority,
		keys:   keys,
		theme:  theme,
		layout: layout,
	}
}

// Capturing reports whether an open dropdown owns the keyboard.
func (t *tracker) Capturing() bool {
	return t.dropdown != nil
}

// focusLast moves the row cursor to the last of n rows.
func (t *tracker) focusLast(n int) {
	t.cursor = max(0, n-1)
}

// closeDropdown drops any open edit without applying it.
func (t *tracker) closeDropdown() {
	t.dropdown = nil
	t.editID = 0
}

func (t *tracker) clamp(rows []request.Request) {
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// Update handles messages for the table.
func (t *tracker) Update(msg tea.Msg, rows []request.Request) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		t.width = size.Width
		return nil
	}
	t.clamp(rows)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if t.dropdown != nil {
			return t.handleDropdownKey(msg)
		}
		if len(rows) == 0 {
			return nil
		}
		switch {
		case key.Matches(msg, t.keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, t.keys.Down):
			if t.cursor < len(rows)-1 {
				t.cursor++
			}
		case key.Matches(msg, t.keys.Left):
			t.column = editPriority
		case key.Matches(msg, t.keys.Right):
			t.column = editStatus
		case key.Matches(msg, t.keys.EditPriority):
			t.column = editPriority
			t.openDropdown(rows[t.cursor])
		case key.Matches(msg, t.keys.EditStatus):
			t.column = editStatus
			t.openDropdown(rows[t.cursor])
		case key.Matches(msg, t.keys.Open):
			t.openDropdown(rows[t.cursor])
		}
	}
	return nil
}

func (t *tracker) openDropdown(row request.Request) {
	t.editID = row.ID
	var options []dropdownOption
	if t.column == editStatus {
		for _, status := range catalog.Statuses() {
			options = append(options, dropdownOption{Label: string(status), Value: string(status)})
		}
		t.dropdown = newDropdown(fmt.Sprintf("Status of #%d", row.ID), options, string(row.Status))
		return
	}
	for _, priority := range catalog.Priorities() {
		options = append(options, dropdownOption{Label: string(priority), Value: string(priority)})
	}
	t.dropdown = newDropdown(fmt.Sprintf("Priority of #%d", row.ID), options, string(row.Priority))
}

func (t *tracker) handleDropdownKey(msg tea.KeyMsg) tea.Cmd {
	switch t.dropdown.HandleKey(msg, t.keys) {
	case dropdownChosen:
		edit := cellEditedMsg{field: t.column, id: t.editID, value: t.dropdown.Selected().Value}
		t.dropdown = nil
		return func() tea.Msg { return edit }
	case dropdownDismissed:
		t.dropdown = nil
	}
	return nil
}

// View renders the header, the table and any open dropdown. now drives
// the Time Passed column.
func (t *tracker) View(rows []request.Request, now time.Time) string {
	t.clamp(rows)
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.theme.Accent).
		Render("⛉ Request Database")
	count := lipgloss.NewStyle().
		Foreground(t.theme.FaintText).
		Render(fmt.Sprintf("%d requests", len(rows)))
	header := title + "    " + count

	nameWidth := 0
	if t.width > 0 && t.width < wideTableWidth {
		nameWidth = max(minNameWidth, t.width-(wideTableWidth-40))
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.theme.BorderColor)).
		Headers(trackerHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return t.cellStyle(rows, row, col)
		})
	for _, req := range rows {
		name := req.Name
		if nameWidth > 0 {
			name = ansi.Truncate(name, nameWidth, "…")
		}
		tbl.Row(
			string(req.Category),
			name,
			string(req.Priority)+" ▾",
			string(req.Status)+" ▾",
			req.Requester,
			req.RequestDate.Format(t.layout),
			request.FormatTimePassed(req.RequestDate, now),
		)
	}

	sections := []string{header, tbl.Render()}
	if len(rows) == 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(t.theme.FaintText).
			Render("No requests yet. Press ctrl+n to submit one."))
	}
	if t.dropdown != nil {
		sections = append(sections, t.dropdown.Render(t.theme))
	}
	return strings.Join(sections, "\n")
}

func (t *tracker) cellStyle(rows []request.Request, row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(t.theme.Title)
	}
	if row < 0 || row >= len(rows) {
		return lipgloss.NewStyle().Padding(0, 1)
	}
	req := rows[row]
	var style lipgloss.Style
	switch col {
	case colPriority:
		style = t.theme.ToneStyle(catalog.PriorityTone(req.Priority))
	case colStatus:
		style = t.theme.ToneStyle(catalog.StatusTone(req.Status))
	default:
		style = lipgloss.NewStyle().Foreground(t.theme.NormalText).Bold(col == 1)
	}
	style = style.Padding(0, 1)
	if row == t.cursor {
		style = style.Background(t.theme.SelectedBackground)
		if (col == colPriority && t.column == editPriority) || (col == colStatus && t.column == editStatus) {
			style = style.Underline(true)
		}
	}
	return style
}
