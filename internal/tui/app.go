// internal/tui/app.go
//
// This is the application shell for the request desk. It uses bubbletea,
// which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The shell is the single writer of the request collection. The two
// screens (submission form and tracking table) only receive data through
// method parameters and report back with messages.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/kingrea/request-desk/internal/catalog"
	"github.com/kingrea/request-desk/internal/config"
	"github.com/kingrea/request-desk/internal/logbook"
	"github.com/kingrea/request-desk/internal/logging"
	"github.com/kingrea/request-desk/internal/request"
)

// appView represents which screen is showing
type appView int

const (
	viewSubmit appView = iota // Request submission form
	viewTrack                 // Request tracking table
)

func (v appView) String() string {
	if v == viewTrack {
		return "Track Requests"
	}
	return "Submit Request"
}

const journalLines = 8

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithNow overrides the wall clock used to stamp new requests and to seed
// the displayed time.
func WithNow(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// WithLogger routes structured logs to logger.
func WithLogger(logger *logging.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithJournal replaces the file-backed session journal.
func WithJournal(book *logbook.Logbook) AppOption {
	return func(a *App) {
		if book != nil {
			a.logbook = book
		}
	}
}

// WithSessionID sets the id recorded in the journal; a random one is
// generated otherwise.
func WithSessionID(id string) AppOption {
	return func(a *App) {
		a.sessionID = strings.TrimSpace(id)
	}
}

// App is the main application model. It owns the request collection, the
// clock and the active view.
type App struct {
	view      appView
	config    *config.Config
	store     *request.Store
	clock     clock
	now       func() time.Time
	logbook   *logbook.Logbook
	logger    *logging.Logger
	sessionID string

	// Screens
	form    *submitForm
	tracker *tracker

	// UI chrome
	help        help.Model
	keys        KeyMap
	theme       Theme
	showJournal bool
	statusMsg   string
	quitting    bool

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates a new App instance
func NewApp(cfg *config.Config, opts ...AppOption) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tui: config is required")
	}
	app := &App{
		view:        viewSubmit,
		config:      cfg,
		store:       request.NewStore(),
		now:         time.Now,
		help:        help.New(),
		keys:        DefaultKeyMap,
		theme:       DefaultTheme,
		showJournal: cfg.ShowJournal(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	if app.sessionID == "" {
		app.sessionID = uuid.NewString()
	}
	if app.logger == nil {
		app.logger = logging.Discard()
	}
	if app.logbook == nil {
		lb, err := logbook.New(cfg.JournalPath())
		if err != nil {
			return nil, fmt.Errorf("tui: open journal: %w", err)
		}
		app.logbook = lb
	}
	app.clock = newClock(app.now())
	app.form = newSubmitForm(app.keys, app.theme)
	app.tracker = newTracker(app.keys, app.theme, cfg.TimestampLayout())
	app.logInfo("Session opened · %s", shortSessionID(app.sessionID))
	return app, nil
}

// Requests returns a snapshot of the collection in display order.
func (a *App) Requests() []request.Request {
	return a.store.All()
}

// UpdatePriority sets the priority of one request. Unknown ids leave the
// collection untouched.
func (a *App) UpdatePriority(id int, priority catalog.Priority) bool {
	before, _ := a.store.Get(id)
	if !a.store.SetPriority(id, priority) {
		a.logger.Debug("priority edit ignored", "id", id, "priority", string(priority))
		return false
	}
	a.logger.Info("priority changed",
		"id", id,
		"from", string(before.Priority),
		"to", string(priority),
		"tone", catalog.PriorityTone(priority).String(),
	)
	a.logInfo("Request #%d priority · %s → %s", id, before.Priority, priority)
	a.statusMsg = fmt.Sprintf("Request #%d priority set to %s", id, priority)
	return true
}

// UpdateStatus sets the status of one request. Unknown ids leave the
// collection untouched.
func (a *App) UpdateStatus(id int, status catalog.Status) bool {
	before, _ := a.store.Get(id)
	if !a.store.SetStatus(id, status) {
		a.logger.Debug("status edit ignored", "id", id, "status", string(status))
		return false
	}
	a.logger.Info("status changed",
		"id", id,
		"from", string(before.Status),
		"to", string(status),
		"tone", catalog.StatusTone(status).String(),
	)
	a.logInfo("Request #%d status · %s → %s", id, before.Status, status)
	a.statusMsg = fmt.Sprintf("Request #%d status set to %s", id, status)
	return true
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init starts the clock.
func (a *App) Init() tea.Cmd {
	return a.clock.start()
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		inner := tea.WindowSizeMsg{Width: max(0, msg.Width-4), Height: msg.Height}
		a.form.Update(inner)
		a.tracker.Update(inner, nil)
		return a, nil

	case tickMsg:
		return a, a.clock.update(msg)

	case draftSubmittedMsg:
		return a.handleDraftSubmitted(msg)

	case cellEditedMsg:
		return a.handleCellEdited(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.ForceQuit):
			return a.quit()
		case key.Matches(msg, a.keys.ShowSubmit):
			a.showView(viewSubmit)
			return a, nil
		case key.Matches(msg, a.keys.ShowTrack):
			a.showView(viewTrack)
			return a, nil
		case key.Matches(msg, a.keys.ToggleJournal):
			a.showJournal = !a.showJournal
			return a, nil
		}
		if a.view == viewTrack && !a.tracker.Capturing() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a.quit()
			case key.Matches(msg, a.keys.ToggleHelp):
				a.help.ShowAll = !a.help.ShowAll
				return a, nil
			}
		}
	}

	switch a.view {
	case viewSubmit:
		return a, a.form.Update(msg)
	case viewTrack:
		return a, a.tracker.Update(msg, a.store.All())
	}
	return a, nil
}

// handleDraftSubmitted stamps and stores a draft, then shows the table so
// the user sees the new entry.
func (a *App) handleDraftSubmitted(msg draftSubmittedMsg) (tea.Model, tea.Cmd) {
	req, err := a.store.Add(msg.draft, a.now())
	if err != nil {
		a.logger.Error("draft rejected", "error", err)
		a.logError("Submission rejected: %v", err)
		a.statusMsg = fmt.Sprintf("Submission rejected: %v", err)
		return a, nil
	}
	a.logger.Info("request created",
		"id", req.ID,
		"category", string(req.Category),
		"name", req.Name,
		"priority", string(req.Priority),
	)
	a.logInfo("Request #%d submitted · %s · %s", req.ID, req.Category, req.Requester)
	a.statusMsg = fmt.Sprintf("Request #%d submitted", req.ID)
	a.tracker.focusLast(a.store.Len())
	a.showView(viewTrack)
	return a, nil
}

func (a *App) handleCellEdited(msg cellEditedMsg) (tea.Model, tea.Cmd) {
	switch msg.field {
	case editPriority:
		a.UpdatePriority(msg.id, catalog.Priority(msg.value))
	case editStatus:
		a.UpdateStatus(msg.id, catalog.Status(msg.value))
	}
	return a, nil
}

func (a *App) showView(v appView) {
	if a.view != v {
		a.logger.Debug("view changed", "view", v.String())
	}
	a.view = v
	a.help.ShowAll = false
	a.form.closeDropdown()
	a.tracker.closeDropdown()
}

// quit stops the clock before handing control back to bubbletea.
func (a *App) quit() (tea.Model, tea.Cmd) {
	a.clock.stop()
	a.quitting = true
	a.logInfo("Session closed · %d request(s)", a.store.Len())
	a.logger.Info("session closed", "requests", a.store.Len())
	return a, tea.Quit
}

// View renders the current state to a string.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	var panel, footer string
	switch a.view {
	case viewSubmit:
		panel = a.form.View()
		footer = a.help.View(formHelp{keys: a.keys})
	case viewTrack:
		panel = a.tracker.View(a.store.All(), a.clock.now)
		footer = a.help.View(trackerHelp{keys: a.keys})
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.theme.BorderColor).
		Padding(0, 1).
		Render(panel)

	sections := []string{a.renderHeader(), a.renderNav(), box}
	if a.showJournal {
		if journal := a.renderJournalPanel(); journal != "" {
			sections = append(sections, journal)
		}
	}
	if a.statusMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(a.theme.FaintText).
			Render(a.statusMsg))
	}
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.theme.Title).
		Render("Department Requests Manager")
	clockLine := lipgloss.NewStyle().
		Foreground(a.theme.FaintText).
		Render("◷ " + a.clock.now.Format(a.config.TimestampLayout()))
	header := lipgloss.JoinVertical(lipgloss.Center, title, clockLine)
	if a.width > 0 {
		header = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header)
	}
	return header + "\n"
}

func (a *App) renderNav() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		Foreground(a.theme.SelectedForeground).
		Background(a.theme.Accent)
	inactive := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(a.theme.FaintText)
	render := func(v appView, hint string) string {
		label := fmt.Sprintf("%s (%s)", v.String(), hint)
		if a.view == v {
			return active.Render(label)
		}
		return inactive.Render(label)
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top,
		render(viewSubmit, a.keys.ShowSubmit.Help().Key),
		"  ",
		render(viewTrack, a.keys.ShowTrack.Help().Key),
	)
	if a.width > 0 {
		nav = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, nav)
	}
	return nav + "\n"
}

func (a *App) renderJournalPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(journalLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "memory"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.theme.Accent).
		Render(fmt.Sprintf("JOURNAL · %s · %d entries", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(a.theme.FaintText).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.theme.BorderColor).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

func shortSessionID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
