package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/request-desk/internal/catalog"
	"github.com/kingrea/request-desk/internal/request"
)

type formField int

const (
	fieldNone formField = iota - 1
	fieldCategory
	fieldName
	fieldRequester
	fieldPriority
	fieldDescription
	fieldSubmit

	fieldCount = int(fieldSubmit) + 1
)

const (
	categoryPlaceholder = "Select a category"
	namePlaceholder     = "Select a request type"
	requiredHint        = "Please fill out this field."
)

// draftSubmittedMsg hands a completed draft to the shell. The form emits
// exactly one per successful submit.
type draftSubmittedMsg struct {
	draft request.Draft
}

// submitForm is the Request Submission Screen. It owns the draft and
// never assigns id, status or date; that is the shell's job.
type submitForm struct {
	draft       request.Draft
	focus       formField
	invalid     formField
	requester   textinput.Model
	description textarea.Model
	dropdown    *dropdown
	keys        KeyMap
	theme       Theme
	width       int
}

func newSubmitForm(keys KeyMap, theme Theme) *submitForm {
	requester := textinput.New()
	requester.Prompt = ""
	requester.Placeholder = "Who is asking?"

	description := textarea.New()
	description.Placeholder = "Describe the work needed"
	description.ShowLineNumbers = false
	description.SetHeight(4)

	return &submitForm{
		draft:       request.NewDraft(),
		focus:       fieldCategory,
		invalid:     fieldNone,
		requester:   requester,
		description: description,
		keys:        keys,
		theme:       theme,
	}
}

// Draft returns the current form state.
func (f *submitForm) Draft() request.Draft {
	return f.draft
}

// SetCategory changes the category. The chosen request name is left as
// is even when the new category does not offer it; it then renders as
// the placeholder and blocks submission until a valid name is picked.
func (f *submitForm) SetCategory(category catalog.Category) {
	f.draft.Category = category
	f.refreshValidity()
}

// NameOptions returns the request types offered for the selected
// category; none while the name field is disabled.
func (f *submitForm) NameOptions() []string {
	if !f.nameEnabled() {
		return nil
	}
	return catalog.RequestTypes(f.draft.Category)
}

func (f *submitForm) nameEnabled() bool {
	return f.draft.Category != ""
}

func (f *submitForm) setWidth(width int) {
	f.width = width
	inner := max(20, width-12)
	f.requester.Width = inner
	f.description.SetWidth(inner)
}

// closeDropdown drops an open select without changing the draft.
func (f *submitForm) closeDropdown() {
	f.dropdown = nil
}

// Focused reports whether a text field currently captures printable keys.
func (f *submitForm) Focused() bool {
	return f.dropdown == nil && (f.focus == fieldRequester || f.focus == fieldDescription)
}

// Capturing reports whether the form wants every key, including the
// shell's single-letter bindings.
func (f *submitForm) Capturing() bool {
	return f.dropdown != nil || f.Focused()
}

// Update handles messages for the form.
func (f *submitForm) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.setWidth(msg.Width)
		return nil

	case tea.KeyMsg:
		if f.dropdown != nil {
			f.handleDropdownKey(msg)
			return nil
		}
		switch {
		case key.Matches(msg, f.keys.Submit):
			return f.submit()
		case key.Matches(msg, f.keys.NextField):
			return f.moveFocus(1)
		case key.Matches(msg, f.keys.PrevField):
			return f.moveFocus(-1)
		}
		switch f.focus {
		case fieldCategory, fieldName, fieldPriority:
			if key.Matches(msg, f.keys.Open) {
				f.openDropdown()
			}
			return nil
		case fieldSubmit:
			if key.Matches(msg, f.keys.Open) {
				return f.submit()
			}
			return nil
		case fieldRequester:
			// Enter in a single-line field submits the form.
			if msg.Type == tea.KeyEnter {
				return f.submit()
			}
		}
	}
	return f.updateInputs(msg)
}

func (f *submitForm) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	f.requester, cmd = f.requester.Update(msg)
	cmds = append(cmds, cmd)
	f.description, cmd = f.description.Update(msg)
	cmds = append(cmds, cmd)
	f.syncDraft()
	return tea.Batch(cmds...)
}

func (f *submitForm) syncDraft() {
	f.draft.Requester = f.requester.Value()
	f.draft.Description = f.description.Value()
	f.refreshValidity()
}

// refreshValidity drops the required-field hint once its field is filled.
func (f *submitForm) refreshValidity() {
	if f.invalid == fieldNone {
		return
	}
	for _, missing := range f.draft.Missing() {
		if formFieldFor(missing) == f.invalid {
			return
		}
	}
	f.invalid = fieldNone
}

func (f *submitForm) setFocus(field formField) tea.Cmd {
	f.focus = field
	f.requester.Blur()
	f.description.Blur()
	switch field {
	case fieldRequester:
		return f.requester.Focus()
	case fieldDescription:
		return f.description.Focus()
	}
	return nil
}

// moveFocus walks the focus order, skipping the disabled name field.
func (f *submitForm) moveFocus(delta int) tea.Cmd {
	next := f.focus
	for {
		next = formField((int(next) + delta + fieldCount) % fieldCount)
		if next == fieldName && !f.nameEnabled() {
			continue
		}
		break
	}
	return f.setFocus(next)
}

func (f *submitForm) openDropdown() {
	switch f.focus {
	case fieldCategory:
		options := []dropdownOption{{Label: categoryPlaceholder}}
		for _, category := range catalog.Categories() {
			options = append(options, dropdownOption{Label: string(category), Value: string(category)})
		}
		f.dropdown = newDropdown("Category", options, string(f.draft.Category))
	case fieldName:
		if !f.nameEnabled() {
			return
		}
		options := []dropdownOption{{Label: namePlaceholder}}
		for _, name := range f.NameOptions() {
			options = append(options, dropdownOption{Label: name, Value: name})
		}
		f.dropdown = newDropdown("Request Name", options, f.visibleName())
	case fieldPriority:
		var options []dropdownOption
		for _, priority := range catalog.Priorities() {
			options = append(options, dropdownOption{Label: string(priority), Value: string(priority)})
		}
		f.dropdown = newDropdown("Priority", options, string(f.draft.Priority))
	}
}

func (f *submitForm) handleDropdownKey(msg tea.KeyMsg) {
	switch f.dropdown.HandleKey(msg, f.keys) {
	case dropdownChosen:
		f.applyChoice(f.dropdown.Selected().Value)
		f.dropdown = nil
	case dropdownDismissed:
		f.dropdown = nil
	}
}

func (f *submitForm) applyChoice(value string) {
	switch f.focus {
	case fieldCategory:
		f.SetCategory(catalog.Category(value))
	case fieldName:
		f.draft.Name = value
	case fieldPriority:
		f.draft.Priority = catalog.Priority(value)
	}
	f.refreshValidity()
}

// submit validates the draft. On failure it focuses the first missing
// field and shows the required hint; on success it emits the draft once
// and resets the form.
func (f *submitForm) submit() tea.Cmd {
	f.syncDraft()
	if !f.draft.Complete() {
		f.invalid = formFieldFor(f.draft.Missing()[0])
		return f.setFocus(f.invalid)
	}
	draft := f.draft
	f.reset()
	return func() tea.Msg {
		return draftSubmittedMsg{draft: draft}
	}
}

func (f *submitForm) reset() {
	f.draft = request.NewDraft()
	f.requester.Reset()
	f.description.Reset()
	f.dropdown = nil
	f.invalid = fieldNone
	f.setFocus(fieldCategory)
}

// visibleName is what the name select shows: the chosen name when the
// current category offers it, the placeholder value otherwise.
func (f *submitForm) visibleName() string {
	if catalog.HasRequestType(f.draft.Category, f.draft.Name) {
		return f.draft.Name
	}
	return ""
}

func formFieldFor(field request.Field) formField {
	switch field {
	case request.FieldCategory:
		return fieldCategory
	case request.FieldName:
		return fieldName
	case request.FieldRequester:
		return fieldRequester
	case request.FieldPriority:
		return fieldPriority
	case request.FieldDescription:
		return fieldDescription
	}
	return fieldNone
}

// View renders the form.
func (f *submitForm) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(f.theme.Accent).
		Render("✚ Submit New Request")

	category := string(f.draft.Category)
	name := f.visibleName()
	nameSuffix := ""
	if !f.nameEnabled() {
		nameSuffix = " (choose a category first)"
	}

	sections := []string{
		title,
		"",
		f.renderSelect(fieldCategory, "Category", category, categoryPlaceholder, ""),
		f.renderSelect(fieldName, "Request Name", name, namePlaceholder, nameSuffix),
		f.renderInput(fieldRequester, "Requester", f.requester.View()),
		f.renderSelect(fieldPriority, "Priority", string(f.draft.Priority), "", ""),
		f.renderInput(fieldDescription, "Description", f.description.View()),
		f.renderButton(),
	}
	return strings.Join(sections, "\n")
}

func (f *submitForm) renderLabel(field formField, label string) string {
	style := lipgloss.NewStyle().Foreground(f.theme.FaintText)
	marker := "  "
	if f.focus == field {
		style = style.Foreground(f.theme.Title).Bold(true)
		marker = "▸ "
	}
	line := style.Render(marker + label)
	if f.invalid == field {
		line += "  " + lipgloss.NewStyle().Foreground(f.theme.ErrorText).Render("⚠ "+requiredHint)
	}
	return line
}

func (f *submitForm) renderSelect(field formField, label, value, placeholder, suffix string) string {
	valueStyle := lipgloss.NewStyle().Foreground(f.theme.NormalText)
	shown := value
	if shown == "" {
		shown = placeholder
		valueStyle = valueStyle.Foreground(f.theme.FaintText)
	}
	body := "    " + valueStyle.Render(shown+" ▾")
	if suffix != "" {
		body += lipgloss.NewStyle().Foreground(f.theme.HintText).Render(suffix)
	}
	lines := []string{f.renderLabel(field, label), body}
	if f.dropdown != nil && f.focus == field {
		lines = append(lines, indent(f.dropdown.Render(f.theme), 4))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (f *submitForm) renderInput(field formField, label, view string) string {
	return fmt.Sprintf("%s\n%s\n", f.renderLabel(field, label), indent(view, 4))
}

func (f *submitForm) renderButton() string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.theme.BorderColor)
	if f.focus == fieldSubmit {
		style = style.Bold(true).
			Foreground(f.theme.SelectedForeground).
			BorderForeground(f.theme.Accent)
	}
	return style.Render("✔ Submit Request")
}

func indent(block string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
