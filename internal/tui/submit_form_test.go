package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/request-desk/internal/catalog"
	"github.com/kingrea/request-desk/internal/request"
)

func newTestForm() *submitForm {
	return newSubmitForm(DefaultKeyMap, DefaultTheme)
}

func TestFormStartsEmptyWithMediumPriority(t *testing.T) {
	f := newTestForm()
	if f.Draft() != request.NewDraft() {
		t.Fatalf("unexpected initial draft: %+v", f.Draft())
	}
	if f.Draft().Priority != catalog.PriorityMedium {
		t.Fatalf("expected Medium priority, got %s", f.Draft().Priority)
	}
	if f.NameOptions() != nil {
		t.Fatalf("name options should be empty before a category is chosen")
	}
	view := f.View()
	for _, want := range []string{categoryPlaceholder, namePlaceholder, "(choose a category first)", "Medium"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestNameOptionsFollowCategory(t *testing.T) {
	f := newTestForm()
	f.SetCategory(catalog.CategoryDevelopmentJobs)
	got := f.NameOptions()
	want := []string{"R&D Testing Initiatives", "Software Feature Enhancement", "Technical Specification Development"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("options = %v, want %v", got, want)
	}

	f.SetCategory(catalog.CategoryAdministrativeTasks)
	if opts := f.NameOptions(); len(opts) != 0 {
		t.Fatalf("expected no administrative options, got %v", opts)
	}
	if !f.nameEnabled() {
		t.Fatalf("name field should be enabled once a category is chosen")
	}
}

func TestStaleNameIsKeptButBlocksSubmit(t *testing.T) {
	f := newTestForm()
	f.SetCategory(catalog.CategoryDevelopmentJobs)
	f.draft.Name = "Software Feature Enhancement"
	f.draft.Requester = "Ana"
	f.requester.SetValue("Ana")
	f.draft.Description = "faster exports"
	f.description.SetValue("faster exports")

	f.SetCategory(catalog.CategoryLiveJobs)
	if f.Draft().Name != "Software Feature Enhancement" {
		t.Fatalf("category change should keep the stored name, got %q", f.Draft().Name)
	}
	if f.visibleName() != "" {
		t.Fatalf("stale name should render as the placeholder")
	}
	if strings.Join(f.NameOptions(), "|") != strings.Join(catalog.RequestTypes(catalog.CategoryLiveJobs), "|") {
		t.Fatalf("options should follow the new category")
	}
	if cmd := f.submit(); cmd != nil {
		t.Fatalf("submit with a stale name must not emit")
	}
	if f.invalid != fieldName || f.focus != fieldName {
		t.Fatalf("expected name flagged and focused, got invalid=%d focus=%d", f.invalid, f.focus)
	}
	if !strings.Contains(f.View(), requiredHint) {
		t.Fatalf("required hint not shown")
	}

	// Switching back makes the stored name valid again.
	f.SetCategory(catalog.CategoryDevelopmentJobs)
	if f.invalid != fieldNone {
		t.Fatalf("hint should clear once the name is valid")
	}
	cmd := f.submit()
	if cmd == nil {
		t.Fatalf("expected submission")
	}
	msg, ok := cmd().(draftSubmittedMsg)
	if !ok || msg.draft.Name != "Software Feature Enhancement" {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestSubmitFocusesFirstMissingField(t *testing.T) {
	f := newTestForm()
	f.setFocus(fieldDescription)
	if cmd := f.Update(keyPress(tea.KeyCtrlS)); cmd != nil {
		if _, ok := cmd().(draftSubmittedMsg); ok {
			t.Fatalf("empty form must not submit")
		}
	}
	if f.focus != fieldCategory || f.invalid != fieldCategory {
		t.Fatalf("expected category flagged, got focus=%d invalid=%d", f.focus, f.invalid)
	}

	f.SetCategory(catalog.CategoryInformationRequests)
	f.draft.Name = "Labor Hours Estimation"
	f.submit()
	if f.invalid != fieldRequester || f.focus != fieldRequester {
		t.Fatalf("expected requester flagged, got invalid=%d", f.invalid)
	}
	// Typing a value clears the hint.
	f.Update(runes("Bo"))
	if f.invalid != fieldNone {
		t.Fatalf("hint should clear after typing")
	}
	f.submit()
	if f.invalid != fieldDescription {
		t.Fatalf("expected description flagged, got %d", f.invalid)
	}
}

func TestSubmitEmitsOnceAndResets(t *testing.T) {
	f := newTestForm()
	f.SetCategory(catalog.CategoryInformationRequests)
	f.draft.Name = "Tool Availability Inquiry"
	f.requester.SetValue("Cy")
	f.description.SetValue("order paper")
	f.draft.Priority = catalog.PriorityLow

	cmd := f.submit()
	if cmd == nil {
		t.Fatalf("complete draft should submit")
	}
	msg, ok := cmd().(draftSubmittedMsg)
	if !ok {
		t.Fatalf("expected draftSubmittedMsg")
	}
	want := request.Draft{
		Category:    catalog.CategoryInformationRequests,
		Name:        "Tool Availability Inquiry",
		Requester:   "Cy",
		Description: "order paper",
		Priority:    catalog.PriorityLow,
	}
	if msg.draft != want {
		t.Fatalf("draft = %+v, want %+v", msg.draft, want)
	}
	if f.Draft() != request.NewDraft() || f.requester.Value() != "" || f.description.Value() != "" {
		t.Fatalf("form not reset: %+v", f.Draft())
	}
	if f.focus != fieldCategory {
		t.Fatalf("focus should return to category")
	}
	if again := f.submit(); again != nil {
		if _, ok := again().(draftSubmittedMsg); ok {
			t.Fatalf("reset form must not submit again")
		}
	}
}

func TestEnterInRequesterSubmits(t *testing.T) {
	f := newTestForm()
	f.SetCategory(catalog.CategoryLiveJobs)
	f.draft.Name = "IMU Data Correction"
	f.description.SetValue("drift on run 4")
	f.setFocus(fieldRequester)
	f.Update(runes("Di"))
	cmd := f.Update(keyPress(tea.KeyEnter))
	if cmd == nil {
		t.Fatalf("expected enter to submit")
	}
	if msg, ok := cmd().(draftSubmittedMsg); !ok || msg.draft.Requester != "Di" {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestTabSkipsDisabledName(t *testing.T) {
	f := newTestForm()
	f.Update(keyPress(tea.KeyTab))
	if f.focus != fieldRequester {
		t.Fatalf("expected requester after tab, got %d", f.focus)
	}
	f.Update(keyPress(tea.KeyShiftTab))
	if f.focus != fieldCategory {
		t.Fatalf("expected category after shift+tab, got %d", f.focus)
	}
	f.Update(keyPress(tea.KeyShiftTab))
	if f.focus != fieldSubmit {
		t.Fatalf("focus should wrap to the submit button, got %d", f.focus)
	}

	f.setFocus(fieldCategory)
	f.SetCategory(catalog.CategoryLiveJobs)
	f.Update(keyPress(tea.KeyTab))
	if f.focus != fieldName {
		t.Fatalf("expected name once enabled, got %d", f.focus)
	}
}

func TestCategoryDropdownPlaceholderClearsCategory(t *testing.T) {
	f := newTestForm()
	f.SetCategory(catalog.CategoryLiveJobs)
	f.Update(keyPress(tea.KeyEnter))
	if f.dropdown == nil || f.dropdown.Selected().Value != string(catalog.CategoryLiveJobs) {
		t.Fatalf("dropdown should open on the current category")
	}
	f.Update(keyPress(tea.KeyUp))
	f.Update(keyPress(tea.KeyEnter))
	if f.dropdown != nil {
		t.Fatalf("dropdown should close after choosing")
	}
	if f.Draft().Category != "" || f.nameEnabled() {
		t.Fatalf("placeholder should clear the category")
	}
}

func TestAdministrativeTaskBlocksOnRequestName(t *testing.T) {
	app := newTestApp(t)
	send(t, app, keyPress(tea.KeyEnter))
	for i := 0; i < 4; i++ { // placeholder, Live, Information, Development, Administrative
		send(t, app, keyPress(tea.KeyDown))
	}
	send(t, app, keyPress(tea.KeyEnter))
	if app.form.Draft().Category != catalog.CategoryAdministrativeTasks {
		t.Fatalf("expected Administrative Tasks, got %q", app.form.Draft().Category)
	}
	send(t, app, keyPress(tea.KeyTab))
	if app.form.focus != fieldName {
		t.Fatalf("name should be focusable once a category is chosen")
	}
	send(t, app, keyPress(tea.KeyTab))
	send(t, app, runes("Eve"))
	send(t, app, keyPress(tea.KeyTab))
	send(t, app, keyPress(tea.KeyTab))
	send(t, app, runes("renew badges"))

	if cmd := send(t, app, keyPress(tea.KeyCtrlS)); cmd != nil {
		if _, ok := cmd().(draftSubmittedMsg); ok {
			t.Fatalf("draft without a request name must not be emitted")
		}
	}
	if n := len(app.Requests()); n != 0 {
		t.Fatalf("expected no requests, got %d", n)
	}
	if app.view != viewSubmit {
		t.Fatalf("blocked submit should stay on the form, got %s", app.view)
	}
	if app.form.invalid != fieldName || app.form.focus != fieldName {
		t.Fatalf("expected request name flagged, got invalid=%d focus=%d", app.form.invalid, app.form.focus)
	}
	if !strings.Contains(app.View(), requiredHint) {
		t.Fatalf("required hint not shown")
	}
	draft := app.form.Draft()
	if draft.Requester != "Eve" || draft.Description != "renew badges" {
		t.Fatalf("blocked submit must keep the typed values: %+v", draft)
	}
}
