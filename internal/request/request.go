// internal/request/request.go
//
// Request is the unit of tracked work; Draft is the in-progress form
// state that becomes a Request once the shell stamps it.

package request

import (
	"errors"
	"time"

	"github.com/kingrea/request-desk/internal/catalog"
)

// ErrInvalidDraft is returned when a draft fails the required-field check.
var ErrInvalidDraft = errors.New("request: draft is incomplete")

// Request is a submitted work request.
type Request struct {
	ID          int
	Category    catalog.Category
	Name        string
	Requester   string
	Description string
	Priority    catalog.Priority
	Status      catalog.Status
	RequestDate time.Time
}

// Field identifies a form field of a Draft.
type Field string

const (
	FieldCategory    Field = "Category"
	FieldName        Field = "Request Name"
	FieldRequester   Field = "Requester"
	FieldPriority    Field = "Priority"
	FieldDescription Field = "Description"
)

// Draft is the submission form's working state.
type Draft struct {
	Category    catalog.Category
	Name        string
	Requester   string
	Description string
	Priority    catalog.Priority
}

// NewDraft returns the empty form state with the default priority.
func NewDraft() Draft {
	return Draft{Priority: catalog.DefaultPriority}
}

// IsNameValid reports whether Name is one of the request types Category
// offers. A category without request types never has a valid name, so
// its drafts cannot be submitted. A name left over from a previously
// chosen category is invalid unless the new category also offers it.
func (d Draft) IsNameValid() bool {
	return catalog.HasRequestType(d.Category, d.Name)
}

// Missing lists the fields that would block submission, in form order.
// Only presence is checked; whitespace counts as a value.
func (d Draft) Missing() []Field {
	var missing []Field
	if d.Category == "" {
		missing = append(missing, FieldCategory)
	}
	if d.Category != "" && !d.IsNameValid() {
		missing = append(missing, FieldName)
	}
	if d.Requester == "" {
		missing = append(missing, FieldRequester)
	}
	if d.Priority == "" {
		missing = append(missing, FieldPriority)
	}
	if d.Description == "" {
		missing = append(missing, FieldDescription)
	}
	return missing
}

// Complete reports whether the draft can be submitted.
func (d Draft) Complete() bool {
	return len(d.Missing()) == 0
}
