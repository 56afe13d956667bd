// internal/catalog/catalog.go
//
// Reference data shared by both screens: the category → request type
// taxonomy and the fixed status and priority enumerations. Nothing here
// is mutated at runtime; accessors hand out copies.

package catalog

// Category names a group of request types.
type Category string

const (
	CategoryLiveJobs            Category = "Live Jobs"
	CategoryInformationRequests Category = "Information Requests"
	CategoryDevelopmentJobs     Category = "Development Jobs"
	CategoryAdministrativeTasks Category = "Administrative Tasks"
)

// Status tracks where a request is in its lifecycle.
type Status string

const (
	StatusNew             Status = "New"
	StatusInProgress      Status = "In Progress"
	StatusWaitingForInput Status = "Waiting for Input"
	StatusInReview        Status = "In Review"
	StatusOnHold          Status = "On Hold"
	StatusCompleted       Status = "Completed"
	StatusCancelled       Status = "Cancelled"
)

// Priority ranks how urgently a request should be handled.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

const (
	// DefaultPriority is preselected on a fresh submission form.
	DefaultPriority = PriorityMedium

	// InitialStatus is stamped on every newly created request.
	InitialStatus = StatusNew
)

type categoryEntry struct {
	category Category
	types    []string
}

// taxonomy keeps display order, which a map would lose.
var taxonomy = []categoryEntry{
	{
		category: CategoryLiveJobs,
		types: []string{
			"Tool Requisition Processing",
			"Field Emergency Response",
			"Inspection Scheduling",
			"ILI Data Review",
			"DAR (Data Acquisition Report) Management",
			"IMU Data Correction",
			"Quality Assurance and Defect Assessment",
			"Equipment Calibration",
			"Engineering and Production Support",
			"Data Quality Management",
		},
	},
	{
		category: CategoryInformationRequests,
		types: []string{
			"Tool Availability Inquiry",
			"Personnel Availability Check",
			"Pigging Reference Information",
			"ILI Methodology Consultation",
			"ESF Growth Analysis Inquiry",
			"Inspection Cost Estimation",
			"Labor Hours Estimation",
			"Project Resource Allocation Inquiry",
			"Project History Retrieval",
			"Client Presentation Preparation",
			"ILI Project Budget Draft (Bidding Phase)",
		},
	},
	{
		category: CategoryDevelopmentJobs,
		types: []string{
			"R&D Testing Initiatives",
			"Software Feature Enhancement",
			"Technical Specification Development",
		},
	},
	{
		category: CategoryAdministrativeTasks,
		types:    []string{},
	},
}

var statuses = []Status{
	StatusNew,
	StatusInProgress,
	StatusWaitingForInput,
	StatusInReview,
	StatusOnHold,
	StatusCompleted,
	StatusCancelled,
}

var priorities = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityUrgent,
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(taxonomy))
	for i, entry := range taxonomy {
		out[i] = entry.category
	}
	return out
}

// RequestTypes returns the ordered request types for a category. Unknown
// categories (including the empty string) yield nil; Administrative Tasks
// yields an empty, non-nil slice.
func RequestTypes(category Category) []string {
	for _, entry := range taxonomy {
		if entry.category == category {
			out := make([]string, len(entry.types))
			copy(out, entry.types)
			return out
		}
	}
	return nil
}

// HasRequestType reports whether name is one of the category's types.
func HasRequestType(category Category, name string) bool {
	for _, candidate := range RequestTypes(category) {
		if candidate == name {
			return true
		}
	}
	return false
}

// Statuses returns the status enumeration in display order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// Priorities returns the priority enumeration in display order.
func Priorities() []Priority {
	out := make([]Priority, len(priorities))
	copy(out, priorities)
	return out
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return RequestTypes(c) != nil
}

// Valid reports whether s is part of the status enumeration.
func (s Status) Valid() bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// Valid reports whether p is part of the priority enumeration.
func (p Priority) Valid() bool {
	for _, candidate := range priorities {
		if candidate == p {
			return true
		}
	}
	return false
}
