package request

import (
	"fmt"
	"time"

	"github.com/kingrea/request-desk/internal/catalog"
)

// Store is the session's request collection. It has a single writer (the
// shell's update loop) and therefore carries no lock. Insertion order is
// display order and nothing is ever removed.
type Store struct {
	requests []Request
}

// NewStore returns an empty collection.
func NewStore() *Store {
	return &Store{}
}

// NextID returns the id the next request will receive: one past the
// largest id held, or 1 for an empty collection.
func (s *Store) NextID() int {
	highest := 0
	for _, req := range s.requests {
		if req.ID > highest {
			highest = req.ID
		}
	}
	return highest + 1
}

// Add stamps the draft with the next id, the initial status and now, then
// appends it. Incomplete drafts are rejected with ErrInvalidDraft.
func (s *Store) Add(draft Draft, now time.Time) (Request, error) {
	if missing := draft.Missing(); len(missing) > 0 {
		return Request{}, fmt.Errorf("%w: missing %v", ErrInvalidDraft, missing)
	}
	if !draft.Priority.Valid() {
		return Request{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidDraft, draft.Priority)
	}
	req := Request{
		ID:          s.NextID(),
		Category:    draft.Category,
		Name:        draft.Name,
		Requester:   draft.Requester,
		Description: draft.Description,
		Priority:    draft.Priority,
		Status:      catalog.InitialStatus,
		RequestDate: now,
	}
	s.requests = append(s.requests, req)
	return req, nil
}

// SetPriority updates the priority of the request with the given id. It
// reports false, leaving the collection untouched, when the id is unknown
// or the value is outside the enumeration.
func (s *Store) SetPriority(id int, priority catalog.Priority) bool {
	if !priority.Valid() {
		return false
	}
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.requests[idx].Priority = priority
	return true
}

// SetStatus updates the status of the request with the given id, with the
// same no-op rules as SetPriority.
func (s *Store) SetStatus(id int, status catalog.Status) bool {
	if !status.Valid() {
		return false
	}
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.requests[idx].Status = status
	return true
}

// Get returns the request with the given id.
func (s *Store) Get(id int) (Request, bool) {
	idx := s.index(id)
	if idx < 0 {
		return Request{}, false
	}
	return s.requests[idx], true
}

// All returns a snapshot of the collection in insertion order.
func (s *Store) All() []Request {
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Len returns the number of requests held.
func (s *Store) Len() int {
	return len(s.requests)
}

func (s *Store) index(id int) int {
	for i := range s.requests {
		if s.requests[i].ID == id {
			return i
		}
	}
	return -1
}
