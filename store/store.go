// Package store holds the loaded events and the state every view is derived from.
package store

import (
	"time"

	"github.com/robertmeta/event-cards/filter"
	"github.com/robertmeta/event-cards/model"
	"github.com/robertmeta/event-cards/paginate"
)

// Store owns the full event collection, the active filtered subset and the page cursor.
// It is not safe for concurrent use; a single controller drives it.
type Store struct {
	all      []model.Event
	active   []model.Event
	criteria filter.Criteria
	filtered bool
	cursor   paginate.Cursor
	loc      *time.Location
}

// Outcome reports what a filter submission produced.
type Outcome struct {
	Matched     int
	DateIgnored bool
	NoResults   bool
}

// Status summarises the current view for count and page lines.
type Status struct {
	Shown      int
	Total      int
	Page       int
	TotalPages int
	PageSize   paginate.PageSize
}

// New creates a Store over events in feed order, showing all of them on one page.
// A nil loc means time.Local for date criteria.
func New(events []model.Event, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{
		all:    events,
		active: events,
		cursor: paginate.NewCursor(paginate.All),
		loc:    loc,
	}
}

// All returns the full collection.
func (s *Store) All() []model.Event {
	return s.all
}

// Active returns the events currently eligible for display.
func (s *Store) Active() []model.Event {
	return s.active
}

// Total returns the size of the full collection.
func (s *Store) Total() int {
	return len(s.all)
}

// ActiveCount returns the size of the active subset.
func (s *Store) ActiveCount() int {
	return len(s.active)
}

// Criteria returns the last submitted criteria.
func (s *Store) Criteria() filter.Criteria {
	return s.criteria
}

// FilterActive returns true while a non-empty filter is applied.
func (s *Store) FilterActive() bool {
	return s.filtered
}

// Cursor returns a copy of the page cursor.
func (s *Store) Cursor() paginate.Cursor {
	return s.cursor
}

// Submit filters the full collection with c and returns to page 1.
func (s *Store) Submit(c filter.Criteria) Outcome {
	res := filter.Apply(s.all, c, s.loc)

	s.criteria = c
	s.filtered = !c.IsEmpty()
	s.active = res.Events
	s.cursor.Page = 1

	return Outcome{
		Matched:     len(res.Events),
		DateIgnored: res.DateIgnored,
		NoResults:   res.NoResults(),
	}
}

// Clear drops all filters and restores page 1 showing everything.
func (s *Store) Clear() {
	s.criteria = filter.Criteria{}
	s.filtered = false
	s.active = s.all
	s.cursor.Reset()
}

// SetPageSize changes the page size, returning to page 1.
func (s *Store) SetPageSize(size paginate.PageSize) {
	s.cursor.SetSize(size)
}

// GoTo jumps to page, clamped into range.
func (s *Store) GoTo(page int) {
	s.cursor.Page = page
	s.cursor.Clamp(len(s.active))
}

// Next moves to the next page if there is one.
func (s *Store) Next() bool {
	return s.cursor.Next(len(s.active))
}

// Previous moves to the previous page if there is one.
func (s *Store) Previous() bool {
	return s.cursor.Previous()
}

// Page returns the visible slice of the active subset.
func (s *Store) Page() paginate.Page[model.Event] {
	return paginate.Slice(s.active, s.cursor.Size, s.cursor.Page)
}

// Status returns counts for the current page.
func (s *Store) Status() Status {
	p := s.Page()
	return Status{
		Shown:      len(s.active),
		Total:      len(s.all),
		Page:       p.Number,
		TotalPages: p.TotalPages,
		PageSize:   s.cursor.Size,
	}
}
