// Package filter narrows event lists by title, description and start date.
//
// Every function here is pure: the input slice is never modified and the
// returned slice keeps feed order.
package filter

import (
	"errors"
	"strings"
	"time"

	"github.com/robertmeta/event-cards/model"
)

// ErrInvalidDate is returned by ByDate when the criterion cannot be parsed.
var ErrInvalidDate = errors.New("invalid date criterion")

// Criteria holds the three user-supplied filter inputs.
type Criteria struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

// BuildCriteria constructs Criteria from raw inputs, trimming surrounding space.
func BuildCriteria(title, description, date string) Criteria {
	return Criteria{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Date:        strings.TrimSpace(date),
	}
}

// IsEmpty returns true when no criterion would narrow the list.
func (c Criteria) IsEmpty() bool {
	return c.Title == "" && c.Description == "" && c.Date == ""
}

// Result is the outcome of Apply.
type Result struct {
	Events []model.Event
	// DateIgnored is set when a date criterion was given but could not be parsed.
	DateIgnored bool
	applied     bool
}

// NoResults reports an empty result from an applied filter, as opposed to no filter at all.
func (r Result) NoResults() bool {
	return r.applied && len(r.Events) == 0
}

// ByTitle keeps events whose title contains query, ignoring case.
func ByTitle(events []model.Event, query string) []model.Event {
	return matching(events, query, func(e *model.Event) string { return e.Title })
}

// ByDescription keeps events whose description contains query, ignoring case.
func ByDescription(events []model.Event, query string) []model.Event {
	return matching(events, query, func(e *model.Event) string { return e.Description })
}

// ByDate keeps events starting on the calendar day named by raw.
// Only events with a valid start date can match. An unparseable raw value
// leaves events unchanged and returns ErrInvalidDate.
func ByDate(events []model.Event, raw string, loc *time.Location) ([]model.Event, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return events, nil
	}

	day, err := model.ParseDate(raw, loc)
	if err != nil {
		return events, ErrInvalidDate
	}

	out := make([]model.Event, 0, len(events))
	for i := range events {
		if events[i].HasDate() && model.SameDay(day, events[i].StartDate) {
			out = append(out, events[i])
		}
	}
	return out, nil
}

// Apply chains title, description and date filters, each consuming the previous output.
func Apply(events []model.Event, c Criteria, loc *time.Location) Result {
	res := Result{applied: !c.IsEmpty()}

	out := ByTitle(events, c.Title)
	out = ByDescription(out, c.Description)

	dated, err := ByDate(out, c.Date, loc)
	if errors.Is(err, ErrInvalidDate) {
		res.DateIgnored = true
	}
	res.Events = dated

	return res
}

func matching(events []model.Event, query string, field func(*model.Event) string) []model.Event {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return events
	}

	out := make([]model.Event, 0, len(events))
	for i := range events {
		if strings.Contains(strings.ToLower(field(&events[i])), query) {
			out = append(out, events[i])
		}
	}
	return out
}
