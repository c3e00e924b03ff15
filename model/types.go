// Package model defines the core data structures for event-cards.
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Display defaults applied at parse time so no field is ever left empty downstream.
const (
	DefaultTitle       = "No Title"
	DefaultLocation    = "No Location"
	DefaultDescription = "No Description"
	DefaultImage       = "learning.jpg"

	NoDate      = "No Date"
	InvalidDate = "Invalid Date"
)

// DisplayDateLayout renders dates as "Friday, March 15, 2024".
const DisplayDateLayout = "Monday, January 2, 2006"

// ErrUnparseableDate is returned by ParseDate when no layout matches.
var ErrUnparseableDate = errors.New("unparseable date")

// DateStatus tells apart an absent start date from one that failed to parse.
type DateStatus int

const (
	DateMissing DateStatus = iota
	DateInvalid
	DateValid
)

func (s DateStatus) String() string {
	switch s {
	case DateValid:
		return "valid"
	case DateInvalid:
		return "invalid"
	default:
		return "missing"
	}
}

// MarshalText encodes the status by name.
func (s DateStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Event is one normalized feed item. Events are not modified after parsing.
type Event struct {
	ID                 int        `json:"id"`
	Title              string     `json:"title"`
	StartDateRaw       string     `json:"start_date_raw,omitempty"`
	DateStatus         DateStatus `json:"date_status"`
	StartDate          time.Time  `json:"start_date"`
	StartDateFormatted string     `json:"start_date_formatted"`
	Location           string     `json:"location"`
	Description        string     `json:"description"`
	ImageURL           string     `json:"image_url"`
}

// HasDate returns true if the event carries a parseable start date.
func (e *Event) HasDate() bool {
	return e.DateStatus == DateValid
}

// SetStartDate records the raw start date and derives the formatted value.
// present is false when the source item had no start date element at all.
func (e *Event) SetStartDate(raw string, present bool, loc *time.Location) {
	if !present {
		e.DateStatus = DateMissing
		e.StartDateFormatted = NoDate
		return
	}

	e.StartDateRaw = raw
	t, err := ParseDate(raw, loc)
	if err != nil {
		e.DateStatus = DateInvalid
		e.StartDateFormatted = InvalidDate
		return
	}

	e.DateStatus = DateValid
	e.StartDate = t
	e.StartDateFormatted = FormatDate(t)
}

// extraLayouts are tried before dateparse so the display format round-trips.
var extraLayouts = []string{
	DisplayDateLayout,
	"Mon, January 2, 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDate parses a free-form calendar date-time in loc.
// A nil loc means time.Local.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparseableDate
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range extraLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, ErrUnparseableDate
	}
	return t.In(loc), nil
}

// FormatDate renders t in the long en-US form used on cards.
func FormatDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
