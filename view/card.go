// Package view turns events into display units and status lines.
package view

import (
	"fmt"

	"github.com/robertmeta/event-cards/model"
)

const (
	LabelCollapsed = "Learn more"
	LabelExpanded  = "Show less"

	MsgInvalidDate = "Invalid date format. The date filter was not applied."
	MsgNoResults   = "No events match the selected filters."
)

// Card is one rendered event. Expanded controls description visibility.
type Card struct {
	Event    model.Event
	Expanded bool
}

// Toggle flips the description between shown and hidden.
func (c *Card) Toggle() {
	c.Expanded = !c.Expanded
}

// ToggleLabel is the text of the expand/collapse control.
func (c *Card) ToggleLabel() string {
	if c.Expanded {
		return LabelExpanded
	}
	return LabelCollapsed
}

// Deck is the set of cards currently on screen.
type Deck struct {
	Cards []Card
	open  map[int]bool
}

// Build replaces the cards with collapsed cards for events.
func (d *Deck) Build(events []model.Event) {
	d.Rebuild(events, false)
}

// Rebuild replaces the cards for events. With preserve set, events expanded
// earlier come back expanded, even after leaving the screen; otherwise every
// card starts collapsed.
func (d *Deck) Rebuild(events []model.Event, preserve bool) {
	if !preserve || d.open == nil {
		d.open = make(map[int]bool)
	}

	cards := make([]Card, 0, len(events))
	for _, e := range events {
		cards = append(cards, Card{Event: e, Expanded: d.open[e.ID]})
	}
	d.Cards = cards
}

// Toggle flips card i. Out-of-range indexes are ignored.
func (d *Deck) Toggle(i int) bool {
	if i < 0 || i >= len(d.Cards) {
		return false
	}
	d.Cards[i].Toggle()
	if d.open == nil {
		d.open = make(map[int]bool)
	}
	id := d.Cards[i].Event.ID
	if d.Cards[i].Expanded {
		d.open[id] = true
	} else {
		delete(d.open, id)
	}
	return true
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// CountLine renders "Showing X/Y events".
func CountLine(shown, total int) string {
	return fmt.Sprintf("Showing %d/%d events", shown, total)
}

// PageInfo renders "Page P of T".
func PageInfo(page, totalPages int) string {
	return fmt.Sprintf("Page %d of %d", page, totalPages)
}
