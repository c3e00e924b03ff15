package view

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/lipgloss"
	"github.com/robertmeta/event-cards/store"
)

var spaceRun = regexp.MustCompile(`[ \t\r\f\v]+`)

// TextRenderer draws cards for a terminal.
type TextRenderer struct {
	Theme Theme
	Width int
}

// NewTextRenderer returns a renderer with the given theme. A width of 0 disables wrapping.
func NewTextRenderer(th Theme, width int) *TextRenderer {
	return &TextRenderer{Theme: th, Width: width}
}

// Card renders one card. active highlights the selected card.
func (r *TextRenderer) Card(c *Card, active bool) string {
	th := r.Theme
	lines := []string{
		th.Title.Render(c.Event.Title),
		th.MetaLabel.Render("Date:") + " " + th.MetaValue.Render(c.Event.StartDateFormatted),
		th.MetaLabel.Render("Location:") + " " + th.MetaValue.Render(c.Event.Location),
		th.MetaLabel.Render("Image:") + " " + th.MetaValue.Render(c.Event.ImageURL),
	}
	if c.Expanded {
		lines = append(lines, "", th.Body.Render(r.wrap(PlainText(c.Event.Description))))
	}
	lines = append(lines, th.Toggle.Render("["+c.ToggleLabel()+"]"))

	style := th.Card
	if active {
		style = th.ActiveCard
	}
	if r.Width > 4 {
		style = style.Width(r.Width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Header renders the count line, page info and page size.
func (r *TextRenderer) Header(st store.Status) string {
	return r.Theme.Status.Render(fmt.Sprintf("%s | %s | Per page: %s",
		CountLine(st.Shown, st.Total), PageInfo(st.Page, st.TotalPages), sizeLabel(st.PageSize)))
}

// Cards renders every card in deck; selected is the highlighted index or -1.
func (r *TextRenderer) Cards(deck *Deck, selected int) string {
	if deck.Len() == 0 {
		return r.Theme.MetaLabel.Render("No events to show.")
	}
	blocks := make([]string, 0, deck.Len())
	for i := range deck.Cards {
		blocks = append(blocks, r.Card(&deck.Cards[i], i == selected))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// Render writes header, cards and footer for non-interactive output.
func (r *TextRenderer) Render(w io.Writer, deck *Deck, st store.Status) error {
	header := r.Header(st)
	_, err := fmt.Fprintf(w, "%s\n\n%s\n\n%s\n", header, r.Cards(deck, -1), header)
	return err
}

func (r *TextRenderer) wrap(s string) string {
	if r.Width <= 8 {
		return s
	}
	return lipgloss.NewStyle().Width(r.Width - 6).Render(s)
}

// PlainText strips markup from an event description for terminal display.
// Input that is not valid markup is returned with whitespace collapsed.
func PlainText(description string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return collapse(description)
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, li, div").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	return collapse(doc.Text())
}

func collapse(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
