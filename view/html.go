package view

import (
	"fmt"
	"html/template"
	"io"

	"github.com/robertmeta/event-cards/paginate"
	"github.com/robertmeta/event-cards/store"
)

// pageTemplate mirrors the card holder page: status and pager above and below the cards.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{template "pager" .}}
<section id="card-holder">
{{- range .Cards}}
<article class="card">
<img src="{{.Event.ImageURL}}" alt="{{.Event.Title}}">
<div class="card-content">
<h2 class="card-title">{{.Event.Title}}</h2>
<p class="card-content-date">Date: {{.Event.StartDateFormatted}}</p>
<p class="card-content-location">Location: {{.Event.Location}}</p>
<button class="learn-more">{{.ToggleLabel}}</button>
<p class="description"{{if not .Expanded}} style="display: none"{{end}}>{{description .Event.Description}}</p>
</div>
</article>
{{- end}}
</section>
{{template "pager" .}}
</body>
</html>
{{define "pager"}}
<div class="pager">
<p class="count">{{.CountLine}}</p>
<p class="page-info">{{.PageInfo}}</p>
<p class="page-size">Per page: {{.PageSize}}</p>
</div>
{{end}}`

// HTMLRenderer writes a static page of event cards.
type HTMLRenderer struct {
	Title string
	tmpl  *template.Template
}

type htmlPage struct {
	Title     string
	CountLine string
	PageInfo  string
	PageSize  string
	Cards     []*Card
}

// NewHTMLRenderer parses the page template.
func NewHTMLRenderer(title string) (*HTMLRenderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		// Descriptions are feed-supplied markup and are rendered as-is.
		"description": func(s string) template.HTML { return template.HTML(s) },
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	if title == "" {
		title = "Events"
	}
	return &HTMLRenderer{Title: title, tmpl: tmpl}, nil
}

// Render writes the page for deck with the counts in st.
func (r *HTMLRenderer) Render(w io.Writer, deck *Deck, st store.Status) error {
	page := htmlPage{
		Title:     r.Title,
		CountLine: CountLine(st.Shown, st.Total),
		PageInfo:  PageInfo(st.Page, st.TotalPages),
		PageSize:  sizeLabel(st.PageSize),
		Cards:     make([]*Card, 0, deck.Len()),
	}
	for i := range deck.Cards {
		page.Cards = append(page.Cards, &deck.Cards[i])
	}

	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func sizeLabel(size paginate.PageSize) string {
	if size.IsAll() {
		return "All"
	}
	return size.String()
}
