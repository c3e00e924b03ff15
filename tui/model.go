// Package tui is the interactive event browser.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/robertmeta/event-cards/filter"
	"github.com/robertmeta/event-cards/model"
	"github.com/robertmeta/event-cards/paginate"
	"github.com/robertmeta/event-cards/store"
	"github.com/robertmeta/event-cards/view"
)

// Loader performs the single feed fetch at startup.
type Loader func(ctx context.Context) ([]model.Event, error)

type loadSuccessMsg struct {
	events   []model.Event
	duration time.Duration
}

type loadErrorMsg struct {
	err error
}

const (
	inputTitle = iota
	inputDescription
	inputDate
)

// Options configures a Model.
type Options struct {
	Location         *time.Location
	PageSize         paginate.PageSize
	PreserveExpanded bool
	Theme            view.Theme
	Logger           zerolog.Logger
}

// Model is the bubbletea model for the browser.
type Model struct {
	load     Loader
	opts     Options
	log      zerolog.Logger
	store    *store.Store
	deck     view.Deck
	renderer *view.TextRenderer
	inputs   []textinput.Model
	focus    int
	editing  bool
	selected int
	height   int
	loading  bool
	status   string
	warning  bool
}

// NewModel creates a Model that fetches events with load on Init.
func NewModel(load Loader, opts Options) Model {
	labels := []string{"Title", "Description", "Date"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Prompt = label + ": "
		in.Placeholder = "any"
		in.CharLimit = 120
		in.Width = 24
		inputs[i] = in
	}
	inputs[inputDate].Placeholder = "e.g. March 15, 2024"

	m := Model{
		load:     load,
		opts:     opts,
		log:      opts.Logger,
		store:    store.New(nil, opts.Location),
		renderer: view.NewTextRenderer(opts.Theme, 0),
		inputs:   inputs,
		loading:  true,
		status:   "Loading events...",
	}
	m.store.SetPageSize(opts.PageSize)
	return m
}

// Init starts the feed load.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		start := time.Now()
		events, err := load(context.Background())
		if err != nil {
			return loadErrorMsg{err: err}
		}
		return loadSuccessMsg{events: events, duration: time.Since(start)}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.renderer.Width = msg.Width
		return m, nil

	case loadSuccessMsg:
		m.loading = false
		m.store = store.New(msg.events, m.opts.Location)
		m.store.SetPageSize(m.opts.PageSize)
		m.refresh()
		m.setStatus(fmt.Sprintf("Loaded %d events in %s", len(msg.events), msg.duration.Round(time.Millisecond)), false)
		m.log.Info().Int("events", len(msg.events)).Dur("took", msg.duration).Msg("feed loaded")
		return m, nil

	case loadErrorMsg:
		m.loading = false
		m.log.Error().Err(msg.err).Msg("error fetching or parsing feed")
		m.setStatus("Could not load events: "+msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.blurInputs()
		return m, nil
	case "tab", "down":
		return m, m.focusInput((m.focus + 1) % len(m.inputs))
	case "shift+tab", "up":
		return m, m.focusInput((m.focus + len(m.inputs) - 1) % len(m.inputs))
	case "enter":
		m.blurInputs()
		m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if key := msg.String(); key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.editing = true
		return m, m.focusInput(inputTitle)
	case "c":
		m.clear()
	case "n", "right":
		if m.store.Next() {
			m.refresh()
		}
	case "p", "left":
		if m.store.Previous() {
			m.refresh()
		}
	case "s":
		m.store.SetPageSize(paginate.NextPreset(m.store.Cursor().Size))
		m.refresh()
	case "j", "down":
		if m.selected < m.deck.Len()-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case " ", "enter":
		m.deck.Toggle(m.selected)
	}
	return m, nil
}

func (m *Model) focusInput(i int) tea.Cmd {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	return m.inputs[i].Focus()
}

func (m *Model) blurInputs() {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.editing = false
}

func (m *Model) criteria() filter.Criteria {
	return filter.BuildCriteria(
		m.inputs[inputTitle].Value(),
		m.inputs[inputDescription].Value(),
		m.inputs[inputDate].Value(),
	)
}

func (m *Model) submit() {
	c := m.criteria()
	out := m.store.Submit(c)
	m.refresh()

	switch {
	case out.DateIgnored && out.NoResults:
		m.setStatus(view.MsgInvalidDate+" "+view.MsgNoResults, true)
	case out.DateIgnored:
		m.setStatus(view.MsgInvalidDate, true)
	case out.NoResults:
		m.setStatus(view.MsgNoResults, true)
	default:
		m.setStatus(fmt.Sprintf("%d events match", out.Matched), false)
	}

	if out.DateIgnored {
		m.log.Warn().Str("date", c.Date).Msg("ignoring unparseable date filter")
	}
}

func (m *Model) clear() {
	for j := range m.inputs {
		m.inputs[j].Reset()
	}
	m.store.Clear()
	m.refresh()
	m.setStatus("Filters cleared", false)
}

// refresh rebuilds the deck from the current page.
func (m *Model) refresh() {
	m.deck.Rebuild(m.store.Page().Items, m.opts.PreserveExpanded)
	if m.selected >= m.deck.Len() {
		m.selected = m.deck.Len() - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) setStatus(status string, warning bool) {
	m.status = status
	m.warning = warning
}

// View renders the screen.
func (m Model) View() string {
	th := m.opts.Theme
	header := m.renderer.Header(m.store.Status())

	var b strings.Builder
	b.WriteString(th.Title.Render("Events"))
	b.WriteString("\n")
	b.WriteString(m.inputsView())
	b.WriteString("\n")
	b.WriteString(header)
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(th.MetaLabel.Render("Loading..."))
	} else {
		b.WriteString(m.cardsView())
	}

	b.WriteString("\n\n")
	b.WriteString(header)
	b.WriteString("\n")
	if m.status != "" {
		style := th.Status
		if m.warning {
			style = th.Warn
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(th.MetaLabel.Render(helpLine(m.editing)))
	return b.String()
}

func (m Model) inputsView() string {
	parts := make([]string, 0, len(m.inputs))
	for i := range m.inputs {
		parts = append(parts, m.opts.Theme.Input.Render(m.inputs[i].View()))
	}
	return strings.Join(parts, "  ")
}

// cardsView renders the cards that fit, keeping the selected card on screen.
func (m Model) cardsView() string {
	if m.deck.Len() == 0 || m.height <= 0 {
		return m.renderer.Cards(&m.deck, m.selected)
	}

	budget := m.height - 10
	if budget < 5 {
		budget = 5
	}

	blocks := make([]string, m.deck.Len())
	for i := range m.deck.Cards {
		blocks[i] = m.renderer.Card(&m.deck.Cards[i], i == m.selected)
	}

	start := windowStart(blocks, m.selected, budget)
	var shown []string
	used := 0
	for i := start; i < len(blocks); i++ {
		h := lipgloss.Height(blocks[i])
		if used+h > budget && len(shown) > 0 {
			break
		}
		shown = append(shown, blocks[i])
		used += h
	}
	return lipgloss.JoinVertical(lipgloss.Left, shown...)
}

// windowStart returns the first block to draw so that selected fits in budget lines.
func windowStart(blocks []string, selected, budget int) int {
	if selected <= 0 {
		return 0
	}
	used := lipgloss.Height(blocks[selected])
	start := selected
	for start > 0 {
		h := lipgloss.Height(blocks[start-1])
		if used+h > budget {
			break
		}
		used += h
		start--
	}
	return start
}

func helpLine(editing bool) string {
	if editing {
		return "tab next field | enter apply | esc cancel"
	}
	return "/ filter | c clear | n/p page | s page size | j/k move | space expand | q quit"
}

// Run starts the program on the terminal.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
