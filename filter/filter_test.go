package filter

import (
	"testing"
	"time"

	"github.com/robertmeta/event-cards/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(id int, title, description, date string) model.Event {
	e := model.Event{ID: id, Title: title, Description: description}
	e.SetStartDate(date, date != "", time.UTC)
	return e
}

func sampleEvents() []model.Event {
	return []model.Event{
		event(0, "Go Workshop", "Learn goroutines", "2024-03-15"),
		event(1, "Community Meetup", "Pizza and <b>talks</b>", "2024-03-16T18:00:00Z"),
		event(2, "Testing WORKSHOP", "Table tests", "2024-03-15T20:00:00"),
		event(3, "Open Studio", "Drop in", "TBD"),
		event(4, "Closing Talk", "Wrap-up talks", ""),
	}
}

func titles(events []model.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}

func TestByTitle(t *testing.T) {
	events := sampleEvents()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty is identity", query: "", want: titles(events)},
		{name: "whitespace is identity", query: "   ", want: titles(events)},
		{name: "case insensitive", query: "workshop", want: []string{"Go Workshop", "Testing WORKSHOP"}},
		{name: "common substring keeps all", query: "o", want: titles(events)},
		{name: "no match", query: "hackathon", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(ByTitle(events, tt.query)))
		})
	}
}

func TestByDescription(t *testing.T) {
	events := sampleEvents()

	assert.Equal(t, titles(events), titles(ByDescription(events, "")))
	assert.Equal(t, []string{"Community Meetup", "Closing Talk"}, titles(ByDescription(events, "TALKS")))
	assert.Empty(t, ByDescription(events, "nothing like this"))
}

func TestByDate(t *testing.T) {
	events := sampleEvents()

	t.Run("matches calendar day", func(t *testing.T) {
		got, err := ByDate(events, "March 15, 2024", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, []string{"Go Workshop", "Testing WORKSHOP"}, titles(got))
	})

	t.Run("display format round trips", func(t *testing.T) {
		got, err := ByDate(events, events[1].StartDateFormatted, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, []string{"Community Meetup"}, titles(got))
	})

	t.Run("invalid criterion is identity", func(t *testing.T) {
		got, err := ByDate(events, "not a date", time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDate)
		assert.Equal(t, titles(events), titles(got))
	})

	t.Run("day without events", func(t *testing.T) {
		got, err := ByDate(events, "1999-01-01", time.UTC)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestApply(t *testing.T) {
	events := sampleEvents()

	t.Run("no criteria", func(t *testing.T) {
		res := Apply(events, Criteria{}, time.UTC)
		assert.Len(t, res.Events, len(events))
		assert.False(t, res.NoResults())
		assert.False(t, res.DateIgnored)
	})

	t.Run("chained", func(t *testing.T) {
		res := Apply(events, BuildCriteria(" workshop ", "table", "2024-03-15"), time.UTC)
		assert.Equal(t, []string{"Testing WORKSHOP"}, titles(res.Events))
	})

	t.Run("invalid date skipped", func(t *testing.T) {
		res := Apply(events, Criteria{Title: "workshop", Date: "whenever"}, time.UTC)
		assert.True(t, res.DateIgnored)
		assert.Equal(t, []string{"Go Workshop", "Testing WORKSHOP"}, titles(res.Events))
	})

	t.Run("empty result", func(t *testing.T) {
		res := Apply(events, Criteria{Title: "workshop", Description: "pizza"}, time.UTC)
		assert.Empty(t, res.Events)
		assert.True(t, res.NoResults())
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := titles(events)
		Apply(events, Criteria{Title: "meetup"}, time.UTC)
		assert.Equal(t, before, titles(events))
	})
}

func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, BuildCriteria("  ", "", "\t").IsEmpty())
	assert.False(t, BuildCriteria("", "", "2024-01-01").IsEmpty())
}
