package store

import (
	"fmt"

	"github.com/robertmeta/event-cards/filter"
	"github.com/robertmeta/event-cards/paginate"
)

// Query is one non-interactive view request: filters, page size and page.
type Query struct {
	Criteria filter.Criteria
	PageSize paginate.PageSize
	Page     int
}

// BuildQuery constructs a Query from CLI flags.
func BuildQuery(title, description, date, pageSize string, page int) (Query, error) {
	q := Query{
		Criteria: filter.BuildCriteria(title, description, date),
		Page:     page,
	}

	size, err := paginate.ParsePageSize(pageSize)
	if err != nil {
		return q, fmt.Errorf("failed to parse --page-size flag: %w", err)
	}
	q.PageSize = size

	if q.Page < 1 {
		q.Page = 1
	}

	return q, nil
}

// Run replays the query as user actions: filter, then page size, then page.
func (q Query) Run(s *Store) Outcome {
	var out Outcome
	if q.Criteria.IsEmpty() {
		s.Clear()
		out.Matched = s.ActiveCount()
	} else {
		out = s.Submit(q.Criteria)
	}

	s.SetPageSize(q.PageSize)
	s.GoTo(q.Page)

	return out
}
