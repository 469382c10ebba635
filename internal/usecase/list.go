package usecase

import (
	"errors"
	"fmt"
	"time"

	"hireboard/internal/listview"
)

const maxPageSize = 200

type ListParams struct {
	Text      string
	Facets    map[string][]string
	From      *time.Time
	To        *time.Time
	Sort      string
	Direction string
	Limit     int
	Offset    int
}

type Page[T any] struct {
	Items      []T
	Total      int
	Limit      int
	Offset     int
	Sort       listview.SortSpec
	VisibleIDs []string
}

func (p ListParams) query(pageSize int) (listview.Query, error) {
	limit := p.Limit
	if limit == 0 {
		limit = pageSize
	}
	if limit < 0 || limit > maxPageSize || p.Offset < 0 {
		return listview.Query{}, ErrInvalidInput
	}

	q := listview.Query{
		Text:   p.Text,
		Facets: p.Facets,
		Limit:  limit,
		Offset: p.Offset,
	}
	if p.From != nil || p.To != nil {
		q.Range = &listview.DateRange{From: p.From, To: p.To}
	}
	if p.Sort != "" || p.Direction != "" {
		dir, err := listview.ParseDirection(p.Direction)
		if err != nil {
			return listview.Query{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		q.Sort = listview.SortSpec{Field: p.Sort, Direction: dir}
	}
	return q, nil
}

// listPage runs q without paging so the caller can compute stats over every
// match, then cuts the requested window.
func listPage[T any](desc listview.Descriptor[T], src []T, q listview.Query) (Page[T], []T, error) {
	all := q
	all.Limit, all.Offset = 0, 0

	res, err := desc.Apply(src, all)
	if err != nil {
		return Page[T]{}, nil, engineError(err)
	}

	start := min(q.Offset, len(res.Items))
	end := len(res.Items)
	if q.Limit > 0 {
		end = min(start+q.Limit, len(res.Items))
	}

	return Page[T]{
		Items:      res.Items[start:end],
		Total:      res.Total,
		Limit:      q.Limit,
		Offset:     q.Offset,
		Sort:       res.Sort,
		VisibleIDs: res.VisibleIDs,
	}, res.Items, nil
}

func engineError(err error) error {
	switch {
	case errors.Is(err, listview.ErrUnknownFacet),
		errors.Is(err, listview.ErrUnknownSort),
		errors.Is(err, listview.ErrInvalidPage),
		errors.Is(err, listview.ErrInvalidRange):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return ErrInternal
	}
}
