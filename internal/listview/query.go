package listview

import (
	"fmt"
	"strings"
	"time"
)

// DateRange bounds are inclusive; a nil bound is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r *DateRange) active() bool {
	return r != nil && (r.From != nil || r.To != nil)
}

func (r *DateRange) contains(t *time.Time) bool {
	if t == nil {
		return false
	}
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

type Query struct {
	Text   string
	Facets map[string][]string
	Range  *DateRange
	Sort   SortSpec
	Limit  int
	Offset int
}

// Clone returns a copy that shares nothing mutable with q.
func (q Query) Clone() Query {
	out := q
	if q.Facets != nil {
		out.Facets = make(map[string][]string, len(q.Facets))
		for k, v := range q.Facets {
			out.Facets[k] = append([]string(nil), v...)
		}
	}
	if q.Range != nil {
		r := *q.Range
		out.Range = &r
	}
	return out
}

type Result[T any] struct {
	Items      []T
	Total      int
	VisibleIDs []string
	Sort       SortSpec
}

type compiledQuery struct {
	text   string
	facets map[string]map[string]struct{}
	rng    *DateRange
}

func (d Descriptor[T]) compile(q Query) (compiledQuery, error) {
	cq := compiledQuery{text: strings.ToLower(strings.TrimSpace(q.Text))}

	for name, values := range q.Facets {
		if !d.HasFacet(name) {
			return compiledQuery{}, fmt.Errorf("%w: %s", ErrUnknownFacet, name)
		}
		if len(values) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		if cq.facets == nil {
			cq.facets = map[string]map[string]struct{}{}
		}
		cq.facets[name] = set
	}

	if q.Range.active() {
		if d.Date == nil {
			return compiledQuery{}, fmt.Errorf("%w: %s has no date field", ErrInvalidRange, d.Name)
		}
		if q.Range.From != nil && q.Range.To != nil && q.Range.From.After(*q.Range.To) {
			return compiledQuery{}, ErrInvalidRange
		}
		cq.rng = q.Range
	}

	return cq, nil
}

func (d Descriptor[T]) matches(v T, cq compiledQuery) bool {
	for name, accepted := range cq.facets {
		hit := false
		for _, val := range d.Facets[name](v) {
			if _, ok := accepted[val]; ok {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if cq.rng != nil && !cq.rng.contains(d.Date(v)) {
		return false
	}

	if cq.text == "" {
		return true
	}
	for _, field := range d.Search {
		for _, s := range field(v) {
			if strings.Contains(strings.ToLower(s), cq.text) {
				return true
			}
		}
	}
	return false
}
