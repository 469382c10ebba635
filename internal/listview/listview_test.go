package listview

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"
)

type rec struct {
	id      string
	name    string
	status  string
	tags    []string
	note    *string
	addedAt *time.Time
	score   int
}

func ptr[V any](v V) *V { return &v }

func recDescriptor() Descriptor[rec] {
	return Descriptor[rec]{
		Name: "rec",
		ID:   func(r rec) string { return r.id },
		Search: []Extractor[rec]{
			Field(func(r rec) string { return r.name }),
			OptField(func(r rec) *string { return r.note }),
			Fields(func(r rec) []string { return r.tags }),
		},
		Facets: map[string]Extractor[rec]{
			"status": Field(func(r rec) string { return r.status }),
			"tags":   Fields(func(r rec) []string { return r.tags }),
		},
		Sorts: map[string]SortKey[rec]{
			"name":    StringKey(func(r rec) string { return r.name }),
			"addedAt": OptTimeKey(func(r rec) *time.Time { return r.addedAt }),
			"score":   IntKey(func(r rec) int { return r.score }),
		},
		Date:    func(r rec) *time.Time { return r.addedAt },
		Default: SortSpec{Field: "addedAt", Direction: Desc},
	}
}

func ids(items []rec) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.id)
	}
	return out
}

func sample() []rec {
	t0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []rec{
		{id: "a", name: "Ada Lovelace", status: "sourced", tags: []string{"Senior", "Backend"}, addedAt: ptr(t0), score: 2},
		{id: "b", name: "Brian Kernighan", status: "hired", tags: []string{"Remote"}, note: ptr("Worked at Bell Labs"), addedAt: ptr(t0.Add(48 * time.Hour)), score: 1},
		{id: "c", name: "Grace Hopper", status: "hired", tags: []string{"Senior"}, addedAt: ptr(t0.Add(24 * time.Hour)), score: 2},
		{id: "d", name: "Dennis Ritchie", status: "declined", tags: nil, score: 3},
	}
}

func TestApply_FacetConjunctionAndSubset(t *testing.T) {
	d := recDescriptor()
	src := sample()

	cases := []map[string][]string{
		nil,
		{"status": {"hired"}},
		{"status": {"hired", "sourced"}},
		{"status": {"hired"}, "tags": {"Senior"}},
		{"tags": {"Remote", "Backend"}},
		{"status": {}},
	}

	for _, facets := range cases {
		res, err := d.Apply(src, Query{Facets: facets})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		for _, it := range res.Items {
			if !slices.Contains(ids(src), it.id) {
				t.Fatalf("result %s not in source", it.id)
			}
			for name, accepted := range facets {
				if len(accepted) == 0 {
					continue
				}
				ok := false
				for _, v := range d.Facets[name](it) {
					if slices.Contains(accepted, v) {
						ok = true
					}
				}
				if !ok {
					t.Fatalf("record %s fails facet %s=%v", it.id, name, accepted)
				}
			}
		}
	}

	res, _ := d.Apply(src, Query{Facets: map[string][]string{"status": {"hired"}, "tags": {"Senior"}}})
	if got := ids(res.Items); !slices.Equal(got, []string{"c"}) {
		t.Fatalf("expected [c], got %v", got)
	}
}

func TestApply_HiredFacetCountsTwo(t *testing.T) {
	d := recDescriptor()
	src := []rec{
		{id: "1", status: "sourced"},
		{id: "2", status: "hired"},
		{id: "3", status: "hired"},
	}

	res, err := d.Apply(src, Query{Facets: map[string][]string{"status": {"hired"}}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 2 || len(res.Items) != 2 {
		t.Fatalf("expected 2 results, got total=%d items=%d", res.Total, len(res.Items))
	}
	for _, it := range res.Items {
		if it.status != "hired" {
			t.Fatalf("unexpected status %s", it.status)
		}
	}
}

func TestApply_TextQuery(t *testing.T) {
	d := recDescriptor()
	src := sample()

	res, err := d.Apply(src, Query{Text: "  BELL "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := ids(res.Items); !slices.Equal(got, []string{"b"}) {
		t.Fatalf("expected [b], got %v", got)
	}

	res, _ = d.Apply(src, Query{Text: "senior"})
	for _, it := range res.Items {
		hit := false
		for _, f := range d.Search {
			for _, s := range f(it) {
				if strings.Contains(strings.ToLower(s), "senior") {
					hit = true
				}
			}
		}
		if !hit {
			t.Fatalf("record %s does not contain query", it.id)
		}
	}
	if res.Total != 2 {
		t.Fatalf("expected 2 senior records, got %d", res.Total)
	}

	facets := map[string][]string{"status": {"hired", "declined"}}
	filtered, _ := d.Filter(src, Query{Facets: facets})
	empty, _ := d.Filter(src, Query{Text: "", Facets: facets})
	if !slices.Equal(ids(filtered), ids(empty)) {
		t.Fatalf("empty query changed the facet result: %v vs %v", ids(filtered), ids(empty))
	}
}

func TestApply_AddedAtDescNilLast(t *testing.T) {
	d := recDescriptor()
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)
	src := []rec{
		{id: "t1", addedAt: &t1},
		{id: "none"},
		{id: "t3", addedAt: &t3},
		{id: "t2", addedAt: &t2},
	}

	res, err := d.Apply(src, Query{Sort: SortSpec{Field: "addedAt", Direction: Desc}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := ids(res.Items); !slices.Equal(got, []string{"t3", "t2", "t1", "none"}) {
		t.Fatalf("unexpected order %v", got)
	}

	res, _ = d.Apply(src, Query{Sort: SortSpec{Field: "addedAt", Direction: Asc}})
	if got := ids(res.Items); !slices.Equal(got, []string{"t1", "t2", "t3", "none"}) {
		t.Fatalf("unexpected asc order %v", got)
	}
}

func TestApply_DirectionWithoutFieldUsesDefaultField(t *testing.T) {
	d := recDescriptor()

	res, err := d.Apply(sample(), Query{Sort: SortSpec{Direction: Asc}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Sort != (SortSpec{Field: "addedAt", Direction: Asc}) {
		t.Fatalf("unexpected sort %+v", res.Sort)
	}
	if got := ids(res.Items); !slices.Equal(got, []string{"a", "c", "b", "d"}) {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestApply_ResortIsStable(t *testing.T) {
	d := recDescriptor()
	src := []rec{
		{id: "x", score: 1},
		{id: "y", score: 2},
		{id: "z", score: 2},
		{id: "w", score: 3},
		{id: "v", score: 2},
	}

	asc, _ := d.Apply(src, Query{Sort: SortSpec{Field: "score", Direction: Asc}})
	desc, _ := d.Apply(asc.Items, Query{Sort: SortSpec{Field: "score", Direction: Desc}})
	again, _ := d.Apply(desc.Items, Query{Sort: SortSpec{Field: "score", Direction: Asc}})

	if !slices.Equal(ids(asc.Items), ids(again.Items)) {
		t.Fatalf("expected %v, got %v", ids(asc.Items), ids(again.Items))
	}
}

func TestApply_DoesNotMutateSource(t *testing.T) {
	d := recDescriptor()
	src := sample()
	before := ids(src)

	if _, err := d.Apply(src, Query{Sort: SortSpec{Field: "name", Direction: Asc}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !slices.Equal(before, ids(src)) {
		t.Fatalf("source reordered: %v", ids(src))
	}
}

func TestApply_PagingAndErrors(t *testing.T) {
	d := recDescriptor()
	src := sample()

	res, err := d.Apply(src, Query{Sort: SortSpec{Field: "name", Direction: Asc}, Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 4 || len(res.VisibleIDs) != 4 {
		t.Fatalf("expected total 4, got %d/%d", res.Total, len(res.VisibleIDs))
	}
	if got := ids(res.Items); !slices.Equal(got, []string{"b", "d"}) {
		t.Fatalf("unexpected page %v", got)
	}

	res, _ = d.Apply(src, Query{Offset: 10})
	if len(res.Items) != 0 || res.Total != 4 {
		t.Fatalf("expected empty page with total 4")
	}

	if _, err := d.Apply(src, Query{Facets: map[string][]string{"color": {"red"}}}); !errors.Is(err, ErrUnknownFacet) {
		t.Fatalf("expected ErrUnknownFacet, got %v", err)
	}
	if _, err := d.Apply(src, Query{Sort: SortSpec{Field: "salary"}}); !errors.Is(err, ErrUnknownSort) {
		t.Fatalf("expected ErrUnknownSort, got %v", err)
	}
	if _, err := d.Apply(src, Query{Limit: -1}); !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}

	empty, err := d.Apply(nil, Query{Text: "x"})
	if err != nil || len(empty.Items) != 0 {
		t.Fatalf("expected empty result, got %v %v", empty.Items, err)
	}
}

func TestApply_DateRange(t *testing.T) {
	d := recDescriptor()
	src := sample()
	from := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	res, err := d.Apply(src, Query{Range: &DateRange{From: &from}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := ids(res.Items); !slices.Equal(got, []string{"b", "c"}) {
		t.Fatalf("unexpected range result %v", got)
	}

	to := from.Add(-time.Hour)
	if _, err := d.Apply(src, Query{Range: &DateRange{From: &from, To: &to}}); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestSortSpec_Toggle(t *testing.T) {
	s := SortSpec{Field: "addedAt", Direction: Desc}

	s = s.Toggle("addedAt")
	if s.Direction != Asc {
		t.Fatalf("expected asc, got %s", s.Direction)
	}
	s = s.Toggle("addedAt")
	if s.Direction != Desc {
		t.Fatalf("expected desc, got %s", s.Direction)
	}
	s = s.Toggle("addedAt").Toggle("name")
	if s.Field != "name" || s.Direction != Desc {
		t.Fatalf("expected name desc, got %+v", s)
	}
}

func TestSortKey_Then(t *testing.T) {
	key := IntKey(func(r rec) int { return r.score }).Then(StringKey(func(r rec) string { return r.name }))
	d := recDescriptor()
	d.Sorts["rank"] = key

	res, _ := d.Apply([]rec{
		{id: "1", score: 1, name: "b"},
		{id: "2", score: 2, name: "a"},
		{id: "3", score: 1, name: "a"},
	}, Query{Sort: SortSpec{Field: "rank", Direction: Asc}})

	if got := ids(res.Items); !slices.Equal(got, []string{"3", "1", "2"}) {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestAggregates(t *testing.T) {
	if got := Average([]rec{}, func(r rec) int { return r.score }); got != 0 {
		t.Fatalf("expected 0 for empty average, got %v", got)
	}
	if got := Average(sample(), func(r rec) int { return r.score }); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	if got := Sum(sample(), func(r rec) int { return r.score }); got != 8 {
		t.Fatalf("expected 8, got %v", got)
	}
	if got := Ratio(3, 0); got != 3 {
		t.Fatalf("expected ratio 3 with empty denominator, got %v", got)
	}
	if got := Count(sample(), func(r rec) bool { return r.status == "hired" }); got != 2 {
		t.Fatalf("expected 2 hired, got %d", got)
	}
}
