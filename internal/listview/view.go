package listview

import (
	"fmt"
	"sync"
	"time"
)

// View is the mutable state behind one list screen: the query being built,
// the sort and the selection. Text changes go through a debouncer so a burst
// of keystrokes produces one query update.
type View[T any] struct {
	mu        sync.Mutex
	desc      Descriptor[T]
	query     Query
	selection *Selection
	text      *Debouncer[string]
}

type ViewState struct {
	Query       Query
	Selected    []string
	TextPending bool
}

func NewView[T any](desc Descriptor[T], window time.Duration) *View[T] {
	v := &View[T]{
		desc:      desc,
		query:     Query{Sort: desc.Default},
		selection: NewSelection(),
	}
	v.text = NewDebouncer(window, func(s string) {
		v.mu.Lock()
		v.query.Text = s
		v.mu.Unlock()
	})
	return v
}

func (v *View[T]) SetText(s string) {
	v.text.Trigger(s)
}

// FlushText applies a pending text change immediately.
func (v *View[T]) FlushText() {
	v.text.Flush()
}

func (v *View[T]) SetFacet(name string, values []string) error {
	if !v.desc.HasFacet(name) {
		return fmt.Errorf("%w: %s", ErrUnknownFacet, name)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.query.Facets == nil {
		v.query.Facets = map[string][]string{}
	}
	if len(values) == 0 {
		delete(v.query.Facets, name)
		return nil
	}
	v.query.Facets[name] = append([]string(nil), values...)
	return nil
}

func (v *View[T]) SetRange(r *DateRange) error {
	if r != nil && r.From != nil && r.To != nil && r.From.After(*r.To) {
		return ErrInvalidRange
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if r == nil {
		v.query.Range = nil
		return nil
	}
	cp := *r
	v.query.Range = &cp
	return nil
}

func (v *View[T]) SetPage(limit, offset int) error {
	if limit < 0 || offset < 0 {
		return ErrInvalidPage
	}
	v.mu.Lock()
	v.query.Limit = limit
	v.query.Offset = offset
	v.mu.Unlock()
	return nil
}

func (v *View[T]) ToggleSort(field string) (SortSpec, error) {
	if !v.desc.HasSort(field) {
		return SortSpec{}, fmt.Errorf("%w: %s", ErrUnknownSort, field)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.query.Sort = v.query.Sort.Toggle(field)
	return v.query.Sort, nil
}

// Render applies the current query to src.
func (v *View[T]) Render(src []T) (Result[T], error) {
	v.mu.Lock()
	q := v.query.Clone()
	v.mu.Unlock()

	return v.desc.Apply(src, q)
}

// SelectAll selects every record of src that passes the current filters,
// across all pages, and returns how many were selected.
func (v *View[T]) SelectAll(src []T) (int, error) {
	v.mu.Lock()
	q := v.query.Clone()
	v.mu.Unlock()

	q.Limit, q.Offset = 0, 0
	res, err := v.desc.Apply(src, q)
	if err != nil {
		return 0, err
	}

	v.mu.Lock()
	v.selection.SelectAll(res.VisibleIDs)
	n := v.selection.Len()
	v.mu.Unlock()
	return n, nil
}

func (v *View[T]) Toggle(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.Toggle(id)
}

func (v *View[T]) ClearSelection() {
	v.mu.Lock()
	v.selection.Clear()
	v.mu.Unlock()
}

func (v *View[T]) Selected() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.IDs()
}

func (v *View[T]) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return ViewState{
		Query:       v.query.Clone(),
		Selected:    v.selection.IDs(),
		TextPending: v.text.Pending(),
	}
}

func (v *View[T]) Close() {
	v.text.Stop()
}
