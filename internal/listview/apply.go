package listview

import "fmt"

// Filter returns the records of src that satisfy the text, facet and date
// parts of q, in source order. src is not modified.
func (d Descriptor[T]) Filter(src []T, q Query) ([]T, error) {
	cq, err := d.compile(q)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(src))
	for _, v := range src {
		if d.matches(v, cq) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Apply filters, sorts and pages src. A sort spec without a field falls
// back to the descriptor default, keeping its direction when one is set. A
// zero limit returns every match.
func (d Descriptor[T]) Apply(src []T, q Query) (Result[T], error) {
	if q.Limit < 0 || q.Offset < 0 {
		return Result[T]{}, ErrInvalidPage
	}

	spec := q.Sort
	if spec.IsZero() {
		dir := spec.Direction
		spec = d.Default
		if dir != "" {
			spec.Direction = dir
		}
	}
	if spec.Direction == "" {
		spec.Direction = Desc
	}

	var key SortKey[T]
	if !spec.IsZero() {
		k, ok := d.Sorts[spec.Field]
		if !ok {
			return Result[T]{}, fmt.Errorf("%w: %s", ErrUnknownSort, spec.Field)
		}
		key = k
	}

	matched, err := d.Filter(src, q)
	if err != nil {
		return Result[T]{}, err
	}
	if !spec.IsZero() {
		sortStable(matched, key, spec.Direction)
	}

	ids := make([]string, 0, len(matched))
	if d.ID != nil {
		for _, v := range matched {
			ids = append(ids, d.ID(v))
		}
	}

	items := matched
	if q.Offset > 0 || q.Limit > 0 {
		start := min(q.Offset, len(matched))
		end := len(matched)
		if q.Limit > 0 {
			end = min(start+q.Limit, len(matched))
		}
		items = matched[start:end]
	}

	return Result[T]{
		Items:      items,
		Total:      len(matched),
		VisibleIDs: ids,
		Sort:       spec,
	}, nil
}
