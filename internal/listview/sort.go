package listview

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, nil
	case "desc", "":
		return Desc, nil
	default:
		return "", fmt.Errorf("invalid sort direction %q", s)
	}
}

type SortSpec struct {
	Field     string
	Direction Direction
}

func (s SortSpec) IsZero() bool {
	return s.Field == ""
}

// Toggle flips the direction when field is already the sort field and
// otherwise switches to field in descending order.
func (s SortSpec) Toggle(field string) SortSpec {
	if field == s.Field {
		if s.Direction == Asc {
			return SortSpec{Field: field, Direction: Desc}
		}
		return SortSpec{Field: field, Direction: Asc}
	}
	return SortSpec{Field: field, Direction: Desc}
}

// SortKey compares records on one field. Records for which present reports
// false have no value and always sort after those that do.
type SortKey[T any] struct {
	present func(T) bool
	compare func(a, b T) int
}

func always[T any](T) bool { return true }

func StringKey[T any](get func(T) string) SortKey[T] {
	return SortKey[T]{
		present: always[T],
		compare: func(a, b T) int { return strings.Compare(get(a), get(b)) },
	}
}

func OptStringKey[T any](get func(T) *string) SortKey[T] {
	return SortKey[T]{
		present: func(v T) bool { return get(v) != nil },
		compare: func(a, b T) int { return strings.Compare(*get(a), *get(b)) },
	}
}

func IntKey[T any](get func(T) int) SortKey[T] {
	return SortKey[T]{
		present: always[T],
		compare: func(a, b T) int { return cmp.Compare(get(a), get(b)) },
	}
}

func FloatKey[T any](get func(T) float64) SortKey[T] {
	return SortKey[T]{
		present: always[T],
		compare: func(a, b T) int { return cmp.Compare(get(a), get(b)) },
	}
}

func OptFloatKey[T any](get func(T) *float64) SortKey[T] {
	return SortKey[T]{
		present: func(v T) bool { return get(v) != nil },
		compare: func(a, b T) int { return cmp.Compare(*get(a), *get(b)) },
	}
}

func TimeKey[T any](get func(T) time.Time) SortKey[T] {
	return SortKey[T]{
		present: always[T],
		compare: func(a, b T) int { return get(a).Compare(get(b)) },
	}
}

func OptTimeKey[T any](get func(T) *time.Time) SortKey[T] {
	return SortKey[T]{
		present: func(v T) bool { return get(v) != nil },
		compare: func(a, b T) int { return (*get(a)).Compare(*get(b)) },
	}
}

// Then breaks ties of k with next. Both keys share one direction.
func (k SortKey[T]) Then(next SortKey[T]) SortKey[T] {
	return SortKey[T]{
		present: k.present,
		compare: func(a, b T) int {
			if c := k.compare(a, b); c != 0 {
				return c
			}
			if !next.present(a) || !next.present(b) {
				return 0
			}
			return next.compare(a, b)
		},
	}
}

func sortStable[T any](items []T, key SortKey[T], dir Direction) {
	slices.SortStableFunc(items, func(a, b T) int {
		ap, bp := key.present(a), key.present(b)
		switch {
		case !ap && !bp:
			return 0
		case !ap:
			return 1
		case !bp:
			return -1
		}
		c := key.compare(a, b)
		if dir == Desc {
			return -c
		}
		return c
	})
}
