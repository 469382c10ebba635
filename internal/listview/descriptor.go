// Package listview derives ordered, filtered views over in-memory
// collections. One Descriptor per record type tells the engine which fields
// are searched, which facets exist and how each sortable field compares.
package listview

import (
	"errors"
	"time"
)

var (
	ErrUnknownFacet = errors.New("unknown facet")
	ErrUnknownSort  = errors.New("unknown sort field")
	ErrInvalidPage  = errors.New("invalid page bounds")
	ErrInvalidRange = errors.New("invalid date range")
)

// Extractor returns the values of one field for matching. Multi-valued
// fields return several strings; absent fields return none.
type Extractor[T any] func(T) []string

type Descriptor[T any] struct {
	Name    string
	ID      func(T) string
	Search  []Extractor[T]
	Facets  map[string]Extractor[T]
	Sorts   map[string]SortKey[T]
	Date    func(T) *time.Time
	Default SortSpec
}

func Field[T any](get func(T) string) Extractor[T] {
	return func(v T) []string {
		return []string{get(v)}
	}
}

func OptField[T any](get func(T) *string) Extractor[T] {
	return func(v T) []string {
		p := get(v)
		if p == nil {
			return nil
		}
		return []string{*p}
	}
}

func Fields[T any](get func(T) []string) Extractor[T] {
	return func(v T) []string {
		return get(v)
	}
}

func (d Descriptor[T]) HasFacet(name string) bool {
	_, ok := d.Facets[name]
	return ok
}

func (d Descriptor[T]) HasSort(field string) bool {
	_, ok := d.Sorts[field]
	return ok
}
