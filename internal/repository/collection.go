package repository

import (
	"errors"
	"slices"
	"sync"
)

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrNotFound    = errors.New("record not found")
)

// Collection is an in-memory list of records. Every write swaps in a new
// slice, so a snapshot handed to a reader never changes underneath it.
// Removed records go to a trash area and can be restored.
type Collection[T any] struct {
	mu    sync.RWMutex
	id    func(T) string
	items []T
	trash map[string]T
}

func NewCollection[T any](id func(T) string, items []T) *Collection[T] {
	c := &Collection[T]{id: id, trash: map[string]T{}}
	c.items = dedupe(id, items)
	return c
}

func dedupe[T any](id func(T) string, items []T) []T {
	seen := make(map[string]bool, len(items))
	out := make([]T, 0, len(items))
	for _, v := range items {
		k := id(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}

// Snapshot returns the current records. The slice must not be modified.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, v := range c.items {
		if c.id(v) == id {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Pick returns the live records whose ids are listed, in collection order.
func (c *Collection[T]) Pick(ids []string) []T {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(ids))
	for _, v := range c.items {
		if want[c.id(v)] {
			out = append(out, v)
		}
	}
	return out
}

func (c *Collection[T]) Prepend(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := c.id(v)
	for _, it := range c.items {
		if c.id(it) == k {
			return ErrDuplicateID
		}
	}
	if _, ok := c.trash[k]; ok {
		return ErrDuplicateID
	}

	next := make([]T, 0, len(c.items)+1)
	next = append(next, v)
	next = append(next, c.items...)
	c.items = next
	return nil
}

// Remove moves the listed records to the trash and returns them. Unknown
// ids are skipped.
func (c *Collection[T]) Remove(ids []string) []T {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]T, 0, len(c.items))
	var removed []T
	for _, v := range c.items {
		if drop[c.id(v)] {
			removed = append(removed, v)
			c.trash[c.id(v)] = v
			continue
		}
		kept = append(kept, v)
	}
	c.items = kept
	return removed
}

// Restore puts trashed records back at the front, in the order given.
func (c *Collection[T]) Restore(ids []string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	var back []T
	for _, id := range ids {
		v, ok := c.trash[id]
		if !ok {
			continue
		}
		delete(c.trash, id)
		back = append(back, v)
	}
	if len(back) == 0 {
		return nil
	}
	c.items = append(slices.Clone(back), c.items...)
	return back
}

func (c *Collection[T]) Replace(items []T) {
	next := dedupe(c.id, items)
	c.mu.Lock()
	c.items = next
	c.mu.Unlock()
}
