package listview

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of Trigger calls into one call of fn with the
// latest value, made once window has passed without a newer Trigger.
type Debouncer[V any] struct {
	mu      sync.Mutex
	window  time.Duration
	fn      func(V)
	timer   *time.Timer
	pending V
	has     bool
	gen     uint64
}

func NewDebouncer[V any](window time.Duration, fn func(V)) *Debouncer[V] {
	return &Debouncer[V]{window: window, fn: fn}
}

func (d *Debouncer[V]) Trigger(v V) {
	if d.window <= 0 {
		d.Stop()
		d.fn(v)
		return
	}

	d.mu.Lock()
	d.pending = v
	d.has = true
	d.gen++
	g := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() { d.fire(g) })
	d.mu.Unlock()
}

func (d *Debouncer[V]) fire(g uint64) {
	d.mu.Lock()
	if g != d.gen || !d.has {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.has = false
	d.mu.Unlock()

	d.fn(v)
}

// Flush runs the pending call now. It reports whether there was one.
func (d *Debouncer[V]) Flush() bool {
	d.mu.Lock()
	if !d.has {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	v := d.pending
	d.has = false
	d.gen++
	d.mu.Unlock()

	d.fn(v)
	return true
}

func (d *Debouncer[V]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.has
}

// Stop drops the pending call, if any.
func (d *Debouncer[V]) Stop() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.has = false
	d.gen++
	d.mu.Unlock()
}
