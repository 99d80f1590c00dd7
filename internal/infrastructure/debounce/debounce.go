// Package debounce delays a call until its input has been stable for a quiescence window.
// Each Submit starts a new generation: the pending timer and any in-flight call of the
// previous generation are cancelled, and only the latest generation's result is delivered.
package debounce

import (
	"context"
	"sync"
	"time"
)

// Result is the outcome of one debounced call.
type Result[O any] struct {
	Generation uint64
	Value      O
	Err        error
}

// Debouncer coalesces rapid submissions into one call of fn.
type Debouncer[I, O any] struct {
	window  time.Duration
	fn      func(ctx context.Context, in I) (O, error)
	deliver func(Result[O])

	mu      sync.Mutex
	parent  context.Context
	gen     uint64
	timer   *time.Timer
	cancel  context.CancelFunc
	stopped bool
}

// New creates a Debouncer. parent bounds every call; deliver receives results of the
// latest generation only and runs on the call's goroutine.
func New[I, O any](parent context.Context, window time.Duration, fn func(ctx context.Context, in I) (O, error), deliver func(Result[O])) *Debouncer[I, O] {
	return &Debouncer[I, O]{
		window:  window,
		fn:      fn,
		deliver: deliver,
		parent:  parent,
	}
}

// Submit schedules fn(in) after the window and supersedes any earlier submission.
// It returns the generation assigned to in, or 0 after Stop.
func (d *Debouncer[I, O]) Submit(in I) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return 0
	}
	d.supersede()

	d.gen++
	gen := d.gen
	ctx, cancel := context.WithCancel(d.parent)
	d.cancel = cancel

	d.timer = time.AfterFunc(d.window, func() {
		d.run(ctx, gen, in)
	})
	return gen
}

// Generation returns the latest generation handed out by Submit.
func (d *Debouncer[I, O]) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}

// Stop cancels the pending and in-flight generation. No result is delivered afterwards.
func (d *Debouncer[I, O]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.supersede()
}

// supersede must be called with mu held.
func (d *Debouncer[I, O]) supersede() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Debouncer[I, O]) run(ctx context.Context, gen uint64, in I) {
	if ctx.Err() != nil {
		return
	}

	value, err := d.fn(ctx, in)

	d.mu.Lock()
	current := gen == d.gen && !d.stopped
	d.mu.Unlock()
	if !current || ctx.Err() != nil {
		return
	}

	d.deliver(Result[O]{Generation: gen, Value: value, Err: err})
}
