// Package debounce provides a cancellable latest-wins debouncer for
// high-frequency input streams, such as search keystrokes. Computation is
// deferred until the input has been quiet for a fixed period; new input
// cancels and replaces any pending emission, so the value finally emitted is
// always the most recent one.
package debounce

import (
	"sync"
	"time"
)

// Clock abstracts timer creation so the quiet period can be driven by a fake
// clock in tests.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type Debouncer struct {
	mu      sync.Mutex
	quiet   time.Duration
	clock   Clock
	timer   Timer
	pending string
	stopped bool
	emit    func(string)
}

// New creates a debouncer that calls emit once per quiet period with the
// latest input value.
func New(quiet time.Duration, emit func(string)) *Debouncer {
	return NewWithClock(quiet, emit, realClock{})
}

func NewWithClock(quiet time.Duration, emit func(string), clock Clock) *Debouncer {
	return &Debouncer{
		quiet: quiet,
		clock: clock,
		emit:  emit,
	}
}

// Input records a new value and restarts the quiet period. A pending
// emission is cancelled; the final value always reflects the latest input.
func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.pending = value
	d.timer = d.clock.AfterFunc(d.quiet, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.timer = nil
	d.mu.Unlock()

	d.emit(value)
}

// Stop cancels any pending emission and prevents further ones. Used on
// session teardown so no emission fires after disposal.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
