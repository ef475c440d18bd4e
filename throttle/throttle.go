/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package throttle

import (
	"fmt"
	"time"

	"go.uber.org/atomic"
)

// RequestClass partitions rate-limit accounting. The API budgets read (GET)
// and write (POST/PATCH/DELETE) traffic independently, so the two classes
// never share state.
type RequestClass int

// Supported request classes.
const (
	ClassRead RequestClass = iota
	ClassWrite
)

// String returns a human-readable class name, suitable for logs and metric labels.
func (c RequestClass) String() string {
	switch c {
	case ClassRead:
		return "read"
	case ClassWrite:
		return "write"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// Outcome tells the Throttle how the server answered a completed request attempt.
type Outcome struct {
	limited    bool
	retryAfter time.Duration
}

// OK is the outcome of an attempt that was not rate-limited.
func OK() Outcome {
	return Outcome{}
}

// Limited is the outcome of a 429 rejection carrying the server-mandated wait.
func Limited(retryAfter time.Duration) Outcome {
	return Outcome{limited: true, retryAfter: retryAfter}
}

// Throttle decides when the next request of each class may be sent.
// It is safe for concurrent use and is shared by reference across all
// in-flight requests of a client.
type Throttle struct {
	read  *classTracker
	write *classTracker

	requestsSent atomic.Uint64
	limitHits    atomic.Uint64
	stalledTotal atomic.Int64 // nanoseconds
}

// Opts represents options for NewWithOpts.
type Opts struct {
	// Clock is a time source. The system clock is used if nil.
	Clock Clock

	// Read and Write hold per-class window budgets.
	// DefaultReadWindows/DefaultWriteWindows are used when empty.
	Read  []WindowLimit
	Write []WindowLimit
}

// New creates a Throttle with the default window budgets.
func New() *Throttle {
	return NewWithOpts(Opts{})
}

// NewWithOpts creates a Throttle with the specified options.
// For options that are not presented, the default values will be used.
func NewWithOpts(opts Opts) *Throttle {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if len(opts.Read) == 0 {
		opts.Read = DefaultReadWindows
	}
	if len(opts.Write) == 0 {
		opts.Write = DefaultWriteWindows
	}
	return &Throttle{
		read:  newClassTracker(opts.Clock, opts.Read),
		write: newClassTracker(opts.Clock, opts.Write),
	}
}

func (t *Throttle) tracker(class RequestClass) *classTracker {
	if class == ClassWrite {
		return t.write
	}
	return t.read
}

// Acquire returns 0 when a request of the given class may be sent immediately,
// claiming one slot in each of the class's windows; otherwise it returns how
// long the caller must wait before calling Acquire again. A positive return
// claims nothing, so an abandoned wait leaves no partial state behind.
func (t *Throttle) Acquire(class RequestClass) time.Duration {
	d := t.tracker(class).acquire()
	if d > 0 {
		t.stalledTotal.Add(int64(d))
		return d
	}
	t.requestsSent.Inc()
	return 0
}

// StallFor reports how long a request of the given class would have to wait,
// without claiming a window slot. A zero return is advisory only: another
// caller may take the slot first, so senders must use Acquire.
func (t *Throttle) StallFor(class RequestClass) time.Duration {
	return t.tracker(class).stallFor()
}

// OnResponse records the outcome of a completed request attempt.
// An OK outcome clears the class's cool-down; a Limited outcome starts one.
// The attempt's window slot stays consumed either way, so local prediction
// learns from rejected attempts too.
func (t *Throttle) OnResponse(class RequestClass, outcome Outcome) {
	tr := t.tracker(class)
	if outcome.limited {
		t.limitHits.Inc()
		tr.recordLimited(outcome.retryAfter)
		return
	}
	tr.recordSuccess()
}

// Stats is a point-in-time snapshot of throttling counters.
type Stats struct {
	// RequestsSent is the number of attempts allowed through.
	RequestsSent uint64

	// LimitHits is the number of 429 rejections recorded.
	LimitHits uint64

	// StalledTotal is the cumulative wait advised to callers.
	StalledTotal time.Duration
}

// Stats returns a snapshot of throttling counters.
func (t *Throttle) Stats() Stats {
	return Stats{
		RequestsSent: t.requestsSent.Load(),
		LimitHits:    t.limitHits.Load(),
		StalledTotal: time.Duration(t.stalledTotal.Load()),
	}
}
