/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package throttle

import (
	"sync"
	"time"
)

// classTracker owns all mutable rate-limit state for a single request class:
// its window counters and the server-asserted cool-down. Every operation takes
// the tracker's mutex, so concurrent callers observe each of them as a single
// indivisible step. Trackers of different classes have independent mutexes and
// never contend with each other.
type classTracker struct {
	mu      sync.Mutex
	clock   Clock
	windows []windowCounter

	// Cool-down signaled by the server via Retry-After.
	// retryAfter == 0 means no cool-down is active.
	retryAfter time.Duration
	limitedAt  time.Time
}

func newClassTracker(clock Clock, limits []WindowLimit) *classTracker {
	t := &classTracker{clock: clock}
	now := clock.Now()
	for _, l := range limits {
		t.windows = append(t.windows, newWindowCounter(l.Limit, l.Interval, now))
	}
	return t
}

// acquire returns 0 and claims one slot in every window when the next request
// may be sent immediately; otherwise it returns how long the caller must wait
// before re-checking. The budget check and the claim happen under a single
// mutex acquisition, so two callers can never both take the last remaining
// slot of a window.
func (t *classTracker) acquire() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.clock.Now()
	if d := t.computeStall(now); d > 0 {
		return d
	}
	for i := range t.windows {
		t.windows[i].consume(now)
	}
	return 0
}

// stallFor reports the wait the next request would face without claiming
// a window slot.
func (t *classTracker) stallFor() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.computeStall(t.clock.Now())
}

// computeStall returns the maximum of the window waits and the remaining
// cool-down. A spent cool-down is cleared as a side effect. Callers must hold
// the mutex.
func (t *classTracker) computeStall(now time.Time) time.Duration {
	var stallFor time.Duration
	for i := range t.windows {
		if d := t.windows[i].stall(now); d > stallFor {
			stallFor = d
		}
	}
	if t.retryAfter > 0 {
		if elapsed := now.Sub(t.limitedAt); elapsed < t.retryAfter {
			if d := t.retryAfter - elapsed; d > stallFor {
				stallFor = d
			}
		} else {
			t.retryAfter = 0
		}
	}
	return stallFor
}

// recordSuccess clears any active cool-down. The window slot for the attempt
// was already claimed by acquire.
func (t *classTracker) recordSuccess() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.retryAfter = 0
}

// recordLimited stores the server-mandated minimum wait. Until it is spent,
// the cool-down dominates the window math in computeStall.
func (t *classTracker) recordLimited(retryAfter time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.retryAfter = retryAfter
	t.limitedAt = t.clock.Now()
}
