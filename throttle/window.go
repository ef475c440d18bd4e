/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package throttle

import "time"

// windowCounter caps the number of requests inside a rolling fixed interval.
// The count is meaningful only for [start, start+interval); once the clock
// passes that point the counter is reset lazily, at read time, instead of by
// a background timer.
type windowCounter struct {
	limit    int
	interval time.Duration
	count    int
	start    time.Time
}

func newWindowCounter(limit int, interval time.Duration, now time.Time) windowCounter {
	return windowCounter{limit: limit, interval: interval, start: now}
}

// rollOver resets the counter if its interval has fully elapsed.
func (w *windowCounter) rollOver(now time.Time) {
	if now.Sub(w.start) >= w.interval {
		w.count = 0
		w.start = now
	}
}

// stall returns 0 if the window still has budget, otherwise the time remaining
// until the window's natural expiry.
func (w *windowCounter) stall(now time.Time) time.Duration {
	w.rollOver(now)
	if w.count < w.limit {
		return 0
	}
	return w.start.Add(w.interval).Sub(now)
}

// consume claims one slot of the window's budget.
func (w *windowCounter) consume(now time.Time) {
	w.rollOver(now)
	w.count++
}
