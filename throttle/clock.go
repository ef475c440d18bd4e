/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package throttle

import "time"

// Clock provides the current time for all rate-limit accounting.
// It is pluggable so that window and cool-down math can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
