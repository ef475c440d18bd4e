/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

// Package throttle tracks the client's compliance with the CraftMarket API's
// dynamic rate limits. The API enforces separate, undisclosed budgets for read
// and write traffic and answers over-budget requests with 429 and a Retry-After
// value. The Throttle combines two signals to decide when the next request of a
// class may be sent: locally predicted window budgets (proactive) and
// server-asserted cool-downs (reactive). The required wait is the maximum of
// the two, so the client never sends early under either signal and never waits
// longer than both demand.
package throttle
