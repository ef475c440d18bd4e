/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

// Package transport builds the *http.Client used by the CraftMarket API client.
// It decorates a base http.RoundTripper with authentication, User-Agent and
// X-Request-ID headers, logging, metrics, optional client-side request
// smoothing and optional retries for transient server/network failures.
//
// Rate-limit (429) handling deliberately does NOT live here: it is owned by
// the request executor together with the throttle package, which needs to
// observe every rejection to keep its per-class budgets honest.
package transport
