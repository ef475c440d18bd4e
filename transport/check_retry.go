/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package transport

import (
	"context"
	"fmt"
	"net/http"

	"github.com/acronis/go-appkit/httpclient"
)

// CheckTransientRetry determines if a transport-level retry attempt is needed.
// It diverges from httpclient.DefaultCheckRetry in one point: 429 responses
// are never retried here. Rate-limit rejections must reach the request
// executor, which owns the throttle state and the Retry-After handling.
func CheckTransientRetry(_ context.Context, resp *http.Response, roundTripErr error, _ int) (bool, error) {
	if roundTripErr != nil {
		return httpclient.CheckErrorIsTemporary(roundTripErr), nil
	}
	if resp == nil {
		return false, fmt.Errorf("both response and round trip error are nil")
	}
	return resp.StatusCode >= http.StatusInternalServerError, nil
}
