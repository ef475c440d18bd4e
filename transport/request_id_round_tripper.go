/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package transport

import (
	"net/http"

	"github.com/rs/xid"
)

// RequestIDHeader is the HTTP header carrying the client-generated request ID.
const RequestIDHeader = "X-Request-ID"

// RequestIDRoundTripper sets a unique X-Request-ID header on every outgoing
// request that doesn't already carry one, so that requests can be correlated
// with server-side logs when reporting API issues.
type RequestIDRoundTripper struct {
	Delegate http.RoundTripper

	// RequestIDProvider generates request IDs. xid is used by default.
	RequestIDProvider func() string
}

// NewRequestIDRoundTripper creates a new RequestIDRoundTripper.
func NewRequestIDRoundTripper(delegate http.RoundTripper) *RequestIDRoundTripper {
	return &RequestIDRoundTripper{Delegate: delegate}
}

// RoundTrip executes a single HTTP transaction, returning a Response for the provided Request.
func (rt *RequestIDRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(RequestIDHeader) != "" {
		return rt.Delegate.RoundTrip(req)
	}
	requestID := ""
	if rt.RequestIDProvider != nil {
		requestID = rt.RequestIDProvider()
	} else {
		requestID = xid.New().String()
	}
	req = req.Clone(req.Context()) // Per RoundTripper contract.
	req.Header.Set(RequestIDHeader, requestID)
	return rt.Delegate.RoundTrip(req)
}
