/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package transport

import (
	"context"
	"fmt"
	"net/http"
)

// TokenProvider supplies the value of the Authorization header for outgoing requests.
type TokenProvider interface {
	AuthorizationHeader(ctx context.Context) (string, error)
}

// AuthRoundTripperError is returned in RoundTrip method of AuthRoundTripper
// when the Authorization header value cannot be obtained.
type AuthRoundTripperError struct {
	Inner error
}

func (e *AuthRoundTripperError) Error() string {
	return fmt.Sprintf("auth round trip: %s", e.Inner.Error())
}

// Unwrap returns the next error in the error chain.
func (e *AuthRoundTripperError) Unwrap() error {
	return e.Inner
}

// AuthRoundTripper implements http.RoundTripper interface
// and sets Authorization HTTP header in all outgoing requests.
type AuthRoundTripper struct {
	Delegate      http.RoundTripper
	TokenProvider TokenProvider
}

// NewAuthRoundTripper creates a new AuthRoundTripper.
func NewAuthRoundTripper(delegate http.RoundTripper, tokenProvider TokenProvider) *AuthRoundTripper {
	return &AuthRoundTripper{delegate, tokenProvider}
}

// RoundTrip executes a single HTTP transaction, returning a Response for the provided Request.
func (rt *AuthRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		defer func() {
			_ = req.Body.Close() // Per RoundTripper contract.
		}()
	}
	if req.Header.Get("Authorization") != "" {
		return rt.Delegate.RoundTrip(req)
	}
	headerValue, err := rt.TokenProvider.AuthorizationHeader(req.Context())
	if err != nil {
		return nil, &AuthRoundTripperError{Inner: err}
	}
	req = req.Clone(req.Context()) // Per RoundTripper contract.
	req.Header.Set("Authorization", headerValue)
	return rt.Delegate.RoundTrip(req)
}
