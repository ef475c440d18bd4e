/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package craftmarket

import "fmt"

// TransportError is returned when a request attempt never produced an HTTP
// response (connection failure, timeout, interrupted body). It is terminal:
// the executor does not retry transport failures.
type TransportError struct {
	Inner error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s", e.Inner.Error())
}

// Unwrap returns the next error in the error chain.
func (e *TransportError) Unwrap() error {
	return e.Inner
}

// ProtocolError is returned when the server violates the rate-limiting
// protocol, e.g. a 429 response without a parsable Retry-After header.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol: %s", e.Message)
}

// DecodeError is returned when a response body cannot be decoded into the
// expected envelope, or the envelope is internally inconsistent.
// Status carries the HTTP status code of the offending response.
type DecodeError struct {
	Status int
	Inner  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response (status %d): %s", e.Status, e.Inner.Error())
}

// Unwrap returns the next error in the error chain.
func (e *DecodeError) Unwrap() error {
	return e.Inner
}

// APIError is a structured error reported by the API itself inside a valid
// response envelope. It is a typed outcome, not a client failure.
type APIError struct {
	// Code is a machine-readable error identifier, e.g. "ContentNotFoundError".
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}
