/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package craftmarket

import (
	"encoding/json"
	"fmt"
)

// Envelope result discriminator values.
const (
	resultSuccess = "success"
	resultError   = "error"
)

// apiResponse is the envelope every API endpoint wraps its payload in.
// result is "success" (data present) or "error" (error present); any other
// combination is an inconsistency surfaced as a DecodeError.
type apiResponse[T any] struct {
	Result string    `json:"result"`
	Data   *T        `json:"data,omitempty"`
	Error  *APIError `json:"error,omitempty"`
}

// unmarshalEnvelope decodes raw into an envelope and extracts the payload.
// status is the HTTP status code of the response, kept for error reporting.
func unmarshalEnvelope[T any](raw []byte, status int) (T, error) {
	var zero T

	var envelope apiResponse[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return zero, &DecodeError{Status: status, Inner: err}
	}

	switch envelope.Result {
	case resultSuccess:
		if envelope.Data == nil {
			// Operations without a payload (deletes, edits) may omit data.
			if _, ok := any(zero).(struct{}); ok {
				return zero, nil
			}
			return zero, &DecodeError{Status: status, Inner: fmt.Errorf("result is %q but data is missing", resultSuccess)}
		}
		return *envelope.Data, nil
	case resultError:
		if envelope.Error == nil {
			return zero, &DecodeError{Status: status, Inner: fmt.Errorf("result is %q but error is missing", resultError)}
		}
		return zero, envelope.Error
	default:
		return zero, &DecodeError{Status: status, Inner: fmt.Errorf("unknown result %q", envelope.Result)}
	}
}
