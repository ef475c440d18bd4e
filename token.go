/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package craftmarket

import (
	"context"
	"errors"
)

// APIToken authenticates a client with the API. The token value is treated
// opaquely; only its scope (private or shared) affects the header format.
type APIToken struct {
	scope string
	value string
}

// PrivateToken creates a token with the private scope.
func PrivateToken(value string) APIToken {
	return APIToken{scope: "Private", value: value}
}

// SharedToken creates a token with the shared scope.
func SharedToken(value string) APIToken {
	return APIToken{scope: "Shared", value: value}
}

// AuthorizationHeader implements transport.TokenProvider.
func (t APIToken) AuthorizationHeader(_ context.Context) (string, error) {
	if t.scope == "" || t.value == "" {
		return "", errors.New("api token is empty")
	}
	return t.scope + " " + t.value, nil
}
