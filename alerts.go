/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package craftmarket

import (
	"context"
	"net/http"

	"github.com/craftmarket/go-craftmarket/throttle"
)

// AlertsService covers the alerts endpoints.
type AlertsService struct {
	client *Client
}

// List fetches the requesting member's unread alerts.
func (s *AlertsService) List(ctx context.Context) ([]Alert, error) {
	return execute[[]Alert](ctx, s.client, throttle.ClassRead, http.MethodGet, "/alerts", nil)
}

// MarkAllRead marks all of the requesting member's alerts as read.
func (s *AlertsService) MarkAllRead(ctx context.Context) error {
	body := map[string]bool{"read": true}
	_, err := execute[struct{}](ctx, s.client, throttle.ClassWrite, http.MethodPatch, "/alerts", body)
	return err
}
