/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package craftmarket

import (
	"context"
	"fmt"
	"net/http"

	"github.com/craftmarket/go-craftmarket/throttle"
)

// ThreadsService covers the forum thread endpoints.
type ThreadsService struct {
	client *Client
}

// List fetches threads the requesting member can see.
func (s *ThreadsService) List(ctx context.Context, opts *ListOptions) ([]BasicThread, error) {
	return execute[[]BasicThread](ctx, s.client, throttle.ClassRead, http.MethodGet,
		"/threads"+opts.queryString(), nil)
}

// Get fetches a thread by its identifier.
func (s *ThreadsService) Get(ctx context.Context, threadID uint64) (Thread, error) {
	return execute[Thread](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/threads/%d", threadID), nil)
}

// ListReplies fetches the replies of a thread.
func (s *ThreadsService) ListReplies(ctx context.Context, threadID uint64, opts *ListOptions) ([]ThreadReply, error) {
	return execute[[]ThreadReply](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/threads/%d/replies%s", threadID, opts.queryString()), nil)
}

// Reply posts a reply to a thread and returns the new reply's identifier.
func (s *ThreadsService) Reply(ctx context.Context, threadID uint64, message string) (uint64, error) {
	body := map[string]string{"message": message}
	return execute[uint64](ctx, s.client, throttle.ClassWrite, http.MethodPost,
		fmt.Sprintf("/threads/%d/replies", threadID), body)
}
