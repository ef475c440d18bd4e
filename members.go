/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package craftmarket

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/craftmarket/go-craftmarket/throttle"
)

// MembersService covers the members endpoints.
type MembersService struct {
	client *Client
}

// Self fetches the member the API token belongs to.
func (s *MembersService) Self(ctx context.Context) (Member, error) {
	return execute[Member](ctx, s.client, throttle.ClassRead, http.MethodGet, "/members/self", nil)
}

// GetByID fetches a member by their identifier.
func (s *MembersService) GetByID(ctx context.Context, memberID uint64) (Member, error) {
	return execute[Member](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/members/%d", memberID), nil)
}

// GetByUsername fetches a member by their username.
func (s *MembersService) GetByUsername(ctx context.Context, username string) (Member, error) {
	return execute[Member](ctx, s.client, throttle.ClassRead, http.MethodGet,
		"/members/username/"+url.PathEscape(username), nil)
}

// ModifySelf changes profile fields of the member the API token belongs to.
func (s *MembersService) ModifySelf(ctx context.Context, fields ModifySelfFields) error {
	_, err := execute[struct{}](ctx, s.client, throttle.ClassWrite, http.MethodPatch, "/members/self", fields)
	return err
}

// RecentBans fetches the most recent member bans.
func (s *MembersService) RecentBans(ctx context.Context) ([]Ban, error) {
	return execute[[]Ban](ctx, s.client, throttle.ClassRead, http.MethodGet, "/members/bans", nil)
}

// ListProfilePosts fetches profile posts on the requesting member's profile.
func (s *MembersService) ListProfilePosts(ctx context.Context, opts *ListOptions) ([]ProfilePost, error) {
	return execute[[]ProfilePost](ctx, s.client, throttle.ClassRead, http.MethodGet,
		"/members/profile-posts"+opts.queryString(), nil)
}

// GetProfilePost fetches a profile post by its identifier.
func (s *MembersService) GetProfilePost(ctx context.Context, profilePostID uint64) (ProfilePost, error) {
	return execute[ProfilePost](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/members/profile-posts/%d", profilePostID), nil)
}

// EditProfilePost replaces the message of a profile post.
func (s *MembersService) EditProfilePost(ctx context.Context, profilePostID uint64, message string) error {
	body := map[string]string{"message": message}
	_, err := execute[struct{}](ctx, s.client, throttle.ClassWrite, http.MethodPatch,
		fmt.Sprintf("/members/profile-posts/%d", profilePostID), body)
	return err
}

// DeleteProfilePost deletes a profile post.
func (s *MembersService) DeleteProfilePost(ctx context.Context, profilePostID uint64) error {
	_, err := execute[struct{}](ctx, s.client, throttle.ClassWrite, http.MethodDelete,
		fmt.Sprintf("/members/profile-posts/%d", profilePostID), nil)
	return err
}
