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

// ResourcesService covers the resources endpoints and their nested
// collections (versions, updates, reviews, purchases, licenses, downloads).
type ResourcesService struct {
	client *Client
}

// Get fetches a resource by its identifier.
func (s *ResourcesService) Get(ctx context.Context, resourceID uint64) (Resource, error) {
	return execute[Resource](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d", resourceID), nil)
}

// ListOwned fetches the resources owned by the token holder in their
// reduced listing representation.
func (s *ResourcesService) ListOwned(ctx context.Context, opts *ListOptions) ([]BasicResource, error) {
	return execute[[]BasicResource](ctx, s.client, throttle.ClassRead, http.MethodGet,
		"/resources/owned"+opts.queryString(), nil)
}

// Versions returns a helper for the version endpoints of a resource.
func (s *ResourcesService) Versions(resourceID uint64) *VersionsService {
	return &VersionsService{client: s.client, resourceID: resourceID}
}

// Updates returns a helper for the update endpoints of a resource.
func (s *ResourcesService) Updates(resourceID uint64) *UpdatesService {
	return &UpdatesService{client: s.client, resourceID: resourceID}
}

// Reviews returns a helper for the review endpoints of a resource.
func (s *ResourcesService) Reviews(resourceID uint64) *ReviewsService {
	return &ReviewsService{client: s.client, resourceID: resourceID}
}

// Purchases returns a helper for the purchase endpoints of a resource.
func (s *ResourcesService) Purchases(resourceID uint64) *PurchasesService {
	return &PurchasesService{client: s.client, resourceID: resourceID}
}

// Licenses returns a helper for the license endpoints of a resource.
func (s *ResourcesService) Licenses(resourceID uint64) *LicensesService {
	return &LicensesService{client: s.client, resourceID: resourceID}
}

// Downloads returns a helper for the download endpoints of a resource.
func (s *ResourcesService) Downloads(resourceID uint64) *DownloadsService {
	return &DownloadsService{client: s.client, resourceID: resourceID}
}

// VersionsService covers the versions of a single resource.
type VersionsService struct {
	client     *Client
	resourceID uint64
}

// List fetches the versions of the resource.
func (s *VersionsService) List(ctx context.Context, opts *ListOptions) ([]Version, error) {
	return execute[[]Version](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/versions%s", s.resourceID, opts.queryString()), nil)
}

// Latest fetches the most recent version of the resource.
func (s *VersionsService) Latest(ctx context.Context) (Version, error) {
	return execute[Version](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/versions/latest", s.resourceID), nil)
}

// Get fetches a version by its identifier.
func (s *VersionsService) Get(ctx context.Context, versionID uint64) (Version, error) {
	return execute[Version](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/versions/%d", s.resourceID, versionID), nil)
}

// Delete soft-deletes a version.
func (s *VersionsService) Delete(ctx context.Context, versionID uint64) error {
	_, err := execute[struct{}](ctx, s.client, throttle.ClassWrite, http.MethodDelete,
		fmt.Sprintf("/resources/%d/versions/%d", s.resourceID, versionID), nil)
	return err
}

// UpdatesService covers the updates of a single resource.
type UpdatesService struct {
	client     *Client
	resourceID uint64
}

// List fetches the updates of the resource.
func (s *UpdatesService) List(ctx context.Context, opts *ListOptions) ([]Update, error) {
	return execute[[]Update](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/updates%s", s.resourceID, opts.queryString()), nil)
}

// Latest fetches the most recent update of the resource.
func (s *UpdatesService) Latest(ctx context.Context) (Update, error) {
	return execute[Update](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/updates/latest", s.resourceID), nil)
}

// Get fetches an update by its identifier.
func (s *UpdatesService) Get(ctx context.Context, updateID uint64) (Update, error) {
	return execute[Update](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/updates/%d", s.resourceID, updateID), nil)
}

// Delete soft-deletes an update.
func (s *UpdatesService) Delete(ctx context.Context, updateID uint64) error {
	_, err := execute[struct{}](ctx, s.client, throttle.ClassWrite, http.MethodDelete,
		fmt.Sprintf("/resources/%d/updates/%d", s.resourceID, updateID), nil)
	return err
}

// ReviewsService covers the reviews of a single resource.
type ReviewsService struct {
	client     *Client
	resourceID uint64
}

// List fetches the reviews of the resource.
func (s *ReviewsService) List(ctx context.Context, opts *ListOptions) ([]Review, error) {
	return execute[[]Review](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/reviews%s", s.resourceID, opts.queryString()), nil)
}

// GetByMember fetches the review a member left on the resource.
func (s *ReviewsService) GetByMember(ctx context.Context, memberID uint64) (Review, error) {
	return execute[Review](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/reviews/members/%d", s.resourceID, memberID), nil)
}

// Respond sets the author's response on a review.
func (s *ReviewsService) Respond(ctx context.Context, reviewID uint64, message string) error {
	body := map[string]string{"message": message}
	_, err := execute[struct{}](ctx, s.client, throttle.ClassWrite, http.MethodPatch,
		fmt.Sprintf("/resources/%d/reviews/%d", s.resourceID, reviewID), body)
	return err
}

// PurchasesService covers the purchases of a single resource.
type PurchasesService struct {
	client     *Client
	resourceID uint64
}

// List fetches the purchases of the resource.
func (s *PurchasesService) List(ctx context.Context, opts *ListOptions) ([]Purchase, error) {
	return execute[[]Purchase](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/purchases%s", s.resourceID, opts.queryString()), nil)
}

// Get fetches a purchase by its identifier.
func (s *PurchasesService) Get(ctx context.Context, purchaseID uint64) (Purchase, error) {
	return execute[Purchase](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/purchases/%d", s.resourceID, purchaseID), nil)
}

// LicensesService covers the licenses of a single resource.
type LicensesService struct {
	client     *Client
	resourceID uint64
}

// List fetches the licenses of the resource.
func (s *LicensesService) List(ctx context.Context, opts *ListOptions) ([]License, error) {
	return execute[[]License](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/licenses%s", s.resourceID, opts.queryString()), nil)
}

// Get fetches a license by its identifier.
func (s *LicensesService) Get(ctx context.Context, licenseID uint64) (License, error) {
	return execute[License](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/licenses/%d", s.resourceID, licenseID), nil)
}

// GetByMember fetches the license held by a member for the resource.
func (s *LicensesService) GetByMember(ctx context.Context, memberID uint64) (License, error) {
	return execute[License](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/licenses/members/%d", s.resourceID, memberID), nil)
}

// Issue issues a new license and returns its identifier.
func (s *LicensesService) Issue(ctx context.Context, fields LicenseIssueFields) (uint64, error) {
	return execute[uint64](ctx, s.client, throttle.ClassWrite, http.MethodPost,
		fmt.Sprintf("/resources/%d/licenses", s.resourceID), fields)
}

// Modify changes an existing license.
func (s *LicensesService) Modify(ctx context.Context, licenseID uint64, fields LicenseModifyFields) error {
	_, err := execute[struct{}](ctx, s.client, throttle.ClassWrite, http.MethodPatch,
		fmt.Sprintf("/resources/%d/licenses/%d", s.resourceID, licenseID), fields)
	return err
}

// DownloadsService covers the downloads of a single resource.
type DownloadsService struct {
	client     *Client
	resourceID uint64
}

// List fetches the downloads of the resource.
func (s *DownloadsService) List(ctx context.Context, opts *ListOptions) ([]Download, error) {
	return execute[[]Download](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/downloads%s", s.resourceID, opts.queryString()), nil)
}

// ListByMember fetches the downloads made by a member.
func (s *DownloadsService) ListByMember(ctx context.Context, memberID uint64, opts *ListOptions) ([]Download, error) {
	return execute[[]Download](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/downloads/members/%d%s", s.resourceID, memberID, opts.queryString()), nil)
}

// ListByVersion fetches the downloads of a specific version.
func (s *DownloadsService) ListByVersion(ctx context.Context, versionID uint64, opts *ListOptions) ([]Download, error) {
	return execute[[]Download](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/resources/%d/downloads/versions/%d%s", s.resourceID, versionID, opts.queryString()), nil)
}
