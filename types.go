/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package craftmarket

import (
	"net/url"
	"strconv"
)

// ListOptions controls sorting and pagination of list endpoints.
// The meaning of individual values is defined by the API and treated opaquely.
type ListOptions struct {
	// Sort is the field to sort by.
	Sort string

	// Order is the sort direction, e.g. "asc" or "desc".
	Order string

	// Page is the 1-based page number.
	Page int
}

// queryString renders the options as a URL query suffix, empty when unset.
func (o *ListOptions) queryString() string {
	if o == nil {
		return ""
	}
	values := url.Values{}
	if o.Sort != "" {
		values.Set("sort", o.Sort)
	}
	if o.Order != "" {
		values.Set("order", o.Order)
	}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// MetricsSnapshot holds API-side metric values from the prior interval.
type MetricsSnapshot struct {
	Interval MetricsInterval   `json:"interval"`
	Metrics  map[string]uint64 `json:"metrics"`
}

// MetricsInterval describes the refresh interval of a metrics snapshot.
type MetricsInterval struct {
	Time uint16 `json:"time"`
	Unit string `json:"unit"`
	Last uint64 `json:"last"`
}

// Resource is the full representation of a marketplace resource.
type Resource struct {
	ResourceID         uint64  `json:"resource_id"`
	AuthorID           uint64  `json:"author_id"`
	Title              string  `json:"title"`
	TagLine            string  `json:"tag_line"`
	Description        string  `json:"description"`
	ReleaseDate        uint64  `json:"release_date"`
	LastUpdateDate     uint64  `json:"last_update_date"`
	CategoryTitle      string  `json:"category_title"`
	CurrentVersionID   uint64  `json:"current_version_id"`
	DiscussionThreadID uint64  `json:"discussion_thread_id"`
	Price              float64 `json:"price"`
	Currency           string  `json:"currency"`
	PurchaseCount      uint64  `json:"purchase_count"`
	DownloadCount      uint64  `json:"download_count"`
	ReviewCount        uint64  `json:"review_count"`
	ReviewAverage      float64 `json:"review_average"`
}

// BasicResource is the reduced representation used in resource listings.
type BasicResource struct {
	ResourceID uint64  `json:"resource_id"`
	AuthorID   uint64  `json:"author_id"`
	Title      string  `json:"title"`
	TagLine    string  `json:"tag_line"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
}

// Version is a released version of a resource.
type Version struct {
	VersionID     uint64 `json:"version_id"`
	UpdateID      uint64 `json:"update_id"`
	Name          string `json:"name"`
	Deleted       *bool  `json:"deleted,omitempty"`
	ReleaseDate   uint64 `json:"release_date"`
	DownloadCount uint64 `json:"download_count"`
}

// Update is a published update of a resource.
type Update struct {
	UpdateID   uint64 `json:"update_id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Deleted    *bool  `json:"deleted,omitempty"`
	UpdateDate uint64 `json:"update_date"`
	Likes      uint64 `json:"likes"`
}

// Review is a member review of a resource.
type Review struct {
	ReviewID       uint64 `json:"review_id"`
	ResourceID     uint64 `json:"resource_id"`
	VersionID      uint64 `json:"version_id"`
	VersionName    string `json:"version_name"`
	ReviewerID     uint64 `json:"reviewer_id"`
	ReviewDate     uint64 `json:"review_date"`
	Deleted        *bool  `json:"deleted,omitempty"`
	Rating         uint8  `json:"rating"`
	Message        string `json:"message"`
	AuthorResponse string `json:"author_response"`
}

// Purchase is a purchase record of a resource.
type Purchase struct {
	PurchaseID     uint64  `json:"purchase_id"`
	PurchaserID    uint64  `json:"purchaser_id"`
	LicenseID      uint64  `json:"license_id"`
	Renewal        bool    `json:"renewal"`
	Status         string  `json:"status"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	PurchaseDate   uint64  `json:"purchase_date"`
	ValidationDate uint64  `json:"validation_date"`
}

// License is a license record of a resource.
type License struct {
	LicenseID       uint64 `json:"license_id"`
	PurchaserID     uint64 `json:"purchaser_id"`
	Validated       bool   `json:"validated"`
	Active          bool   `json:"active"`
	StartDate       uint64 `json:"start_date"`
	EndDate         uint64 `json:"end_date"`
	PreviousEndDate uint64 `json:"previous_end_date"`
}

// Download is a download record of a resource version.
type Download struct {
	ResourceID   uint64 `json:"resource_id"`
	VersionID    uint64 `json:"version_id"`
	DownloaderID uint64 `json:"downloader_id"`
	DownloadDate uint64 `json:"download_date"`
}

// Member is a marketplace member.
type Member struct {
	MemberID         uint64  `json:"member_id"`
	Username         string  `json:"username"`
	JoinDate         uint64  `json:"join_date"`
	LastActivityDate *uint64 `json:"last_activity_date,omitempty"`
	Banned           bool    `json:"banned"`
	Suspended        bool    `json:"suspended"`
	Restricted       bool    `json:"restricted"`
	Disabled         bool    `json:"disabled"`
	PostCount        uint64  `json:"post_count"`
	ResourceCount    uint64  `json:"resource_count"`
	PurchaseCount    uint64  `json:"purchase_count"`
	FeedbackPositive uint64  `json:"feedback_positive"`
	FeedbackNeutral  uint64  `json:"feedback_neutral"`
	FeedbackNegative uint64  `json:"feedback_negative"`
}

// ProfilePost is a post on a member's profile.
type ProfilePost struct {
	ProfilePostID uint64 `json:"profile_post_id"`
	AuthorID      uint64 `json:"author_id"`
	PostDate      uint64 `json:"post_date"`
	Message       string `json:"message"`
	CommentCount  uint64 `json:"comment_count"`
}

// Ban is a record of a member ban.
type Ban struct {
	MemberID   uint64 `json:"member_id"`
	BannedByID uint64 `json:"banned_by_id"`
	BanDate    uint64 `json:"ban_date"`
	Reason     string `json:"reason"`
}

// ModifySelfFields are the editable fields of the requesting member's profile.
// Nil fields are left unchanged.
type ModifySelfFields struct {
	CustomTitle *string `json:"custom_title,omitempty"`
	AboutMe     *string `json:"about_me,omitempty"`
	Signature   *string `json:"signature,omitempty"`
}

// Conversation is a private conversation visible to the requesting member.
type Conversation struct {
	ConversationID  uint64   `json:"conversation_id"`
	Title           string   `json:"title"`
	CreationDate    uint64   `json:"creation_date"`
	CreatorID       uint64   `json:"creator_id"`
	LastMessageDate uint64   `json:"last_message_date"`
	LastReadDate    uint64   `json:"last_read_date"`
	Open            bool     `json:"open"`
	ReplyCount      uint64   `json:"reply_count"`
	RecipientIDs    []uint64 `json:"recipient_ids"`
}

// ConversationReply is a message within a conversation.
type ConversationReply struct {
	MessageID   uint64 `json:"message_id"`
	MessageDate uint64 `json:"message_date"`
	AuthorID    uint64 `json:"author_id"`
	Message     string `json:"message"`
}

// BasicThread is the reduced representation used in thread listings.
type BasicThread struct {
	ThreadID        uint64 `json:"thread_id"`
	Title           string `json:"title"`
	ReplyCount      uint64 `json:"reply_count"`
	ViewCount       uint64 `json:"view_count"`
	CreationDate    uint64 `json:"creation_date"`
	LastMessageDate uint64 `json:"last_message_date"`
}

// Thread is the full representation of a forum thread.
type Thread struct {
	ThreadID     uint64 `json:"thread_id"`
	ForumName    string `json:"forum_name"`
	Title        string `json:"title"`
	ReplyCount   uint64 `json:"reply_count"`
	ViewCount    uint64 `json:"view_count"`
	PostDate     uint64 `json:"post_date"`
	ThreadType   string `json:"thread_type"`
	ThreadOpen   bool   `json:"thread_open"`
	LastPostDate uint64 `json:"last_post_date"`
}

// ThreadReply is a reply within a forum thread.
type ThreadReply struct {
	ReplyID  uint64 `json:"reply_id"`
	AuthorID uint64 `json:"author_id"`
	PostDate uint64 `json:"post_date"`
	Message  string `json:"message"`
}

// Alert is an unread notification for the requesting member.
type Alert struct {
	CausedMemberID uint64 `json:"caused_member_id"`
	ContentType    string `json:"content_type"`
	ContentID      uint64 `json:"content_id"`
	AlertType      string `json:"alert_type"`
	AlertDate      uint64 `json:"alert_date"`
}

// LicenseIssueFields are the fields for issuing a permanent or temporary license.
// For a permanent license set Permanent true and ActiveDate; for a temporary
// one set StartDate and EndDate.
type LicenseIssueFields struct {
	PurchaserID uint64  `json:"purchaser_id"`
	Permanent   bool    `json:"permanent"`
	Active      *bool   `json:"active,omitempty"`
	StartDate   *uint64 `json:"start_date,omitempty"`
	EndDate     *uint64 `json:"end_date,omitempty"`
}

// LicenseModifyFields are the editable fields of an existing license.
type LicenseModifyFields struct {
	Permanent bool    `json:"permanent"`
	Active    *bool   `json:"active,omitempty"`
	StartDate *uint64 `json:"start_date,omitempty"`
	EndDate   *uint64 `json:"end_date,omitempty"`
}
