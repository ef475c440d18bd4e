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

// ConversationsService covers the conversations endpoints.
type ConversationsService struct {
	client *Client
}

// ListUnread fetches conversations with unread replies.
func (s *ConversationsService) ListUnread(ctx context.Context) ([]Conversation, error) {
	return execute[[]Conversation](ctx, s.client, throttle.ClassRead, http.MethodGet, "/conversations", nil)
}

// ListReplies fetches the replies of a conversation.
func (s *ConversationsService) ListReplies(ctx context.Context, conversationID uint64) ([]ConversationReply, error) {
	return execute[[]ConversationReply](ctx, s.client, throttle.ClassRead, http.MethodGet,
		fmt.Sprintf("/conversations/%d/replies", conversationID), nil)
}

// Start opens a new conversation and returns its identifier.
func (s *ConversationsService) Start(ctx context.Context, title, message string, recipientIDs []uint64) (uint64, error) {
	body := struct {
		Title        string   `json:"title"`
		Message      string   `json:"message"`
		RecipientIDs []uint64 `json:"recipient_ids"`
	}{title, message, recipientIDs}
	return execute[uint64](ctx, s.client, throttle.ClassWrite, http.MethodPost, "/conversations", body)
}

// Reply adds a message to a conversation and returns the new message's identifier.
func (s *ConversationsService) Reply(ctx context.Context, conversationID uint64, message string) (uint64, error) {
	body := map[string]string{"message": message}
	return execute[uint64](ctx, s.client, throttle.ClassWrite, http.MethodPost,
		fmt.Sprintf("/conversations/%d/replies", conversationID), body)
}
