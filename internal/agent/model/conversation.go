package model

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// ConversationRepository stores the chat transcript of a session.
type ConversationRepository interface {
	// AddMessage appends a message to the session transcript.
	AddMessage(ctx context.Context, sessionID string, message *schema.Message) error

	// LoadHistory returns the transcript in insertion order.
	LoadHistory(ctx context.Context, sessionID string) (*ConversationHistory, error)

	ClearHistory(ctx context.Context, sessionID string) error

	GetMessageCount(ctx context.Context, sessionID string) (int, error)
}

type ConversationHistory struct {
	SessionID string
	Messages  []*schema.Message
}
