package model

import (
	"context"
	"time"
)

// SessionContext carries what a session learned in earlier turns so slot filling can
// continue across messages.
type SessionContext struct {
	SessionID string    `json:"session_id"`
	Intent    Intent    `json:"intent,omitempty"`
	Stage     Stage     `json:"workflow_stage,omitempty"`
	Entities  Entities  `json:"entities,omitempty"`
	Language  string    `json:"language,omitempty"`
	Turns     int       `json:"turns"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AwaitingSlots reports whether the previous turn stopped to ask for missing slots.
func (s *SessionContext) AwaitingSlots() bool {
	return s != nil && s.Stage == StageInformationGathering && s.Intent != ""
}

// SessionStore persists SessionContext between turns. Get returns nil, nil when the
// session has no context yet. Ordering of concurrent Puts for one session is the
// store's concern.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*SessionContext, error)
	Put(ctx context.Context, sessionID string, sc *SessionContext) error
}
