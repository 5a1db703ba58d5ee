package repo

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/schema"

	"github.com/proraahi-core/server/internal/agent/model"
)

// MemorySessionStore is a process-local SessionStore.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]model.SessionContext
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]model.SessionContext)}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*model.SessionContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	sc.Entities = sc.Entities.Clone()
	return &sc, nil
}

func (s *MemorySessionStore) Put(_ context.Context, sessionID string, sc *model.SessionContext) error {
	if sc == nil {
		return nil
	}
	cp := *sc
	cp.Entities = sc.Entities.Clone()
	s.mu.Lock()
	s.sessions[sessionID] = cp
	s.mu.Unlock()
	return nil
}

// MemoryConversationRepository is a process-local transcript store.
type MemoryConversationRepository struct {
	mu       sync.RWMutex
	messages map[string][]*schema.Message
}

func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{messages: make(map[string][]*schema.Message)}
}

func (r *MemoryConversationRepository) AddMessage(_ context.Context, sessionID string, message *schema.Message) error {
	r.mu.Lock()
	r.messages[sessionID] = append(r.messages[sessionID], message)
	r.mu.Unlock()
	return nil
}

func (r *MemoryConversationRepository) LoadHistory(_ context.Context, sessionID string) (*model.ConversationHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	msgs := make([]*schema.Message, len(r.messages[sessionID]))
	copy(msgs, r.messages[sessionID])
	return &model.ConversationHistory{SessionID: sessionID, Messages: msgs}, nil
}

func (r *MemoryConversationRepository) ClearHistory(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.messages, sessionID)
	r.mu.Unlock()
	return nil
}

func (r *MemoryConversationRepository) GetMessageCount(_ context.Context, sessionID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages[sessionID]), nil
}

var (
	_ model.SessionStore           = (*MemorySessionStore)(nil)
	_ model.ConversationRepository = (*MemoryConversationRepository)(nil)
)
