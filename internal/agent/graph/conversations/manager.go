package conversations

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/proraahi-core/server/internal/agent/model"
)

type MessagesManager struct {
	conversationRepo model.ConversationRepository
	nluMaxTurns      int
}

func NewMessagesManager(conversationRepo model.ConversationRepository, config model.ConversationConfig) *MessagesManager {
	return &MessagesManager{
		conversationRepo: conversationRepo,
		nluMaxTurns:      config.NLU.MaxTurns,
	}
}

// =========== Function for NLU ===========

// ProcessNLUMessage stores the user message and returns the NLU input: recent turns
// followed by the message to classify.
func (cm *MessagesManager) ProcessNLUMessage(ctx context.Context, sessionID string, query string) (string, error) {
	if err := cm.conversationRepo.AddMessage(ctx, sessionID, schema.UserMessage(query)); err != nil {
		return "", err
	}

	history, err := cm.conversationRepo.LoadHistory(ctx, sessionID)
	if err != nil {
		return "", err
	}

	// The message just stored is the last entry; it is rendered separately.
	previous := history.Messages
	if n := len(previous); n > 0 {
		previous = previous[:n-1]
	}

	var fullContext strings.Builder
	fullContext.WriteString(cm.buildNLUContext(previous))
	fullContext.WriteString("\n<current_message_to_analyze>\n")
	fullContext.WriteString("UserMessage(" + query + ")\n")
	fullContext.WriteString("</current_message_to_analyze>")

	return fullContext.String(), nil
}

func (cm *MessagesManager) buildNLUContext(messages []*schema.Message) string {
	recentMessages := trimTail(messages, cm.nluMaxTurns)

	var contextBuilder strings.Builder
	contextBuilder.WriteString("<conversation_context>\n")

	for _, msg := range recentMessages {
		if msg == nil || msg.Content == "" {
			continue
		}
		switch msg.Role {
		case schema.User:
			contextBuilder.WriteString("UserMessage(" + msg.Content + ")\n")
		case schema.Assistant:
			contextBuilder.WriteString("AssistantMessage(" + msg.Content + ")\n")
		}
	}

	contextBuilder.WriteString("</conversation_context>")
	return contextBuilder.String()
}

func (cm *MessagesManager) SaveResponse(ctx context.Context, sessionID string, content string) error {
	return cm.conversationRepo.AddMessage(ctx, sessionID, schema.AssistantMessage(content, nil))
}

// ====================== Helper function ======================
func trimTail(messages []*schema.Message, maxTurns int) []*schema.Message {
	if maxTurns <= 0 || len(messages) <= maxTurns {
		result := make([]*schema.Message, len(messages))
		copy(result, messages)
		return result
	}
	source := messages[len(messages)-maxTurns:]
	result := make([]*schema.Message, len(source))
	copy(result, source)
	return result
}
