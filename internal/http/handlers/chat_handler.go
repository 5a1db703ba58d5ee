package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/proraahi-core/server/internal/agent/model"
)

// Processor runs one dialogue turn.
type Processor interface {
	Process(ctx context.Context, u model.Utterance) *model.WorkflowResult
}

type ChatHandler struct {
	engine  Processor
	timeout time.Duration
}

func NewChatHandler(engine Processor, timeout time.Duration) *ChatHandler {
	return &ChatHandler{engine: engine, timeout: timeout}
}

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Language  string `json:"language"`
}

type chatResp struct {
	Response     string                `json:"response"`
	SessionID    string                `json:"session_id"`
	Timestamp    time.Time             `json:"timestamp"`
	WorkflowData *model.WorkflowResult `json:"workflow_data"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	u := h.utterance(req.Message, req.SessionID, req.Language)
	res := h.process(c, u)
	writeJSON(c, http.StatusOK, chatResp{
		Response:     res.Response,
		SessionID:    u.SessionID,
		Timestamp:    time.Now().UTC(),
		WorkflowData: res,
	})
}

type workflowReq struct {
	UserInput string `json:"user_input"`
	SessionID string `json:"session_id"`
	Language  string `json:"language"`
}

// Workflow handles POST /api/agent/workflow and returns the raw workflow result.
func (h *ChatHandler) Workflow(c *gin.Context) {
	var req workflowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.UserInput = strings.TrimSpace(req.UserInput)
	if req.UserInput == "" {
		writeError(c, http.StatusBadRequest, "missing user_input")
		return
	}
	writeJSON(c, http.StatusOK, h.process(c, h.utterance(req.UserInput, req.SessionID, req.Language)))
}

func (h *ChatHandler) utterance(text, sessionID, lang string) model.Utterance {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return model.Utterance{
		Text:       text,
		Language:   lang,
		SessionID:  sessionID,
		ReceivedAt: time.Now().UTC(),
	}
}

func (h *ChatHandler) process(c *gin.Context, u model.Utterance) *model.WorkflowResult {
	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	return h.engine.Process(ctx, u)
}
