package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/proraahi-core/server/internal/agent/model"
	"github.com/proraahi-core/server/internal/agent/nlu"
	logx "github.com/proraahi-core/server/pkg/logger"
)

const (
	webhookDefaultDays = 3
	webhookErrorText   = "Sorry, I encountered an error. Please try again."
)

// WebhookHandler answers Dialogflow ES fulfillment calls from the local templates.
type WebhookHandler struct {
	assistant *nlu.Assistant
}

func NewWebhookHandler(a *nlu.Assistant) *WebhookHandler {
	if a == nil {
		a = nlu.NewAssistant()
	}
	return &WebhookHandler{assistant: a}
}

type fulfillmentIntent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type fulfillmentQueryResult struct {
	QueryText    string            `json:"queryText"`
	Parameters   map[string]any    `json:"parameters"`
	Intent       fulfillmentIntent `json:"intent"`
	LanguageCode string            `json:"languageCode"`
}

type fulfillmentReq struct {
	ResponseID  string                 `json:"responseId"`
	Session     string                 `json:"session"`
	QueryResult fulfillmentQueryResult `json:"queryResult"`
}

type fulfillmentResp struct {
	FulfillmentText string `json:"fulfillmentText"`
}

// Dialogflow handles POST /dialogflow-webhook. Errors still answer 200 so the agent
// can speak the apology.
func (h *WebhookHandler) Dialogflow(c *gin.Context) {
	var req fulfillmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logx.Warn().Err(err).Msg("Invalid Dialogflow webhook payload")
		writeJSON(c, http.StatusOK, fulfillmentResp{FulfillmentText: webhookErrorText})
		return
	}

	qr := req.QueryResult
	lang := nlu.ResolveLanguage(qr.LanguageCode, qr.QueryText)
	logx.Debug().
		Str("intent", qr.Intent.DisplayName).
		Str("language", lang).
		Msg("Dialogflow webhook")

	writeJSON(c, http.StatusOK, fulfillmentResp{FulfillmentText: h.fulfill(qr, lang)})
}

func (h *WebhookHandler) fulfill(qr fulfillmentQueryResult, lang string) string {
	switch qr.Intent.DisplayName {
	case "Plan_Itinerary":
		params := model.Entities(qr.Parameters)
		days, ok := params.Int("days")
		if !ok || days <= 0 {
			days = webhookDefaultDays
		}
		interests, ok := params.Strings("interests")
		if !ok {
			interests = []string{nlu.DefaultInterest}
		}
		return h.assistant.PlanItinerary(fmt.Sprintf("%d day %s trip", days, strings.Join(interests, " ")), lang)
	case "Tourist_Places":
		return h.assistant.Answer(nlu.TopicTouristPlaces, qr.QueryText, lang)
	case "Cultural_Info":
		return h.assistant.Answer(nlu.TopicCultural, qr.QueryText, lang)
	case "Eco_Tourism":
		return h.assistant.Answer(nlu.TopicEcoTourism, qr.QueryText, lang)
	case "Default Welcome Intent":
		return h.assistant.Answer(nlu.TopicGreeting, qr.QueryText, lang)
	default:
		return h.assistant.Respond(qr.QueryText, lang)
	}
}
