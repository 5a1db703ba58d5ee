package model

import "time"

// ================ Config ================
type ConversationConfig struct {
	TTL        time.Duration `envconfig:"CONVERSATION_TTL" default:"24h"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	NLU        struct {
		MaxTurns int `envconfig:"CONVERSATION_NLU_MAX_TURNS" default:"6"`
	}
}

type NLUModelConfig struct {
	Model       string        `envconfig:"NLU_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int32         `envconfig:"NLU_MAX_TOKENS" default:"1024"`
	Temperature float32       `envconfig:"NLU_TEMPERATURE" default:"0.3"`
	Timeout     time.Duration `envconfig:"NLU_TIMEOUT" default:"8s"`
	// ConfidenceThreshold is logged next to each classification; it never gates a workflow.
	ConfidenceThreshold float64 `envconfig:"NLU_CONFIDENCE_THRESHOLD" default:"0.6"`
}

type ResponseModelConfig struct {
	Model       string        `envconfig:"RESPONSE_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int           `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32       `envconfig:"RESPONSE_TEMPERATURE" default:"0.7"`
	Timeout     time.Duration `envconfig:"RESPONSE_TIMEOUT" default:"20s"`
}

type WorkflowConfig struct {
	BudgetBaseRate float64 `envconfig:"BUDGET_BASE_RATE" default:"3000"`
	GuideTopN      int     `envconfig:"WORKFLOW_GUIDE_TOP_N" default:"3"`
	ActivityTopN   int     `envconfig:"WORKFLOW_ACTIVITY_TOP_N" default:"4"`
}
