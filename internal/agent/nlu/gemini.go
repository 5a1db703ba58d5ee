package nlu

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/proraahi-core/server/internal/agent/model"
	logx "github.com/proraahi-core/server/pkg/logger"
)

// GeminiProvider classifies utterances with Gemini in JSON response mode.
type GeminiProvider struct {
	client *genai.Client
	cfg    model.NLUModelConfig
}

func NewGeminiProvider(client *genai.Client, cfg model.NLUModelConfig) *GeminiProvider {
	return &GeminiProvider{client: client, cfg: cfg}
}

func (p *GeminiProvider) Classify(ctx context.Context, systemPrompt, utterance string) (string, error) {
	if p == nil || p.client == nil {
		return "", ErrProviderUnavailable
	}
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.cfg.Model, genai.Text(utterance), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(p.cfg.Temperature),
		MaxOutputTokens:   p.cfg.MaxTokens,
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if u := resp.UsageMetadata; u != nil {
		cost := model.CostOf(p.cfg.Model, &schema.TokenUsage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		})
		logx.Debug().
			Str("component", "nlu_provider").
			Str("model", cost.Model).
			Int("prompt_tokens", cost.PromptTokens).
			Int("completion_tokens", cost.CompletionTokens).
			Float64("total_cost_usd", cost.TotalCost).
			Msg("LLM usage")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty candidate", ErrMalformedResponse)
	}
	return text, nil
}

var _ Provider = (*GeminiProvider)(nil)
