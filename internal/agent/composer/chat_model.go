package composer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	agentmodel "github.com/proraahi-core/server/internal/agent/model"
	logx "github.com/proraahi-core/server/pkg/logger"
)

// ChatModelGenerator drives an Eino chat model (Gemini in production).
type ChatModelGenerator struct {
	chatModel model.BaseChatModel
	modelName string
	timeout   time.Duration
}

func NewChatModelGenerator(cm model.BaseChatModel, modelName string, timeout time.Duration) *ChatModelGenerator {
	return &ChatModelGenerator{chatModel: cm, modelName: modelName, timeout: timeout}
}

func (g *ChatModelGenerator) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	if g == nil || g.chatModel == nil {
		return "", ErrNoGenerator
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	out, err := g.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}, model.WithTemperature(temperature))
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", ErrEmptyCompletion
	}

	if out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
		cost := agentmodel.CostOf(g.modelName, out.ResponseMeta.Usage)
		logx.Debug().
			Str("component", "composer").
			Str("model", cost.Model).
			Int("prompt_tokens", cost.PromptTokens).
			Int("completion_tokens", cost.CompletionTokens).
			Float64("input_cost_usd", cost.InputCost).
			Float64("output_cost_usd", cost.OutputCost).
			Float64("total_cost_usd", cost.TotalCost).
			Msg("LLM usage")

		// Only succeeds inside a graph run; standalone calls have no turn state.
		_ = compose.ProcessState(ctx, func(_ context.Context, s *agentmodel.TurnState) error {
			s.TotalCostUSD += cost.TotalCost
			return nil
		})
	}
	return strings.TrimSpace(out.Content), nil
}

var _ Generator = (*ChatModelGenerator)(nil)
