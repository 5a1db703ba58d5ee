package prompts

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/proraahi-core/server/internal/agent/model"
)

//go:embed template/nlu_prompt.txt
var nluSystemPrompt string

// RenderNLUSystem renders the NLU system prompt via Eino prompt component.
// This triggers Prompt callbacks and returns the final system prompt string.
func RenderNLUSystem(ctx context.Context, k model.Knowledge) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(nluSystemPrompt),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"Role":      k.Role,
		"Locations": joinList(k.Locations),
		"Festivals": joinList(k.Festivals),
		"Arts":      joinList(k.Arts),
		"Languages": joinList(k.Languages),
	})
	if err != nil {
		return "", fmt.Errorf("nlu prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("nlu prompt render: empty result")
	}
	return msgs[0].Content, nil
}

func joinList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
