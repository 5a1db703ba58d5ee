package prompts

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/proraahi-core/server/internal/agent/model"
)

// ResponseKind selects the generation prompt for a workflow.
type ResponseKind string

const (
	ResponseGuide     ResponseKind = "guide"
	ResponseActivity  ResponseKind = "activity"
	ResponseItinerary ResponseKind = "itinerary"
	ResponseGeneral   ResponseKind = "general"
)

//go:embed template/guide_prompt.txt template/activity_prompt.txt template/itinerary_prompt.txt template/general_prompt.txt
var responseTemplates embed.FS

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"bn": "Bengali",
}

// ResponseVars is everything a generation prompt may reference.
type ResponseVars struct {
	Knowledge   model.Knowledge
	Language    string
	Utterance   string
	Interests   []string
	Duration    string
	BudgetTotal float64
	Records     []model.Record
}

// RenderResponseSystem renders the system prompt for one generation call and triggers
// prompt callbacks.
func RenderResponseSystem(ctx context.Context, kind ResponseKind, v ResponseVars) (string, error) {
	raw, err := responseTemplates.ReadFile("template/" + string(kind) + "_prompt.txt")
	if err != nil {
		return "", fmt.Errorf("response prompt %q: %w", kind, err)
	}

	records := "[]"
	if len(v.Records) > 0 {
		b, err := json.Marshal(v.Records)
		if err != nil {
			return "", fmt.Errorf("response prompt records: %w", err)
		}
		records = string(b)
	}

	lang, ok := languageNames[v.Language]
	if !ok {
		lang = languageNames["en"]
	}

	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(string(raw)),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"Role":         v.Knowledge.Role,
		"Capabilities": joinList(v.Knowledge.Capabilities),
		"Locations":    joinList(v.Knowledge.Locations),
		"Festivals":    joinList(v.Knowledge.Festivals),
		"Arts":         joinList(v.Knowledge.Arts),
		"LanguageName": lang,
		"Utterance":    v.Utterance,
		"Interests":    joinList(v.Interests),
		"Duration":     v.Duration,
		"BudgetTotal":  fmt.Sprintf("%.0f", v.BudgetTotal),
		"Records":      records,
	})
	if err != nil {
		return "", fmt.Errorf("response prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("response prompt render: empty result")
	}
	return msgs[0].Content, nil
}
