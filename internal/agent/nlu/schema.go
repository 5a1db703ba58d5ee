package nlu

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/proraahi-core/server/internal/agent/model"
)

const nluResponseSchema = `{
  "type": "object",
  "required": ["primary_intent", "entities", "confidence", "next_actions"],
  "properties": {
    "primary_intent": {
      "type": "string",
      "enum": [
        "transportation_booking",
        "accommodation_booking",
        "guide_booking",
        "activity_planning",
        "itinerary_creation",
        "general_inquiry"
      ]
    },
    "entities": {"type": "object"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "next_actions": {"type": "array", "items": {"type": "string"}}
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

func responseSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(nluResponseSchema))
	})
	return compiledSchema, schemaErr
}

type providerResponse struct {
	PrimaryIntent string         `json:"primary_intent"`
	Entities      map[string]any `json:"entities"`
	Confidence    float64        `json:"confidence"`
	NextActions   []string       `json:"next_actions"`
}

// ParseProviderResponse validates raw provider output against the response schema and
// converts it into an IntentResult. Any violation wraps ErrMalformedResponse.
func ParseProviderResponse(raw string) (model.IntentResult, error) {
	doc := cleanJSON(raw)
	if doc == "" {
		return model.IntentResult{}, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	schema, err := responseSchema()
	if err != nil {
		return model.IntentResult{}, fmt.Errorf("compile nlu schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return model.IntentResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return model.IntentResult{}, fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(msgs, "; "))
	}

	var pr providerResponse
	if err := json.Unmarshal([]byte(doc), &pr); err != nil {
		return model.IntentResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	intent, _ := model.ParseIntent(pr.PrimaryIntent)

	return model.IntentResult{
		PrimaryIntent: intent,
		Entities:      normalizeEntities(pr.Entities),
		Confidence:    pr.Confidence,
		NextActions:   pr.NextActions,
		Source:        model.SourceProvider,
	}, nil
}

// cleanJSON strips markdown code fences some models wrap around JSON output.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

var entityAliases = map[string]string{
	"from":           model.SlotFromLocation,
	"origin":         model.SlotFromLocation,
	"departure_city": model.SlotFromLocation,
	"to":             model.SlotToLocation,
	"destination":    model.SlotToLocation,
	"date":           model.SlotTravelDate,
	"travel_dates":   model.SlotTravelDate,
	"check_in":       model.SlotCheckInDate,
	"check_out":      model.SlotCheckOutDate,
	"city":           model.SlotLocation,
	"number_of_days": model.SlotDays,
	"specialties":    model.SlotSpecialty,
}

// normalizeEntities flattens the nested "locations" object some responses use and
// renames common aliases to canonical slot names. Canonical keys win over aliases.
func normalizeEntities(in map[string]any) model.Entities {
	out := make(model.Entities, len(in))
	for k, v := range in {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "locations" {
			if nested, ok := v.(map[string]any); ok {
				for nk, nv := range nested {
					if alias, ok := entityAliases[strings.ToLower(nk)]; ok {
						setIfAbsent(out, alias, nv)
					}
				}
				continue
			}
		}
		if alias, ok := entityAliases[key]; ok {
			setIfAbsent(out, alias, v)
			continue
		}
		out[key] = v
	}
	return out
}

func setIfAbsent(e model.Entities, key string, v any) {
	if !e.Filled(key) {
		e[key] = v
	}
}
