// Package composer builds the WorkflowResult for every workflow outcome. Generated
// narratives go through a failure boundary and fall back to fixed sentences.
package composer

import (
	"context"
	"fmt"
	"strings"

	"github.com/proraahi-core/server/internal/agent/graph/prompts"
	"github.com/proraahi-core/server/internal/agent/model"
	"github.com/proraahi-core/server/internal/agent/nlu"
	"github.com/proraahi-core/server/internal/core/result"
	"github.com/proraahi-core/server/internal/metrics"
	logx "github.com/proraahi-core/server/pkg/logger"
)

const defaultTemperature = 0.7

type Composer struct {
	gen         Generator
	assistant   *nlu.Assistant
	knowledge   model.Knowledge
	temperature float32
}

type Option func(*Composer)

func WithKnowledge(k model.Knowledge) Option {
	return func(c *Composer) { c.knowledge = k }
}

func WithTemperature(t float32) Option {
	return func(c *Composer) { c.temperature = t }
}

// New returns a composer. gen may be nil; every narrative then uses its fallback.
func New(gen Generator, assistant *nlu.Assistant, opts ...Option) *Composer {
	if assistant == nil {
		assistant = nlu.NewAssistant()
	}
	c := &Composer{
		gen:         gen,
		assistant:   assistant,
		knowledge:   model.DefaultKnowledge(),
		temperature: defaultTemperature,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MissingInfo asks for the listed slot labels.
func (c *Composer) MissingInfo(intent model.Intent, missing []string) *model.WorkflowResult {
	format, action := transportMissing, model.ActionCollectTransportationDetails
	if intent == model.IntentAccommodationBooking {
		format, action = lodgingMissing, model.ActionCollectAccommodationDetails
	}
	return &model.WorkflowResult{
		Response:    fmt.Sprintf(format, strings.Join(missing, ", ")),
		Stage:       model.StageInformationGathering,
		Intent:      intent,
		MissingInfo: append([]string(nil), missing...),
		NextActions: []string{action},
	}
}

// TransportOptions recommends the first result. The text is always template-built.
func (c *Composer) TransportOptions(results []model.Record) *model.WorkflowResult {
	rec := &model.Recommendation{Message: transportNone, Alternatives: true}
	if len(results) > 0 {
		best := results[0]
		rec = &model.Recommendation{
			Message:           fmt.Sprintf(transportPick, best.Name, best.Departure, best.To),
			RecommendedOption: &best,
			Reasoning:         transportReasoning,
		}
	}
	return c.options(model.IntentTransportBooking, results, rec)
}

// LodgingOptions recommends the first result. The text is always template-built.
func (c *Composer) LodgingOptions(results []model.Record) *model.WorkflowResult {
	rec := &model.Recommendation{Message: lodgingNone, Alternatives: true}
	if len(results) > 0 {
		best := results[0]
		rec = &model.Recommendation{
			Message:           fmt.Sprintf(lodgingPick, best.Name),
			RecommendedOption: &best,
			Reasoning:         lodgingReasoning,
		}
	}
	return c.options(model.IntentAccommodationBooking, results, rec)
}

func (c *Composer) options(intent model.Intent, results []model.Record, rec *model.Recommendation) *model.WorkflowResult {
	return &model.WorkflowResult{
		Response:       rec.Message,
		Stage:          model.StageOptionPresentation,
		Intent:         intent,
		SearchResults:  nonNil(results),
		Recommendation: rec,
		NextActions:    []string{model.ActionAwaitUserSelection, model.ActionProceedToBooking},
	}
}

// GuideRecommendation narrates the top guides. results is the full search result;
// only the first topN are shown to the generator.
func (c *Composer) GuideRecommendation(ctx context.Context, u model.Utterance, results []model.Record, topN int) *model.WorkflowResult {
	text := c.generate(ctx, prompts.ResponseGuide, prompts.ResponseVars{
		Knowledge: c.knowledge,
		Language:  u.Language,
		Utterance: u.Text,
		Records:   model.TopRecords(results, topN),
	}, guideUserContent, func() string { return GuideFallback })

	return &model.WorkflowResult{
		Response:      text,
		Stage:         model.StageGuideRecommendation,
		Intent:        model.IntentGuideBooking,
		SearchResults: nonNil(results),
		NextActions:   []string{model.ActionPresentGuideProfiles, model.ActionCheckAvailability},
	}
}

func (c *Composer) ActivityRecommendation(ctx context.Context, u model.Utterance, interests []string, results []model.Record, topN int) *model.WorkflowResult {
	text := c.generate(ctx, prompts.ResponseActivity, prompts.ResponseVars{
		Knowledge: c.knowledge,
		Language:  u.Language,
		Utterance: u.Text,
		Interests: interests,
		Records:   model.TopRecords(results, topN),
	}, u.Text, func() string { return ActivityFallback })

	return &model.WorkflowResult{
		Response:      text,
		Stage:         model.StageActivityRecommendation,
		Intent:        model.IntentActivityPlanning,
		SearchResults: nonNil(results),
		NextActions:   []string{model.ActionPresentActivityDetails, model.ActionCheckAvailability},
	}
}

// Itinerary narrates a trip plan. The localized day plan is attached whether or not
// generation succeeds.
func (c *Composer) Itinerary(ctx context.Context, u model.Utterance, duration string, days int, interests []string, budget model.Budget) *model.WorkflowResult {
	joined := strings.Join(interests, ", ")
	text := c.generate(ctx, prompts.ResponseItinerary, prompts.ResponseVars{
		Knowledge:   c.knowledge,
		Language:    u.Language,
		Utterance:   u.Text,
		Interests:   interests,
		Duration:    duration,
		BudgetTotal: budget.TotalEstimated,
	}, u.Text, func() string { return fmt.Sprintf(itineraryFallback, duration, joined) })

	return &model.WorkflowResult{
		Response: text,
		Stage:    model.StageItineraryPresentation,
		Intent:   model.IntentItineraryCreation,
		Itinerary: &model.Itinerary{
			Description:     text,
			Duration:        duration,
			Interests:       append([]string(nil), interests...),
			EstimatedBudget: budget,
			DayPlan:         nlu.RenderDayPlan(u.Language, days),
		},
		NextActions: []string{model.ActionReviewItinerary, model.ActionProceedToBookings},
	}
}

// GeneralAssistance answers free questions, falling back to the local topic templates
// in the utterance language.
func (c *Composer) GeneralAssistance(ctx context.Context, u model.Utterance) *model.WorkflowResult {
	text := c.generate(ctx, prompts.ResponseGeneral, prompts.ResponseVars{
		Knowledge: c.knowledge,
		Language:  u.Language,
		Utterance: u.Text,
	}, u.Text, func() string { return c.assistant.Respond(u.Text, u.Language) })

	return &model.WorkflowResult{
		Response:    text,
		Stage:       model.StageGeneralAssistance,
		Intent:      model.IntentGeneralInquiry,
		NextActions: []string{model.ActionOfferSpecificServices},
	}
}

// Apology is the reply for a turn that failed internally.
func Apology(lang string) *model.WorkflowResult {
	return &model.WorkflowResult{
		Response:                  ApologyMessage,
		Stage:                     model.StageGeneralAssistance,
		NextActions:               []string{model.ActionHumanHandoff},
		Language:                  lang,
		RequiresHumanIntervention: true,
	}
}

func (c *Composer) generate(ctx context.Context, kind prompts.ResponseKind, vars prompts.ResponseVars, user string, fallback func() string) string {
	return result.Try(func() (string, error) {
		if c.gen == nil {
			return "", ErrNoGenerator
		}
		system, err := prompts.RenderResponseSystem(ctx, kind, vars)
		if err != nil {
			return "", err
		}
		out, err := c.gen.Complete(ctx, system, user, c.temperature)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(out) == "" {
			return "", ErrEmptyCompletion
		}
		return out, nil
	}).OrElse(func(err error) string {
		logx.Warn().Err(err).Str("kind", string(kind)).Msg("Generation failed; using fixed reply")
		metrics.RecordFallback("composer", string(kind))
		return fallback()
	})
}

func nonNil(records []model.Record) []model.Record {
	if records == nil {
		return []model.Record{}
	}
	return records
}
