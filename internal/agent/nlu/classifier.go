package nlu

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"

	"github.com/proraahi-core/server/internal/agent/graph/prompts"
	"github.com/proraahi-core/server/internal/agent/model"
	"github.com/proraahi-core/server/internal/core/result"
	"github.com/proraahi-core/server/internal/metrics"
	logx "github.com/proraahi-core/server/pkg/logger"
)

// Classifier resolves an utterance into an IntentResult. It prefers the external
// provider and falls back to the keyword matcher; it never fails.
type Classifier struct {
	provider  Provider
	breaker   *gobreaker.CircuitBreaker
	fallback  *FallbackClassifier
	threshold float64
}

type ClassifierOption func(*Classifier)

// WithBreaker routes provider calls through cb.
func WithBreaker(cb *gobreaker.CircuitBreaker) ClassifierOption {
	return func(c *Classifier) { c.breaker = cb }
}

// WithConfidenceThreshold sets the value logged next to low-confidence results.
func WithConfidenceThreshold(t float64) ClassifierOption {
	return func(c *Classifier) { c.threshold = t }
}

// NewClassifier builds a classifier. provider may be nil, in which case every turn uses
// the fallback matcher.
func NewClassifier(provider Provider, fallback *FallbackClassifier, opts ...ClassifierOption) *Classifier {
	if fallback == nil {
		fallback = NewFallbackClassifier(nil)
	}
	c := &Classifier{provider: provider, fallback: fallback}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the intent for the current turn. The knowledge base is rendered into
// the provider prompt.
func (c *Classifier) Classify(ctx context.Context, turn model.Turn, k model.Knowledge) (res model.IntentResult) {
	defer func() {
		if r := recover(); r != nil {
			logx.Error().
				Str("session_id", turn.Utterance.SessionID).
				Interface("panic", r).
				Msg("Intent classification panicked")
			metrics.RecordFallback("classifier", "panic")
			res = model.IntentResult{
				PrimaryIntent: model.IntentGeneralInquiry,
				Entities:      model.Entities{},
				NextActions:   []string{model.ActionProvideGeneralAssistance},
				Source:        model.SourceRecovered,
			}
		}
	}()

	text := turn.Utterance.Text
	res = result.Try(func() (model.IntentResult, error) {
		return c.classifyWithProvider(ctx, turn, k)
	}).OrElse(func(err error) model.IntentResult {
		reason := fallbackReason(err)
		logx.Warn().
			Err(err).
			Str("session_id", turn.Utterance.SessionID).
			Str("reason", reason).
			Msg("Using fallback intent classifier")
		metrics.RecordFallback("classifier", reason)
		return c.fallback.Classify(text)
	})

	if res.Entities == nil {
		res.Entities = model.Entities{}
	}

	logx.Debug().
		Str("session_id", turn.Utterance.SessionID).
		Str("intent", string(res.PrimaryIntent)).
		Str("source", res.Source).
		Float64("confidence", res.Confidence).
		Bool("below_threshold", res.Confidence < c.threshold).
		Msg("Intent classified")
	metrics.RecordIntent(string(res.PrimaryIntent), res.Source)
	return res
}

func (c *Classifier) classifyWithProvider(ctx context.Context, turn model.Turn, k model.Knowledge) (model.IntentResult, error) {
	if c.provider == nil {
		return model.IntentResult{}, ErrProviderUnavailable
	}

	system, err := prompts.RenderNLUSystem(ctx, k)
	if err != nil {
		return model.IntentResult{}, err
	}
	content := turn.History
	if content == "" {
		content = turn.Utterance.Text
	}

	call := func() (interface{}, error) {
		raw, err := c.provider.Classify(ctx, system, content)
		if err != nil {
			return nil, err
		}
		return ParseProviderResponse(raw)
	}

	var out interface{}
	if c.breaker != nil {
		out, err = c.breaker.Execute(call)
	} else {
		out, err = call()
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return model.IntentResult{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if err != nil {
		return model.IntentResult{}, err
	}
	return out.(model.IntentResult), nil
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, ErrProviderUnavailable):
		return "unavailable"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "provider_error"
	}
}
