package nlu

import (
	"context"
	"errors"
)

var (
	// ErrProviderUnavailable is returned when no provider is configured or its breaker is open.
	ErrProviderUnavailable = errors.New("nlu provider unavailable")
	// ErrMalformedResponse is returned when provider output violates the response schema.
	ErrMalformedResponse = errors.New("nlu provider returned malformed response")
)

// Provider is an external intent-classification service. It must answer with a single
// JSON object; the classifier validates the shape.
type Provider interface {
	Classify(ctx context.Context, systemPrompt, utterance string) (string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, systemPrompt, utterance string) (string, error)

func (f ProviderFunc) Classify(ctx context.Context, systemPrompt, utterance string) (string, error) {
	return f(ctx, systemPrompt, utterance)
}
