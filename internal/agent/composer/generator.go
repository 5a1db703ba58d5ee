package composer

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
)

var (
	// ErrNoGenerator is returned when no generation provider is configured.
	ErrNoGenerator = errors.New("generation provider not configured")
	// ErrEmptyCompletion is returned when the provider answers with blank text.
	ErrEmptyCompletion = errors.New("generation provider returned empty text")
)

// Generator turns a system prompt and user content into free text.
type Generator interface {
	Complete(ctx context.Context, system, user string, temperature float32) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, system, user string, temperature float32) (string, error)

func (f GeneratorFunc) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	return f(ctx, system, user, temperature)
}

// BreakerGenerator short-circuits a failing generator.
type BreakerGenerator struct {
	next Generator
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerGenerator(next Generator, cb *gobreaker.CircuitBreaker) *BreakerGenerator {
	return &BreakerGenerator{next: next, cb: cb}
}

func (g *BreakerGenerator) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	out, err := g.cb.Execute(func() (interface{}, error) {
		return g.next.Complete(ctx, system, user, temperature)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("generation skipped: %w", err)
		}
		return "", err
	}
	return out.(string), nil
}

var (
	_ Generator = GeneratorFunc(nil)
	_ Generator = (*BreakerGenerator)(nil)
)
