package breaker

import (
	"time"

	"github.com/sony/gobreaker"

	logx "github.com/proraahi-core/server/pkg/logger"
)

type Config struct {
	MaxRequests      uint32        `split_words:"true" default:"1"`
	Interval         time.Duration `split_words:"true" default:"1m"`
	Timeout          time.Duration `split_words:"true" default:"30s"`
	FailureThreshold uint32        `split_words:"true" default:"3"`
}

// New builds a circuit breaker that opens after FailureThreshold consecutive failures.
func (c Config) New(name string) *gobreaker.CircuitBreaker {
	threshold := c.FailureThreshold
	if threshold == 0 {
		threshold = 3
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: c.MaxRequests,
		Interval:    c.Interval,
		Timeout:     c.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logx.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
}
