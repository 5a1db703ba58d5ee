package logx

import (
	"bytes"
	"testing"

	"github.com/proraahi-core/server/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestInit_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(LoggerOpts{Environment: core.Production, Service: "test", Output: &buf})
	defer Init(LoggerOpts{Environment: core.Testing})

	Debug().Msg("hidden")
	Info().Str("session_id", "s-1").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"session_id":"s-1"`)
	assert.Contains(t, out, `"service":"test"`)
}

func TestInit_TestingIsSilent(t *testing.T) {
	var buf bytes.Buffer
	Init(LoggerOpts{Environment: core.Testing, Output: &buf})

	Error().Msg("nothing")
	assert.Empty(t, buf.String())
}
