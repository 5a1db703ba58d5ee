package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordFallback(t *testing.T) {
	before := testutil.ToFloat64(fallbacks.WithLabelValues("classifier", "provider_error"))
	RecordFallback("classifier", "provider_error")
	after := testutil.ToFloat64(fallbacks.WithLabelValues("classifier", "provider_error"))
	assert.Equal(t, before+1, after)
}

func TestRecordStage(t *testing.T) {
	before := testutil.ToFloat64(stages.WithLabelValues("general_assistance"))
	RecordStage("general_assistance")
	assert.Equal(t, before+1, testutil.ToFloat64(stages.WithLabelValues("general_assistance")))
}
