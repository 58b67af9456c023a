package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
)

func TestMetrics_ObserveGeneration(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveGeneration(model.ToolKindTags, model.ProvenanceAI, 120*time.Millisecond)
	m.ObserveGeneration(model.ToolKindTags, model.ProvenanceAI, 80*time.Millisecond)
	m.ObserveGeneration(model.ToolKindTags, model.ProvenanceMock, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Generations.WithLabelValues("tags", "ai")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Generations.WithLabelValues("tags", "mock")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.GenerationTime))
}

func TestMetrics_ObserveProviderFailure(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveProviderFailure(model.ToolKindTitles, model.ErrorKindRemoteFailure)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderFailures.WithLabelValues("titles", "remote_failure")))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveHTTPRequest("POST", 200)
	m.ObserveHTTPRequest("POST", 200)
	m.ObserveHTTPRequest("GET", 404)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "404")))
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	require.Panics(t, func() { New(reg) })
}
