package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveAssessment("CRITICAL")
	m.ObserveAssessment("CRITICAL")
	m.ObserveDispatch("primary", false)
	m.ObserveDispatch("secondary", true)
	m.ObserveSinkFailure("postgres")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.assessments.WithLabelValues("CRITICAL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatches.WithLabelValues("primary", ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatches.WithLabelValues("secondary", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sinkFailures.WithLabelValues("postgres")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAssessment("LOW")
		m.ObserveDispatch("primary", true)
		m.ObserveSinkFailure("redis")
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveDispatch("primary", true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `crisis_alert_dispatch_total{channel="primary",result="success"} 1`)
}
