package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "crisis_alert"

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics groups the service collectors on a private registry.
// All methods are safe on a nil receiver so components can run without metrics.
type Metrics struct {
	registry     *prometheus.Registry
	assessments  *prometheus.CounterVec
	dispatches   *prometheus.CounterVec
	sinkFailures *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_assessments_total",
			Help:      "Messages assessed, by risk level.",
		}, []string{"level"}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "Alert delivery attempts, by channel and result.",
		}, []string{"channel", "result"}),
		sinkFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_event_sink_failures_total",
			Help:      "Risk event log writes that failed, by sink.",
		}, []string{"sink"}),
	}
	reg.MustRegister(
		m.assessments,
		m.dispatches,
		m.sinkFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveAssessment(level string) {
	if m == nil {
		return
	}
	m.assessments.WithLabelValues(level).Inc()
}

func (m *Metrics) ObserveDispatch(channel string, ok bool) {
	if m == nil {
		return
	}
	result := ResultFailure
	if ok {
		result = ResultSuccess
	}
	m.dispatches.WithLabelValues(channel, result).Inc()
}

func (m *Metrics) ObserveSinkFailure(sink string) {
	if m == nil {
		return
	}
	m.sinkFailures.WithLabelValues(sink).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Assessments, Dispatches and SinkFailures expose the raw vectors for assertions.
func (m *Metrics) Assessments() *prometheus.CounterVec  { return m.assessments }
func (m *Metrics) Dispatches() *prometheus.CounterVec   { return m.dispatches }
func (m *Metrics) SinkFailures() *prometheus.CounterVec { return m.sinkFailures }
