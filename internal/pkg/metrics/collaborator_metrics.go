// Package metrics exposes prometheus instrumentation for calls made against
// the persistence collaborator.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for collaborator calls.
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport_error"
	OutcomeShape     = "shape_error"
)

// CollaboratorMetrics tracks the volume, outcome and latency of requests
// made to the remote persistence collaborator, labeled by resource
// (cliente, fornecedor, produto, pedido) and operation (list, create,
// update, update_status, delete).
type CollaboratorMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCollaboratorMetrics registers the collectors on the default registerer.
func NewCollaboratorMetrics() *CollaboratorMetrics {
	return NewCollaboratorMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewCollaboratorMetricsWithRegisterer registers the collectors on the given
// registerer. Tests pass a private registry to stay isolated.
func NewCollaboratorMetricsWithRegisterer(registerer prometheus.Registerer) *CollaboratorMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CollaboratorMetrics{
		calls: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "backoffice_collaborator_calls_total",
			Help: "Total number of requests issued to the persistence collaborator",
		}, []string{"resource", "operation", "outcome"}),
		duration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "backoffice_collaborator_call_duration_seconds",
			Help:    "Duration of collaborator requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"resource", "operation"}),
	}
}

// RecordCall records one collaborator request with its outcome and duration.
func (m *CollaboratorMetrics) RecordCall(resource, operation, outcome string, elapsed time.Duration) {
	m.calls.WithLabelValues(resource, operation, outcome).Inc()
	m.duration.WithLabelValues(resource, operation).Observe(elapsed.Seconds())
}

func registerCounterVec(
	registerer prometheus.Registerer,
	opts prometheus.CounterOpts,
	labels []string,
) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(
	registerer prometheus.Registerer,
	opts prometheus.HistogramOpts,
	labels []string,
) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}
