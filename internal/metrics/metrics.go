package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	CheckoutsStarted  *prometheus.CounterVec
	PaymentsConfirmed *prometheus.CounterVec
	UpsellOutcomes    *prometheus.CounterVec
	GatewayRequests   *prometheus.CounterVec
	GatewayLatency    *prometheus.HistogramVec
	EventsDispatched  *prometheus.CounterVec
	Errors            *prometheus.CounterVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			CheckoutsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkouts_started_total",
				Help:      "Total checkout attempts by outcome.",
			}, []string{"status"}),
			PaymentsConfirmed: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_confirmed_total",
				Help:      "Total payment confirmations by outcome.",
			}, []string{"status"}),
			UpsellOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upsell_outcomes_total",
				Help:      "Total one-click upsell outcomes.",
			}, []string{"outcome"}),
			GatewayRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gateway_requests_total",
				Help:      "Total payment gateway requests by operation and status.",
			}, []string{"operation", "status"}),
			GatewayLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "gateway_request_duration_seconds",
				Help:      "Latency distribution for payment gateway calls.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"operation", "status"}),
			EventsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_dispatched_total",
				Help:      "Total side-effect events dispatched by type.",
			}, []string{"type"}),
			Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total errors grouped by component.",
			}, []string{"component"}),
		}

		prometheus.MustRegister(
			metricsInstance.CheckoutsStarted,
			metricsInstance.PaymentsConfirmed,
			metricsInstance.UpsellOutcomes,
			metricsInstance.GatewayRequests,
			metricsInstance.GatewayLatency,
			metricsInstance.EventsDispatched,
			metricsInstance.Errors,
		)
	})
	return metricsInstance
}
