package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	FlightsRecorded    prometheus.Counter
	ValidationFailures prometheus.Counter
	ExportsRendered    prometheus.Counter
	PagesRendered      prometheus.Counter
	RenderTime         prometheus.Histogram
	ErrorsCount        *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		FlightsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_recorded_total",
			Help:      "The total number of flight records accepted",
		}),
		ValidationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "The total number of flight entries rejected by validation",
		}),
		ExportsRendered: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_rendered_total",
			Help:      "The total number of logbook exports produced",
		}),
		PagesRendered: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_rendered_total",
			Help:      "The total number of logbook pages produced",
		}),
		RenderTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_render_time_seconds",
			Help:      "Time taken to render logbook exports",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
