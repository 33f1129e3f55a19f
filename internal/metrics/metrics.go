// Package metrics exposes Prometheus metrics for record extraction.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the extraction metrics. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	EntitiesProcessed *prometheus.CounterVec
	RecordsEmitted    prometheus.Counter
	MissingLatinNames prometheus.Counter
	ExtractLatency    prometheus.Histogram

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates Metrics registered on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		EntitiesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mrzname_entities_processed_total",
			Help: "Entities passed to the extractor by outcome",
		}, []string{"outcome"}), // outcome: "records", "skipped"

		RecordsEmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "mrzname_records_emitted_total",
			Help: "Person records emitted",
		}),

		MissingLatinNames: factory.NewCounter(prometheus.CounterOpts{
			Name: "mrzname_missing_latin_names_total",
			Help: "Person entities without any Latin-script name",
		}),

		ExtractLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mrzname_extract_duration_seconds",
			Help:    "Duration of extracting one batch of entities",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mrzname_http_requests_total",
			Help: "HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),

		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mrzname_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// ObserveEntity records the outcome of extracting one entity.
func (m *Metrics) ObserveEntity(records int, missingLatin bool) {
	if m == nil {
		return
	}
	if records > 0 {
		m.EntitiesProcessed.WithLabelValues("records").Inc()
		m.RecordsEmitted.Add(float64(records))
	} else {
		m.EntitiesProcessed.WithLabelValues("skipped").Inc()
	}
	if missingLatin {
		m.MissingLatinNames.Inc()
	}
}

// ObserveExtractLatency records the duration of a batch.
func (m *Metrics) ObserveExtractLatency(d time.Duration) {
	if m != nil {
		m.ExtractLatency.Observe(d.Seconds())
	}
}

// ObserveHTTP records one served HTTP request.
func (m *Metrics) ObserveHTTP(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// Handler serves the metrics in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
