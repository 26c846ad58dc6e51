package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricCategoryValidation   = "category.validation"
	MetricCategoryLookupFailed = "category.lookup.failed"
	MetricCategoryVisited      = "category.visited"
	MetricListingCreated       = "listing.created"
	MetricListingCreateFailed  = "listing.create.failed"
	MetricListingCreation      = "listing.creation"
	MetricCircuitBreakerState  = "circuit_breaker.state"
)

type PrometheusMetrics struct {
	categoryValidations     *prometheus.CounterVec
	categoryValidationTime  prometheus.Histogram
	categoryLookupFailures  *prometheus.CounterVec
	categoryVisits          prometheus.Counter
	circuitBreakerState     *prometheus.GaugeVec
	listingsCreated         *prometheus.CounterVec
	listingCreationFailures *prometheus.CounterVec
	listingCreationDuration prometheus.Histogram
}

// NewPrometheusMetrics registers the service metrics with reg. Passing nil
// uses the default registry served on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		categoryValidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_validation_total",
				Help: "Total number of category checks by outcome",
			},
			[]string{"outcome"},
		),
		categoryValidationTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "category_validation_duration_milliseconds",
				Help:    "Category check duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		categoryLookupFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_lookup_failures_total",
				Help: "Total number of failed category lookups",
			},
			[]string{"operation"},
		),
		categoryVisits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "category_visits_total",
				Help: "Total number of category page visits",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		listingsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_created_total",
				Help: "Total number of listings created",
			},
			[]string{"listing_type"},
		),
		listingCreationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listing_creation_failures_total",
				Help: "Total number of failed listing creations",
			},
			[]string{"reason"},
		),
		listingCreationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "listing_creation_duration_milliseconds",
				Help:    "Listing creation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricCategoryValidation:
		if outcome := tags["outcome"]; outcome != "" {
			m.categoryValidations.WithLabelValues(outcome).Inc()
		}
	case MetricCategoryLookupFailed:
		m.categoryLookupFailures.WithLabelValues(tags["operation"]).Inc()
	case MetricCategoryVisited:
		m.categoryVisits.Inc()
	case MetricListingCreated:
		if listingType := tags["listing_type"]; listingType != "" {
			m.listingsCreated.WithLabelValues(listingType).Inc()
		}
	case MetricListingCreateFailed:
		m.listingCreationFailures.WithLabelValues(tags["reason"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricCategoryValidation:
		m.categoryValidationTime.Observe(float64(duration.Milliseconds()))
	case MetricListingCreation:
		m.listingCreationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
