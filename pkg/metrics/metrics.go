package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	HTTPRequestsLimited  prometheus.Counter

	// Dashboard metrics
	DashboardQueries *prometheus.CounterVec
	RecordsReturned  *prometheus.HistogramVec

	// Seed metrics
	SeedJobsTotal      *prometheus.CounterVec
	SeedJobDuration    prometheus.Histogram
	SeedJobsInProgress prometheus.Gauge
	RecordsGenerated   *prometheus.CounterVec

	// External API metrics
	ExternalAPICalls    *prometheus.CounterVec
	ExternalAPIDuration *prometheus.HistogramVec
	ExternalAPIFailures *prometheus.CounterVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		HTTPRequestsLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "http_requests_rate_limited_total",
				Help: "Total number of HTTP requests rejected by the rate limiter",
			},
		),

		DashboardQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_queries_total",
				Help: "Total number of dashboard queries by kind and outcome",
			},
			[]string{"kind", "status"},
		),

		RecordsReturned: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_records_returned",
				Help:    "Number of records returned per dashboard query",
				Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500},
			},
			[]string{"kind"},
		),

		SeedJobsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seed_jobs_total",
				Help: "Total number of dummy data seed jobs",
			},
			[]string{"status"},
		),

		SeedJobDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seed_job_duration_seconds",
				Help:    "Seed job duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
		),

		SeedJobsInProgress: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "seed_jobs_in_progress",
				Help: "Number of seed jobs currently in progress",
			},
		),

		RecordsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "records_generated_total",
				Help: "Total number of performance records generated",
			},
			[]string{"view"},
		),

		ExternalAPICalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "external_api_calls_total",
				Help: "Total number of external API calls",
			},
			[]string{"api", "status"},
		),

		ExternalAPIDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "external_api_duration_seconds",
				Help:    "External API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api"},
		),

		ExternalAPIFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "external_api_failures_total",
				Help: "Total number of external API failures",
			},
			[]string{"api", "error_type"},
		),
	}
}

// HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func (m *Metrics) RecordRateLimited() {
	m.HTTPRequestsLimited.Inc()
}

// Dashboard query metrics
func (m *Metrics) RecordDashboardQuery(kind, status string, records int) {
	m.DashboardQueries.WithLabelValues(kind, status).Inc()
	if status == "success" {
		m.RecordsReturned.WithLabelValues(kind).Observe(float64(records))
	}
}

// Seed job metrics
func (m *Metrics) RecordSeedJob(status string, duration time.Duration) {
	m.SeedJobsTotal.WithLabelValues(status).Inc()
	m.SeedJobDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordGenerated(view string, count int) {
	m.RecordsGenerated.WithLabelValues(view).Add(float64(count))
}

// External API call metrics
func (m *Metrics) RecordExternalAPICall(api, status string, duration time.Duration) {
	m.ExternalAPICalls.WithLabelValues(api, status).Inc()
	m.ExternalAPIDuration.WithLabelValues(api).Observe(duration.Seconds())
}

// External API failure metrics
func (m *Metrics) RecordExternalAPIFailure(api, errorType string) {
	m.ExternalAPIFailures.WithLabelValues(api, errorType).Inc()
}

func (m *Metrics) IncSeedJobsInProgress() {
	m.SeedJobsInProgress.Inc()
}

func (m *Metrics) DecSeedJobsInProgress() {
	m.SeedJobsInProgress.Dec()
}

// HTTP requests in flight counter
func (m *Metrics) IncHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

// HTTP requests in flight counter
func (m *Metrics) DecHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}
