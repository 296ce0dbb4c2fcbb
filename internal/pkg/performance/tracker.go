package performance

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "easybets"

// Tracker records scrape, fetch, prediction and HTTP metrics.
// A nil *Tracker is valid and records nothing.
type Tracker struct {
	registry *prometheus.Registry

	scrapes          *prometheus.CounterVec
	fetchDuration    *prometheus.HistogramVec
	fetchErrors      *prometheus.CounterVec
	extractedMatches prometheus.Gauge
	predictions      *prometheus.CounterVec
	requests         *prometheus.CounterVec
}

// NewTracker creates a tracker with its own registry, including Go runtime collectors.
func NewTracker() *Tracker {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	t := &Tracker{
		registry: reg,
		scrapes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scrapes_total",
			Help:      "Scrape runs by the source of the returned matches.",
		}, []string{"source"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching the listing page.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 15, 30, 60},
		}, []string{"strategy"}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_errors_total",
			Help:      "Failed page fetches per strategy.",
		}, []string{"strategy"}),
		extractedMatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "extracted_matches",
			Help:      "Matches extracted by the last successful scrape.",
		}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Predictions served by most likely outcome.",
		}, []string{"outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}

	reg.MustRegister(t.scrapes, t.fetchDuration, t.fetchErrors, t.extractedMatches, t.predictions, t.requests)
	return t
}

// RecordFetch records one fetch attempt with the given strategy.
func (t *Tracker) RecordFetch(strategy string, duration time.Duration, err error) {
	if t == nil {
		return
	}
	t.fetchDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	if err != nil {
		t.fetchErrors.WithLabelValues(strategy).Inc()
	}
}

// RecordScrape records a finished scrape and, for scraped data, the match count.
func (t *Tracker) RecordScrape(source string, matches int, scraped bool) {
	if t == nil {
		return
	}
	t.scrapes.WithLabelValues(source).Inc()
	if scraped {
		t.extractedMatches.Set(float64(matches))
	}
}

// RecordPrediction counts a prediction by its most likely outcome.
func (t *Tracker) RecordPrediction(outcome string) {
	if t == nil {
		return
	}
	t.predictions.WithLabelValues(outcome).Inc()
}

// RecordRequest counts a served HTTP request.
func (t *Tracker) RecordRequest(route string, code int) {
	if t == nil {
		return
	}
	t.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (t *Tracker) Registry() *prometheus.Registry {
	if t == nil {
		return nil
	}
	return t.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (t *Tracker) Handler() http.Handler {
	if t == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{})
}
