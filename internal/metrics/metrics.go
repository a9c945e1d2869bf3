// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Signin outcomes recorded by RecordSignin.
const (
	SigninSuccess = "success"
	SigninFailure = "failure"
	SigninLimited = "rate_limited"
)

// Collector holds the service metrics.
type Collector struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	signins         *prometheus.CounterVec
	events          *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "social_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "social_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		signins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "social_signin_total",
			Help: "Signin attempts by result.",
		}, []string{"result"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "social_events_published_total",
			Help: "Domain events handed to the broker by type and result.",
		}, []string{"type", "result"}),
	}

	reg.MustRegister(
		c.requests,
		c.requestDuration,
		c.signins,
		c.events,
	)

	return c
}

// RecordRequest records one served HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordSignin records a signin outcome.
func (c *Collector) RecordSignin(result string) {
	c.signins.WithLabelValues(result).Inc()
}

// RecordEvent records a publish attempt.
func (c *Collector) RecordEvent(eventType string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	c.events.WithLabelValues(eventType, result).Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
