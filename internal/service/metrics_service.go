package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface, the response cache, and content store writes.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	storeWrites     *prometheus.HistogramVec
	storeWriteFails *prometheus.CounterVec
}

// NewMetricsService registers the core collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	storeWrites := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "content_store_write_duration_seconds",
		Help:    "Duration of content document writes in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"key"})

	storeWriteFails := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "content_store_write_failures_total",
		Help: "Total failed content document writes",
	}, []string{"key"})

	registry.MustRegister(requestDuration, requestTotal, cacheHits, cacheMisses, storeWrites, storeWriteFails)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		storeWrites:     storeWrites,
		storeWriteFails: storeWriteFails,
	}
}

// Handler serves the /metrics endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one completed HTTP request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	s.requestDuration.With(labels).Observe(duration.Seconds())
	s.requestTotal.With(labels).Inc()
}

// RecordCacheLookup records a cache hit or miss.
func (s *MetricsService) RecordCacheLookup(hit bool) {
	if hit {
		s.cacheHits.Inc()
		return
	}
	s.cacheMisses.Inc()
}

// ObserveStoreWrite implements repository.WriteObserver.
func (s *MetricsService) ObserveStoreWrite(key string, duration time.Duration, failed bool) {
	s.storeWrites.WithLabelValues(key).Observe(duration.Seconds())
	if failed {
		s.storeWriteFails.WithLabelValues(key).Inc()
	}
}
