package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "agency_dashboard_build_info",
		Help: "Build information of the agency dashboard",
	}, []string{"version", "environment"})

	DatasetRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "agency_dashboard_dataset_records", Help: "Records loaded per hierarchy level.",
	}, []string{"level"})

	Resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agency_dashboard_resolutions_total", Help: "Path resolutions by outcome and depth.",
	}, []string{"outcome", "depth"})
	ResolverCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agency_dashboard_resolver_cache_total", Help: "Resolver memo lookups by result.",
	}, []string{"result"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agency_dashboard_http_requests_total", Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agency_dashboard_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	GateAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agency_dashboard_gate_attempts_total", Help: "Access code attempts by result.",
	}, []string{"result"})
)
