// Package metrics holds the Prometheus collectors of the orchestrator. The
// collectors are usable before Init; Init only exposes them on Registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "orchestrator"

var (
	Registry = prometheus.NewRegistry()

	initialized = false
)

var (
	RouteAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_attempts_total",
			Help:      "Delivery attempts against deployments by outcome",
		},
		[]string{"deployment", "outcome"},
	)

	RouteResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_results_total",
			Help:      "Routed submissions by final result",
		},
		[]string{"result"},
	)

	RouteDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_duration_seconds",
			Help:      "Time spent routing one submission across all attempts",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ProbeResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "probe_results_total",
			Help:      "Health probes by deployment and result",
		},
		[]string{"deployment", "healthy"},
	)

	ProbeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "probe_duration_seconds",
			Help:      "Health probe latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"deployment"},
	)

	DeploymentFailures = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "deployment_consecutive_failures",
			Help:      "Consecutive failed probes per deployment",
		},
		[]string{"deployment"},
	)

	ActiveDeployment = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_deployment_index",
			Help:      "Index of the deployment currently receiving traffic",
		},
	)

	Switches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "switches_total",
			Help:      "Active deployment switches by trigger",
		},
		[]string{"trigger"},
	)

	QuotaDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quota_deliveries_total",
			Help:      "Deliveries counted against deployment quotas",
		},
		[]string{"deployment"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RateLimitBlocks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratelimit_blocks_total",
			Help:      "Requests rejected by the inbound rate limiter",
		},
	)
)

func Init() error {
	if initialized {
		return nil
	}

	collectorsToRegister := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		RouteAttempts,
		RouteResults,
		RouteDuration,
		ProbeResults,
		ProbeDuration,
		DeploymentFailures,
		ActiveDeployment,
		Switches,
		QuotaDeliveries,
		HTTPRequestsTotal,
		HTTPRequestDuration,
		RateLimitBlocks,
	}
	for _, c := range collectorsToRegister {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}

	initialized = true
	return nil
}

func MustInit() {
	if err := Init(); err != nil {
		panic("failed to initialize metrics: " + err.Error())
	}
}
