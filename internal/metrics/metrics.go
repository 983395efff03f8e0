package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Command Metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsTotal,
			Help: HelpTextCommandsTotal,
		},
		[]string{LabelCommand},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCommandDuration,
			Help:    HelpTextCommandDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelCommand},
	)
)

// Codewars Metrics
var (
	CodewarsFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCodewarsFetchesTotal,
			Help: HelpTextCodewarsFetchesTotal,
		},
		[]string{LabelOutcome},
	)

	CodewarsFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCodewarsFetchLatency,
			Help:    HelpTextCodewarsFetchLatency,
			Buckets: HTTPLatencyBuckets,
		},
	)
)

// Tracker Metrics
var (
	LeaderboardSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardSkipped,
			Help: HelpTextLeaderboardSkipped,
		},
	)

	UserCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUserCacheLookups,
			Help: HelpTextUserCacheLookups,
		},
		[]string{LabelResult},
	)
)
