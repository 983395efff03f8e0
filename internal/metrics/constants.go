package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names (ops server)
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Bot metric names
const (
	MetricNameCommandsTotal        = "honorbot_commands_total"
	MetricNameCommandDuration      = "honorbot_command_duration_seconds"
	MetricNameCodewarsFetchesTotal = "honorbot_codewars_fetches_total"
	MetricNameCodewarsFetchLatency = "honorbot_codewars_fetch_duration_seconds"
	MetricNameLeaderboardSkipped   = "honorbot_leaderboard_skipped_users_total"
	MetricNameUserCacheLookups     = "honorbot_user_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Bot metric help text
const (
	HelpTextCommandsTotal        = "Total number of slash commands handled, by command"
	HelpTextCommandDuration      = "Slash command handling latency in seconds"
	HelpTextCodewarsFetchesTotal = "Total number of Codewars profile fetches, by outcome"
	HelpTextCodewarsFetchLatency = "Codewars profile fetch latency in seconds"
	HelpTextLeaderboardSkipped   = "Total number of users left out of a leaderboard because their fetch failed"
	HelpTextUserCacheLookups     = "Total number of user record cache lookups, by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelCommand = "command"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Codewars fetch outcomes
const (
	FetchOutcomeOK        = "ok"
	FetchOutcomeNotFound  = "not_found"
	FetchOutcomeStatus    = "status"
	FetchOutcomeTransport = "transport"
	FetchOutcomeDecode    = "decode"
)

// Cache lookup results
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
