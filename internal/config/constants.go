package config

import "time"

const (
	envStatsBaseURL  = "STATS_BASE_URL"
	envStatsLeagueID = "STATS_LEAGUE_ID"
	envStatsTimeout  = "STATS_REQUEST_TIMEOUT"
	envRetryAttempts = "STATS_RETRY_ATTEMPTS"
	envRetryBackoff  = "STATS_RETRY_BACKOFF"
	envPaceInterval  = "STATS_PACE_INTERVAL"
	envBrefBaseURL   = "BREF_BASE_URL"
	envBrefTimeout   = "BREF_REQUEST_TIMEOUT"
	envBrefAttempts  = "BREF_RETRY_ATTEMPTS"
	envBrefPace      = "BREF_PACE_INTERVAL"
	envOutputDir     = "OUTPUT_DIR"
	envOutputFormat  = "OUTPUT_FORMAT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultStatsBaseURL  = "https://stats.nba.com/stats"
	defaultStatsLeagueID = "00"
	defaultStatsTimeout  = 30 * Duration(time.Second)
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 500 * Duration(time.Millisecond)
	// Spaced to stay under the stats endpoint's informal quota; it throttles
	// bursts well before any documented limit.
	defaultPaceInterval = 600 * Duration(time.Millisecond)
	defaultBrefBaseURL  = "https://www.basketball-reference.com"
	defaultBrefTimeout  = 30 * Duration(time.Second)
	defaultBrefAttempts = 3
	// Basketball Reference enforces 20 requests per minute.
	defaultBrefPace     = 3100 * Duration(time.Millisecond)
	defaultOutputDir    = "data/raw"
	defaultOutputFormat = "csv"
	defaultMetricsPort  = "9090"
)
