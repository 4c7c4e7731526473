package config

// Config holds runtime configuration for the data-fetching CLIs.
type Config struct {
	Stats   StatsConfig
	Bref    BrefConfig
	Output  OutputConfig
	Metrics MetricsConfig
}

// StatsConfig controls the stats.nba.com client and its decorators.
type StatsConfig struct {
	BaseURL       string
	LeagueID      string
	Timeout       Duration
	RetryAttempts int
	RetryBackoff  Duration
	PaceInterval  Duration
}

// BrefConfig controls the Basketball Reference scraper.
type BrefConfig struct {
	BaseURL       string
	Timeout       Duration
	RetryAttempts int
	PaceInterval  Duration
}

// OutputConfig controls where and how tabular output is written.
type OutputConfig struct {
	Dir    string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Stats: StatsConfig{
			BaseURL:       envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
			LeagueID:      envOrDefault(envStatsLeagueID, defaultStatsLeagueID),
			Timeout:       durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
			RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
			RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
			PaceInterval:  durationEnvOrDefault(envPaceInterval, defaultPaceInterval),
		},
		Bref: BrefConfig{
			BaseURL:       envOrDefault(envBrefBaseURL, defaultBrefBaseURL),
			Timeout:       durationEnvOrDefault(envBrefTimeout, defaultBrefTimeout),
			RetryAttempts: intEnvOrDefault(envBrefAttempts, defaultBrefAttempts),
			PaceInterval:  durationEnvOrDefault(envBrefPace, defaultBrefPace),
		},
		Output: OutputConfig{
			Dir:    envOrDefault(envOutputDir, defaultOutputDir),
			Format: envOrDefault(envOutputFormat, defaultOutputFormat),
		},
		Metrics: loadMetrics(),
	}
}
