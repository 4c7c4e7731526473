package config

// MetricsConfig controls telemetry export settings. Disabled by default: the
// CLIs are one-shot processes and usually have nowhere to scrape from.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "nba-dfs-data"),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
