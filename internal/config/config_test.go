package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		envStatsBaseURL, envStatsTimeout, envRetryAttempts, envRetryBackoff,
		envPaceInterval, envOutputDir, envOutputFormat, envMetricsOn,
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Stats.BaseURL != defaultStatsBaseURL {
		t.Fatalf("BaseURL = %q", cfg.Stats.BaseURL)
	}
	if cfg.Stats.RetryAttempts != defaultRetryAttempts {
		t.Fatalf("RetryAttempts = %d", cfg.Stats.RetryAttempts)
	}
	if cfg.Stats.PaceInterval != defaultPaceInterval {
		t.Fatalf("PaceInterval = %s", cfg.Stats.PaceInterval)
	}
	if cfg.Output.Dir != defaultOutputDir || cfg.Output.Format != defaultOutputFormat {
		t.Fatalf("Output = %+v", cfg.Output)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("metrics should default to disabled")
	}
	if cfg.Bref.BaseURL != defaultBrefBaseURL || cfg.Bref.PaceInterval != defaultBrefPace {
		t.Fatalf("Bref = %+v", cfg.Bref)
	}
}

func TestLoadBrefOverrides(t *testing.T) {
	t.Setenv(envBrefBaseURL, "http://localhost:8081")
	t.Setenv(envBrefPace, "10ms")
	t.Setenv(envBrefAttempts, "2")

	cfg := Load()
	if cfg.Bref.BaseURL != "http://localhost:8081" {
		t.Fatalf("Bref.BaseURL = %q", cfg.Bref.BaseURL)
	}
	if cfg.Bref.PaceInterval != 10*time.Millisecond {
		t.Fatalf("Bref.PaceInterval = %s", cfg.Bref.PaceInterval)
	}
	if cfg.Bref.RetryAttempts != 2 {
		t.Fatalf("Bref.RetryAttempts = %d", cfg.Bref.RetryAttempts)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envStatsBaseURL, "http://localhost:8080/stats")
	t.Setenv(envRetryAttempts, "5")
	t.Setenv(envRetryBackoff, "250ms")
	t.Setenv(envPaceInterval, "2s")
	t.Setenv(envOutputDir, "/tmp/out")
	t.Setenv(envMetricsOn, "true")

	cfg := Load()
	if cfg.Stats.BaseURL != "http://localhost:8080/stats" {
		t.Fatalf("BaseURL = %q", cfg.Stats.BaseURL)
	}
	if cfg.Stats.RetryAttempts != 5 {
		t.Fatalf("RetryAttempts = %d", cfg.Stats.RetryAttempts)
	}
	if cfg.Stats.RetryBackoff != 250*time.Millisecond {
		t.Fatalf("RetryBackoff = %s", cfg.Stats.RetryBackoff)
	}
	if cfg.Stats.PaceInterval != 2*time.Second {
		t.Fatalf("PaceInterval = %s", cfg.Stats.PaceInterval)
	}
	if cfg.Output.Dir != "/tmp/out" {
		t.Fatalf("Output.Dir = %q", cfg.Output.Dir)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics should be enabled")
	}
}

func TestLoadIgnoresInvalidNumericEnv(t *testing.T) {
	t.Setenv(envRetryAttempts, "zero")
	t.Setenv(envRetryBackoff, "-1s")

	cfg := Load()
	if cfg.Stats.RetryAttempts != defaultRetryAttempts {
		t.Fatalf("RetryAttempts = %d, want default", cfg.Stats.RetryAttempts)
	}
	if cfg.Stats.RetryBackoff != defaultRetryBackoff {
		t.Fatalf("RetryBackoff = %s, want default", cfg.Stats.RetryBackoff)
	}
}
