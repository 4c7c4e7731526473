package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration aliases time.Duration so Config fields read as durations.
type Duration = time.Duration

// Invalid or non-positive values fall back to the default rather than
// erroring: a misconfigured environment should degrade to known-good
// behavior, not abort a fetch run.

func envOrDefault(key, defaultValue string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultValue
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func intEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	switch {
	case raw == "":
		return defaultValue
	case raw == "1", strings.EqualFold(raw, "true"), strings.EqualFold(raw, "yes"):
		return true
	case raw == "0", strings.EqualFold(raw, "false"), strings.EqualFold(raw, "no"):
		return false
	}
	return defaultValue
}
