package statsnba

import (
	"net/http"
	"testing"
	"time"
)

func TestParseRetryAfterSeconds(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "30")
	if got := parseRetryAfter(h); got != 30*time.Second {
		t.Fatalf("parseRetryAfter = %s, want 30s", got)
	}
}

func TestParseRetryAfterHTTPDate(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", time.Now().Add(time.Minute).UTC().Format(http.TimeFormat))
	got := parseRetryAfter(h)
	if got <= 0 || got > time.Minute {
		t.Fatalf("parseRetryAfter = %s, want (0, 1m]", got)
	}
}

func TestParseRetryAfterAbsentOrGarbage(t *testing.T) {
	if got := parseRetryAfter(http.Header{}); got != 0 {
		t.Fatalf("absent header: got %s", got)
	}
	h := http.Header{}
	h.Set("Retry-After", "soonish")
	if got := parseRetryAfter(h); got != 0 {
		t.Fatalf("garbage header: got %s", got)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("empty base URL: got %q", got)
	}
	if got := normalizeBaseURL("http://example.com/stats/"); got != "http://example.com/stats" {
		t.Fatalf("trailing slash kept: %q", got)
	}
}
