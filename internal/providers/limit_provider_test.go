package providers

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
)

func TestRateLimitedProviderSpacesCalls(t *testing.T) {
	fp := &flakeyProvider{}
	interval := 30 * time.Millisecond
	rp := NewRateLimitedProvider(fp, interval, nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := rp.FetchSeasonLogs(context.Background(), "2024-25", domain.RegularSeason); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}
	elapsed := time.Since(start)

	// First call is immediate; the next two wait an interval each.
	if elapsed < 2*interval {
		t.Fatalf("3 calls took %s, want at least %s", elapsed, 2*interval)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", fp.calls)
	}
}

func TestRateLimitedProviderFirstCallNotDelayed(t *testing.T) {
	fp := &flakeyProvider{}
	rp := NewRateLimitedProvider(fp, time.Hour, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if _, err := rp.FetchSeasonLogs(ctx, "2024-25", domain.RegularSeason); err != nil {
		t.Fatalf("first call should use the initial token: %v", err)
	}
}

func TestRateLimitedProviderHonorsCancellation(t *testing.T) {
	fp := &flakeyProvider{}
	rp := NewRateLimitedProvider(fp, time.Hour, nil)

	// Burn the initial token.
	if _, err := rp.FetchSeasonLogs(context.Background(), "2024-25", domain.RegularSeason); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := rp.FetchSeasonLogs(ctx, "2024-25", domain.RegularSeason); err == nil {
		t.Fatal("expected cancellation while waiting for pacing token")
	}
	if fp.calls != 1 {
		t.Fatalf("provider should not have been called again, got %d calls", fp.calls)
	}
}

func TestRateLimitedProviderDefaultInterval(t *testing.T) {
	rp := NewRateLimitedProvider(&flakeyProvider{}, 0, nil).(*rateLimitedProvider)
	if rp.limiter == nil {
		t.Fatal("expected limiter")
	}
}
