package providers

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/players"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/teams"
	"github.com/preston-bernstein/nba-dfs-data/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior. A rate
// limit response's Retry-After takes precedence over the computed backoff;
// other delays get halved jitter. Non-retryable upstream errors (4xx other
// than 429) fail immediately.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	recorder     *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc
	rng          *rand.Rand
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) DataProvider {
	return NewRetryingProviderWithRNG(inner, logger, recorder, name, nil, maxAttempts, backoff)
}

// NewRetryingProviderWithRNG is NewRetryingProvider with an injectable jitter
// source for deterministic tests.
func NewRetryingProviderWithRNG(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, rng *rand.Rand, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = "provider"
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		recorder:     recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		rng:          rng,
		backoffFn: func(attempt int) time.Duration {
			return backoff << (attempt - 1)
		},
	}
}

func (r *retryingProvider) FetchSeasonLogs(ctx context.Context, season domain.Season, seasonType domain.SeasonType) ([]gamelogs.GameLogRow, error) {
	return retryCall(r, ctx, func(ctx context.Context) ([]gamelogs.GameLogRow, error) {
		return r.inner.FetchSeasonLogs(ctx, season, seasonType)
	})
}

func (r *retryingProvider) FetchPlayerLogs(ctx context.Context, playerID int, season domain.Season, seasonType domain.SeasonType) ([]gamelogs.GameLogRow, error) {
	return retryCall(r, ctx, func(ctx context.Context) ([]gamelogs.GameLogRow, error) {
		return r.inner.FetchPlayerLogs(ctx, playerID, season, seasonType)
	})
}

func (r *retryingProvider) FetchPlayers(ctx context.Context, season domain.Season) ([]players.Player, error) {
	return retryCall(r, ctx, func(ctx context.Context) ([]players.Player, error) {
		return r.inner.FetchPlayers(ctx, season)
	})
}

func (r *retryingProvider) FetchTeamMetrics(ctx context.Context, season domain.Season) ([]teams.TeamMetrics, error) {
	return retryCall(r, ctx, func(ctx context.Context) ([]teams.TeamMetrics, error) {
		return r.inner.FetchTeamMetrics(ctx, season)
	})
}

func retryCall[T any](r *retryingProvider, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		out, err := fn(ctx)
		r.recorder.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}

		if !retryable(err) {
			logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch not retryable", "err", err)
			return zero, &FetchError{Provider: r.providerName, Attempts: attempt, Err: err}
		}
		if attempt == r.maxAttempts {
			break
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(r.computeDelay(err, attempt)):
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
		"attempts", r.maxAttempts, "err", lastErr)
	return zero, &FetchError{Provider: r.providerName, Attempts: r.maxAttempts, Err: lastErr}
}

// computeDelay picks the wait before the next attempt: an upstream
// Retry-After verbatim when present, otherwise the exponential backoff with
// jitter uniform in [delay/2, delay].
func (r *retryingProvider) computeDelay(err error, attempt int) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	delay := r.backoffFn(attempt)
	if delay <= 0 {
		return 0
	}
	half := delay / 2
	return half + time.Duration(r.rng.Int63n(int64(half)+1))
}
