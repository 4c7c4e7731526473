package bref

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/salaries"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/teams"
	"github.com/preston-bernstein/nba-dfs-data/internal/logging"
	"github.com/preston-bernstein/nba-dfs-data/internal/providers"
)

// Config controls how the client reaches basketball-reference.com.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	PaceInterval time.Duration
	MaxAttempts  int
	HTTPClient   *http.Client
	Logger       *slog.Logger
}

// Client scrapes player game logs and team ratings from Basketball Reference.
// The site keys players by name slug rather than numeric id, so the client
// does not fit the numeric-id provider seam; it carries its own pacing and
// retry instead of the provider decorators.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	maxAttempts int
	backoff     time.Duration
	logger      *slog.Logger
}

// NewClient constructs a Basketball Reference client with the provided
// configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	pace := cfg.PaceInterval
	if pace <= 0 {
		pace = defaultPaceInterval
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:     baseURL,
		httpClient:  httpClient,
		limiter:     rate.NewLimiter(rate.Every(pace), 1),
		maxAttempts: attempts,
		backoff:     pace,
		logger:      cfg.Logger,
	}
}

// PlayerGameLog retrieves one player's game log for a season, addressed by the
// player's name.
func (c *Client) PlayerGameLog(ctx context.Context, playerName string, season domain.Season, seasonType domain.SeasonType) ([]gamelogs.GameLogRow, error) {
	slug := playerSlug(playerName)
	if slug == "" {
		return nil, fmt.Errorf("bref: cannot build a url slug from player name %q", playerName)
	}

	page := "gamelog"
	if seasonType == domain.Playoffs {
		page = "playoffs"
	}
	url := fmt.Sprintf("%s/players/%c/%s/%s/%d", c.baseURL, slug[0], slug, page, season.StartYear()+1)

	html, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	rows, err := parseTable(html, tableGameLog)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		logging.Warn(c.logger, "no game log table found",
			logging.FieldProvider, ProviderName,
			logging.FieldSeason, season.String())
	}
	return mapGameLogRows(rows, playerName, season, seasonType), nil
}

// TeamRatings retrieves the league's offensive/defensive/net team ratings for
// a season.
func (c *Client) TeamRatings(ctx context.Context, season domain.Season) ([]teams.TeamMetrics, error) {
	url := fmt.Sprintf("%s/leagues/NBA_%d_ratings.html", c.baseURL, season.StartYear()+1)

	html, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	rows, err := parseTable(html, tableRatings)
	if err != nil {
		return nil, err
	}
	return mapTeamRatings(rows), nil
}

// fetch retrieves a page, pacing every request and retrying transient
// failures with exponential backoff.
func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
		html, err := c.get(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		var httpErr *providers.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode < 500 {
			return "", &providers.FetchError{Provider: ProviderName, Attempts: attempt, Err: err}
		}
		if attempt == c.maxAttempts {
			break
		}

		delay := c.backoff << (attempt - 1)
		if rle, ok := providers.AsRateLimitError(err); ok && rle.RetryAfter > 0 {
			delay = rle.RetryAfter
		}
		logging.Warn(c.logger, "request failed, retrying",
			logging.FieldProvider, ProviderName,
			"attempt", attempt,
			"delay", delay.String())
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}
	return "", &providers.FetchError{Provider: ProviderName, Attempts: c.maxAttempts, Err: lastErr}
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgentHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return "", &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: time.Duration(retryAfter) * time.Second,
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &providers.HTTPError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// playerSlug converts a player name to the site's url slug: the first five
// letters of the last name, the first two of the first name, and a "01"
// disambiguator.
func playerSlug(name string) string {
	fields := strings.Fields(salaries.NormalizeName(name))
	if len(fields) < 2 {
		return ""
	}
	first, last := fields[0], fields[len(fields)-1]
	if len(last) > 5 {
		last = last[:5]
	}
	if len(first) > 2 {
		first = first[:2]
	}
	return last + first + "01"
}
