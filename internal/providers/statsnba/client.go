package statsnba

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-dfs-data/internal/domain"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/players"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/teams"
	"github.com/preston-bernstein/nba-dfs-data/internal/providers"
)

// Config controls how the client reaches the stats endpoint.
type Config struct {
	BaseURL    string
	LeagueID   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches game logs, rosters, and team metrics from the stats.nba.com
// API and maps them to domain models. It performs no retrying or pacing of
// its own; wrap it with the providers decorators for that.
type Client struct {
	baseURL    string
	leagueID   string
	httpClient httpDoer
}

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		leagueID:   resolveLeagueID(cfg.LeagueID),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

var _ providers.DataProvider = (*Client)(nil)

// FetchSeasonLogs retrieves every player box-score line for a season in one
// bulk call against the league game-log endpoint.
func (c *Client) FetchSeasonLogs(ctx context.Context, season domain.Season, seasonType domain.SeasonType) ([]gamelogs.GameLogRow, error) {
	params := url.Values{
		"LeagueID":     {c.leagueID},
		"Season":       {season.String()},
		"SeasonType":   {string(seasonType)},
		"PlayerOrTeam": {"P"},
		"Counter":      {"0"},
		"Direction":    {"ASC"},
		"Sorter":       {"DATE"},
		"DateFrom":     {""},
		"DateTo":       {""},
	}
	rs, err := c.get(ctx, endpointLeagueGameLog, params)
	if err != nil {
		return nil, err
	}
	return mapGameLogRows(rs, season, seasonType), nil
}

// FetchPlayerLogs retrieves one player's game log for a season.
func (c *Client) FetchPlayerLogs(ctx context.Context, playerID int, season domain.Season, seasonType domain.SeasonType) ([]gamelogs.GameLogRow, error) {
	params := url.Values{
		"LeagueID":   {c.leagueID},
		"PlayerID":   {strconv.Itoa(playerID)},
		"Season":     {season.String()},
		"SeasonType": {string(seasonType)},
	}
	rs, err := c.get(ctx, endpointPlayerGameLog, params)
	if err != nil {
		return nil, err
	}
	rows := mapGameLogRows(rs, season, seasonType)
	// The per-player result set omits the player id/name columns present in
	// the league-wide one; backfill the id we queried with.
	for i := range rows {
		if rows[i].PlayerID == 0 {
			rows[i].PlayerID = playerID
		}
	}
	return rows, nil
}

// FetchPlayers retrieves the all-players roster listing for a season.
func (c *Client) FetchPlayers(ctx context.Context, season domain.Season) ([]players.Player, error) {
	params := url.Values{
		"LeagueID":            {c.leagueID},
		"Season":              {season.String()},
		"IsOnlyCurrentSeason": {"1"},
	}
	rs, err := c.get(ctx, endpointCommonAllPlayers, params)
	if err != nil {
		return nil, err
	}
	return mapPlayers(rs), nil
}

// FetchTeamMetrics retrieves estimated team ratings for a season.
func (c *Client) FetchTeamMetrics(ctx context.Context, season domain.Season) ([]teams.TeamMetrics, error) {
	params := url.Values{
		"LeagueID":   {c.leagueID},
		"Season":     {season.String()},
		"SeasonType": {string(domain.RegularSeason)},
	}
	rs, err := c.get(ctx, endpointTeamEstimatedMetrics, params)
	if err != nil {
		return nil, err
	}
	return mapTeamMetrics(rs), nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*resultSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", refererHeader)
	req.Header.Set("User-Agent", userAgentHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return nil, &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.HTTPError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload envelope
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.first()
}
