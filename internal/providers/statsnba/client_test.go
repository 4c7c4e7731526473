package statsnba

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-dfs-data/internal/providers"
)

const leagueGameLogBody = `{
  "resource": "leaguegamelog",
  "resultSets": [{
    "name": "LeagueGameLog",
    "headers": ["SEASON_ID","PLAYER_ID","PLAYER_NAME","TEAM_ID","TEAM_ABBREVIATION","TEAM_NAME","GAME_ID","GAME_DATE","MATCHUP","WL","MIN","FGM","FGA","FG_PCT","FG3M","FG3A","FG3_PCT","FTM","FTA","FT_PCT","OREB","DREB","REB","AST","STL","BLK","TOV","PF","PTS","PLUS_MINUS","FANTASY_PTS","VIDEO_AVAILABLE"],
    "rowSet": [
      ["22024",1629029,"Luka Doncic",1610612742,"DAL","Dallas Mavericks","0022400001","2024-10-24","DAL vs. SAS","W",36.0,11,22,0.5,3,8,0.375,8,10,0.8,1,9,10,11,2,0,4,2,33,5,99.9,1],
      ["22024",201939,"Stephen Curry",1610612744,"GSW","Golden State Warriors","0022400002","2024-10-24","GSW @ POR","L",34.0,9,20,0.45,5,11,0.4545,3,3,1.0,0,4,4,6,1,0,2,3,26,-4,41.5,1]
    ]
  }]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	return srv, client
}

func TestFetchSeasonLogsMapsRows(t *testing.T) {
	var gotQuery map[string]string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != endpointLeagueGameLog {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Referer") != refererHeader {
			t.Errorf("missing referer header")
		}
		gotQuery = map[string]string{
			"Season":       r.URL.Query().Get("Season"),
			"SeasonType":   r.URL.Query().Get("SeasonType"),
			"PlayerOrTeam": r.URL.Query().Get("PlayerOrTeam"),
		}
		fmt.Fprint(w, leagueGameLogBody)
	})

	rows, err := client.FetchSeasonLogs(context.Background(), "2024-25", "Regular Season")
	if err != nil {
		t.Fatalf("FetchSeasonLogs: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	luka := rows[0]
	if luka.PlayerName != "Luka Doncic" || luka.PlayerID != 1629029 {
		t.Fatalf("unexpected player row %+v", luka)
	}
	if luka.Points != 33 || luka.Rebounds != 10 || luka.Assists != 11 {
		t.Fatalf("stat columns mismapped: %+v", luka)
	}
	if luka.TeamAbbrev != "DAL" || luka.GameID != "0022400001" || luka.WinLoss != "W" {
		t.Fatalf("identity columns mismapped: %+v", luka)
	}
	if luka.FantasyPoints != 0 {
		t.Fatalf("upstream FANTASY_PTS must be ignored, got %v", luka.FantasyPoints)
	}
	if luka.Season != "2024-25" {
		t.Fatalf("season not threaded through: %+v", luka)
	}

	if gotQuery["Season"] != "2024-25" || gotQuery["SeasonType"] != "Regular Season" || gotQuery["PlayerOrTeam"] != "P" {
		t.Fatalf("unexpected query params %+v", gotQuery)
	}
}

func TestFetchSeasonLogsEmptyResultSetIsNotAnError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"resource":"leaguegamelog","resultSets":[{"name":"LeagueGameLog","headers":["PLAYER_ID"],"rowSet":[]}]}`)
	})

	rows, err := client.FetchSeasonLogs(context.Background(), "2024-25", "Regular Season")
	if err != nil {
		t.Fatalf("FetchSeasonLogs: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
}

func TestFetchSeasonLogsRateLimit(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.FetchSeasonLogs(context.Background(), "2024-25", "Regular Season")
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rlErr.RetryAfter != 7*time.Second {
		t.Fatalf("RetryAfter = %s, want 7s", rlErr.RetryAfter)
	}
	if rlErr.Provider != ProviderName {
		t.Fatalf("Provider = %q", rlErr.Provider)
	}
}

func TestFetchSeasonLogsServerError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	})

	_, err := client.FetchSeasonLogs(context.Background(), "2024-25", "Regular Season")
	var httpErr *providers.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("StatusCode = %d", httpErr.StatusCode)
	}
}

func TestFetchPlayerLogsBackfillsPlayerID(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != endpointPlayerGameLog {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("PlayerID"); got != "201939" {
			t.Errorf("PlayerID param = %q", got)
		}
		// Per-player endpoint: mixed-case headers, no PLAYER_ID column.
		fmt.Fprint(w, `{
  "resource": "playergamelog",
  "resultSets": [{
    "name": "PlayerGameLog",
    "headers": ["SEASON_ID","Player_ID","Game_ID","GAME_DATE","MATCHUP","WL","MIN","PTS","REB","AST","STL","BLK","TOV"],
    "rowSet": [["22024",201939,"0022400002","OCT 24, 2024","GSW @ POR","L",34.0,26,4,6,1,0,2]]
  }]
}`)
	})

	rows, err := client.FetchPlayerLogs(context.Background(), 201939, "2024-25", "Regular Season")
	if err != nil {
		t.Fatalf("FetchPlayerLogs: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].PlayerID != 201939 {
		t.Fatalf("PlayerID = %d (case-insensitive header lookup failed)", rows[0].PlayerID)
	}
	if rows[0].Points != 26 || rows[0].GameID != "0022400002" {
		t.Fatalf("row mismapped: %+v", rows[0])
	}
}

func TestFetchPlayersMapsRoster(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
  "resource": "commonallplayers",
  "resultSets": [{
    "name": "CommonAllPlayers",
    "headers": ["PERSON_ID","DISPLAY_LAST_COMMA_FIRST","DISPLAY_FIRST_LAST","ROSTERSTATUS","FROM_YEAR","TO_YEAR","PLAYERCODE","TEAM_ID","TEAM_CITY","TEAM_NAME","TEAM_ABBREVIATION"],
    "rowSet": [
      [1629029,"Doncic, Luka","Luka Doncic",1,"2018","2024","luka_doncic",1610612742,"Dallas","Mavericks","DAL"],
      [76001,"Abdelnaby, Alaa","Alaa Abdelnaby",0,"1990","1994","alaa_abdelnaby",0,"","",""]
    ]
  }]
}`)
	})

	roster, err := client.FetchPlayers(context.Background(), "2024-25")
	if err != nil {
		t.Fatalf("FetchPlayers: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("got %d players, want 2", len(roster))
	}
	if !roster[0].Active || roster[0].Name != "Luka Doncic" || roster[0].TeamAbbrev != "DAL" {
		t.Fatalf("unexpected roster row %+v", roster[0])
	}
	if roster[1].Active {
		t.Fatalf("retired player mapped as active: %+v", roster[1])
	}
}

func TestFetchTeamMetricsHandlesSingularResultSet(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
  "resource": "teamestimatedmetrics",
  "resultSet": {
    "name": "TeamEstimatedMetrics",
    "headers": ["TEAM_NAME","TEAM_ID","GP","W","L","E_OFF_RATING","E_DEF_RATING","E_NET_RATING","E_PACE"],
    "rowSet": [["Boston Celtics",1610612738,82,64,18,122.2,110.6,11.6,97.4]]
  }
}`)
	})

	metrics, err := client.FetchTeamMetrics(context.Background(), "2024-25")
	if err != nil {
		t.Fatalf("FetchTeamMetrics: %v", err)
	}
	if len(metrics) != 1 {
		t.Fatalf("got %d teams, want 1", len(metrics))
	}
	m := metrics[0]
	if m.Name != "Boston Celtics" || m.OffRating != 122.2 || m.Wins != 64 {
		t.Fatalf("unexpected metrics %+v", m)
	}
}

func TestGetRejectsMissingResultSets(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"resource":"leaguegamelog"}`)
	})

	_, err := client.FetchSeasonLogs(context.Background(), "2024-25", "Regular Season")
	if err == nil {
		t.Fatal("expected error for envelope without result sets")
	}
}
