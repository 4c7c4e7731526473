package main

import (
	"testing"

	domainlogs "github.com/preston-bernstein/nba-dfs-data/internal/domain/gamelogs"
)

func TestResolveWeights(t *testing.T) {
	cases := []struct {
		name    string
		want    domainlogs.Weights
		wantErr bool
	}{
		{name: "default", want: domainlogs.DefaultWeights},
		{name: "", want: domainlogs.DefaultWeights},
		{name: "draftkings", want: domainlogs.DraftKingsClassic},
		{name: "dk", want: domainlogs.DraftKingsClassic},
		{name: "yahoo", wantErr: true},
	}
	for _, tc := range cases {
		got, err := resolveWeights(tc.name)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("resolveWeights(%q): expected error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("resolveWeights(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("resolveWeights(%q) = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}
