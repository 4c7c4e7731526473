package domain

import (
	"errors"
	"testing"
)

func TestParseSeasonAcceptsValidLabels(t *testing.T) {
	tests := []string{"2024-25", "2023-24", "1999-00", "2015-16"}
	for _, label := range tests {
		s, err := ParseSeason(label)
		if err != nil {
			t.Fatalf("ParseSeason(%q) returned error %v", label, err)
		}
		if s.String() != label {
			t.Fatalf("ParseSeason(%q) = %q", label, s)
		}
	}
}

func TestParseSeasonRejectsBadLabels(t *testing.T) {
	tests := []string{"", "2024", "2024-2025", "24-25", "2024-26", "2024_25", "abcd-ef"}
	for _, label := range tests {
		_, err := ParseSeason(label)
		if err == nil {
			t.Fatalf("ParseSeason(%q) succeeded, want error", label)
		}
		var invalid *InvalidSeasonError
		if !errors.As(err, &invalid) {
			t.Fatalf("ParseSeason(%q) error type %T, want *InvalidSeasonError", label, err)
		}
		if invalid.Label != label {
			t.Fatalf("error label %q, want %q", invalid.Label, label)
		}
	}
}

func TestSeasonStartYear(t *testing.T) {
	s, err := ParseSeason("1999-00")
	if err != nil {
		t.Fatalf("ParseSeason: %v", err)
	}
	if got := s.StartYear(); got != 1999 {
		t.Fatalf("StartYear = %d, want 1999", got)
	}
}

func TestParseSeasonType(t *testing.T) {
	tests := []struct {
		in   string
		want SeasonType
		err  bool
	}{
		{"", RegularSeason, false},
		{"regular", RegularSeason, false},
		{"Regular Season", RegularSeason, false},
		{"playoffs", Playoffs, false},
		{"Playoffs", Playoffs, false},
		{"preseason", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSeasonType(tt.in)
		if tt.err {
			if err == nil {
				t.Fatalf("ParseSeasonType(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSeasonType(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseSeasonType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
