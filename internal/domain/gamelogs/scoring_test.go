package gamelogs

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreBaseWeights(t *testing.T) {
	row := GameLogRow{
		Points:    20,
		Rebounds:  5,
		Assists:   4,
		Steals:    1,
		Blocks:    1,
		Turnovers: 3,
	}
	// 20 + 6 + 6 + 2 + 2 - 3 = 33
	if got := DefaultWeights.Score(row); !almostEqual(got, 33) {
		t.Fatalf("Score = %v, want 33", got)
	}
}

func TestScoreDoubleDoubleBonus(t *testing.T) {
	row := GameLogRow{Points: 10, Rebounds: 10}
	base := 10*1.0 + 10*1.2
	if got := DefaultWeights.Score(row); !almostEqual(got, base+1.5) {
		t.Fatalf("Score = %v, want %v", got, base+1.5)
	}
}

func TestScoreTripleDoubleReplacesDoubleDouble(t *testing.T) {
	row := GameLogRow{Points: 10, Rebounds: 10, Assists: 10}
	base := 10*1.0 + 10*1.2 + 10*1.5
	// +3.0 triple-double only; no stacked +1.5 double-double on top.
	if got := DefaultWeights.Score(row); !almostEqual(got, base+3.0) {
		t.Fatalf("Score = %v, want %v", got, base+3.0)
	}
}

func TestScoreNineIsNotDoubleDigit(t *testing.T) {
	row := GameLogRow{Points: 10, Rebounds: 9}
	base := 10*1.0 + 9*1.2
	if got := DefaultWeights.Score(row); !almostEqual(got, base) {
		t.Fatalf("Score = %v, want %v (no bonus)", got, base)
	}
}

func TestScoreStealsAndBlocksCountTowardDoubles(t *testing.T) {
	row := GameLogRow{Steals: 10, Blocks: 10}
	base := 10*2.0 + 10*2.0
	if got := DefaultWeights.Score(row); !almostEqual(got, base+1.5) {
		t.Fatalf("Score = %v, want %v", got, base+1.5)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	row := GameLogRow{Points: 31, Rebounds: 11, Assists: 10, Steals: 2, Blocks: 1, Turnovers: 4, FG3M: 3}
	first := DraftKingsClassic.Score(row)
	for i := 0; i < 100; i++ {
		if got := DraftKingsClassic.Score(row); got != first {
			t.Fatalf("Score not deterministic: %v != %v", got, first)
		}
	}
}

func TestDraftKingsClassicStacksBonuses(t *testing.T) {
	row := GameLogRow{Points: 10, Rebounds: 10, Assists: 10}
	base := 10*1.0 + 10*1.25 + 10*1.5
	// Published DK rules: +1.5 double-double plus a further +1.5 triple-double.
	if got := DraftKingsClassic.Score(row); !almostEqual(got, base+3.0) {
		t.Fatalf("Score = %v, want %v", got, base+3.0)
	}
}

func TestWithFantasyPoints(t *testing.T) {
	row := GameLogRow{Points: 12, FantasyPoints: 999}
	got := row.WithFantasyPoints(DefaultWeights)
	if !almostEqual(got.FantasyPoints, 12) {
		t.Fatalf("FantasyPoints = %v, want 12 (upstream value must be discarded)", got.FantasyPoints)
	}
	if row.FantasyPoints != 999 {
		t.Fatalf("receiver mutated: %v", row.FantasyPoints)
	}
}
