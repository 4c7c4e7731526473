package gamelogs

// Weights is a data-driven fantasy scoring table. Alternate contest scoring is
// added by declaring another table, not by branching in Score.
//
// Bonus semantics: a double-double (two of points, rebounds, assists, steals,
// blocks reaching 10) earns DoubleDouble; a triple-double (three of the same
// five) earns TripleDouble INSTEAD of the double-double bonus when
// StackBonuses is false, or in addition to it when true.
type Weights struct {
	Points       float64
	ThreesMade   float64
	Rebounds     float64
	Assists      float64
	Steals       float64
	Blocks       float64
	Turnovers    float64
	DoubleDouble float64
	TripleDouble float64
	StackBonuses bool
}

// DefaultWeights is the contest scoring used by the downstream projection
// workflow. The triple-double bonus replaces the double-double bonus rather
// than stacking with it.
var DefaultWeights = Weights{
	Points:       1.0,
	Rebounds:     1.2,
	Assists:      1.5,
	Steals:       2.0,
	Blocks:       2.0,
	Turnovers:    -1.0,
	DoubleDouble: 1.5,
	TripleDouble: 3.0,
}

// DraftKingsClassic mirrors the DraftKings NBA classic scoring table. Its
// published rules award the bonuses cumulatively (+1.5 then a further +1.5),
// which totals the same as a replacing +3.0 triple-double bonus.
var DraftKingsClassic = Weights{
	Points:       1.0,
	ThreesMade:   0.5,
	Rebounds:     1.25,
	Assists:      1.5,
	Steals:       2.0,
	Blocks:       2.0,
	Turnovers:    -0.5,
	DoubleDouble: 1.5,
	TripleDouble: 1.5,
	StackBonuses: true,
}

// Score computes fantasy points for a row. Pure: it reads only the row's
// counting stats and the weight table.
func (w Weights) Score(r GameLogRow) float64 {
	fp := w.Points*r.Points +
		w.ThreesMade*r.FG3M +
		w.Rebounds*r.Rebounds +
		w.Assists*r.Assists +
		w.Steals*r.Steals +
		w.Blocks*r.Blocks +
		w.Turnovers*r.Turnovers

	doubles := 0
	for _, v := range [5]float64{r.Points, r.Rebounds, r.Assists, r.Steals, r.Blocks} {
		if v >= 10 {
			doubles++
		}
	}
	switch {
	case doubles >= 3:
		fp += w.TripleDouble
		if w.StackBonuses {
			fp += w.DoubleDouble
		}
	case doubles == 2:
		fp += w.DoubleDouble
	}
	return fp
}
