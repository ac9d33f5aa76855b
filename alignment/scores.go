package alignment

// Scores holds the affine gap scoring parameters. Penalties are negative values
// added to the alignment score.
type Scores struct {
	Match    int // equal symbols
	Mismatch int
	Open     int // charged once per gap
	Extend   int // charged per gap base, including the first
	OffEdge  int // per query base overhanging either end of the reference
}

// DefaultScores is used when no scoring is configured.
var DefaultScores = Scores{
	Match:    5,
	Mismatch: -4,
	Open:     -6,
	Extend:   -1,
	OffEdge:  -2,
}

func (s Scores) symbol(q, r byte) int {
	if q == r {
		return s.Match
	}
	return s.Mismatch
}
