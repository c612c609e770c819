package calculation

// BisectionIterations is the fixed number of halvings every solver performs.
// No solver exits early on a tolerance, so results are deterministic and
// accurate only to bisection precision.
const BisectionIterations = 100

// Bracket bounds for implied-rate searches, as fractions (0.1% to 50%).
const (
	RateFloor   = 0.001
	RateCeiling = 0.5
)

// bisect narrows [lo, hi] for a monotonic predicate. above(x) must be false
// at lo and true at hi; after BisectionIterations halvings the final bracket
// is returned, with hi still satisfying the predicate.
func bisect(lo, hi float64, above func(x float64) bool) (float64, float64) {
	for i := 0; i < BisectionIterations; i++ {
		mid := (lo + hi) / 2
		if above(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo, hi
}
