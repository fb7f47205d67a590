package report

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"moviestats/internal/movie"
)

// CorrelationResult holds the Pearson test between user rating and
// metascore over the rows where both are present.
type CorrelationResult struct {
	N int     // paired observations
	R float64 // Pearson correlation coefficient
	T float64 // t-statistic with N-2 degrees of freedom
	P float64 // two-sided p-value
}

func (c *CorrelationResult) String() string {
	return fmt.Sprintf("Pearson r = %.4f (n=%d, t=%.3f, p=%.4f)", c.R, c.N, c.T, c.P)
}

// RatingMetascoreCorrelation computes the Pearson correlation between
// rating and metascore. Rows missing either value are excluded pairwise;
// at least three complete pairs are required for the test.
func RatingMetascoreCorrelation(records []*movie.Record) (*CorrelationResult, error) {
	var xs, ys []float64
	for _, rec := range records {
		if !rec.HasRating() || !rec.HasMetascore() {
			continue
		}
		xs = append(xs, *rec.Rating)
		ys = append(ys, float64(*rec.Metascore))
	}

	n := len(xs)
	if n < 3 {
		return nil, fmt.Errorf("not enough paired observations: %d", n)
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return nil, fmt.Errorf("correlation undefined: zero variance in a column")
	}

	result := &CorrelationResult{N: n, R: r}

	if math.Abs(r) >= 1 {
		// Degenerate perfect fit, the t-statistic diverges
		result.T = math.Inf(int(math.Copysign(1, r)))
		result.P = 0
		return result, nil
	}

	df := float64(n - 2)
	result.T = r * math.Sqrt(df/(1-r*r))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	result.P = 2 * dist.CDF(-math.Abs(result.T))

	return result, nil
}
