package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"moviestats/internal/movie"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

func pairedRecords(xs []float64, ys []int) []*movie.Record {
	records := make([]*movie.Record, len(xs))
	for i := range xs {
		records[i] = &movie.Record{
			Rating:    fptr(xs[i]),
			Metascore: iptr(ys[i]),
		}
	}
	return records
}

func TestRatingMetascoreCorrelation(t *testing.T) {
	// Hand-computed: r = 0.8, t = r*sqrt(3/(1-r^2)) = 2.3094 with df=3
	records := pairedRecords(
		[]float64{1, 2, 3, 4, 5},
		[]int{2, 1, 4, 3, 5},
	)

	result, err := RatingMetascoreCorrelation(records)
	require.NoError(t, err)
	require.Equal(t, 5, result.N)
	require.InDelta(t, 0.8, result.R, 1e-12)
	require.InDelta(t, 2.3094, result.T, 1e-4)
	require.Greater(t, result.P, 0.0)
	require.Less(t, result.P, 1.0)
}

func TestRatingMetascoreCorrelationExcludesIncompleteRows(t *testing.T) {
	records := pairedRecords(
		[]float64{1, 2, 3, 4, 5},
		[]int{2, 1, 4, 3, 5},
	)
	// Rows missing either side must not disturb the pairing
	records = append(records,
		&movie.Record{Rating: fptr(9.9)},
		&movie.Record{Metascore: iptr(99)},
		&movie.Record{},
	)

	result, err := RatingMetascoreCorrelation(records)
	require.NoError(t, err)
	require.Equal(t, 5, result.N)
	require.InDelta(t, 0.8, result.R, 1e-12)
}

func TestRatingMetascoreCorrelationTooFewPairs(t *testing.T) {
	records := pairedRecords([]float64{7.0, 8.0}, []int{70, 80})

	_, err := RatingMetascoreCorrelation(records)
	require.Error(t, err)
}

func TestRatingMetascoreCorrelationPerfectFit(t *testing.T) {
	records := pairedRecords(
		[]float64{6.0, 7.0, 8.0, 9.0},
		[]int{60, 70, 80, 90},
	)

	result, err := RatingMetascoreCorrelation(records)
	require.NoError(t, err)
	require.InDelta(t, 1.0, result.R, 1e-9)
	// The t-statistic diverges as r approaches 1
	require.True(t, math.IsInf(result.T, 1) || result.T > 1e3)
	require.Less(t, result.P, 1e-6)
}

func TestCorrelationResultString(t *testing.T) {
	result := &CorrelationResult{N: 48, R: 0.6234, T: 5.412, P: 0.0001}
	s := result.String()
	require.Contains(t, s, "0.6234")
	require.Contains(t, s, "n=48")
}
