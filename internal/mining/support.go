package mining

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/blackwell-systems/kcmine/internal/dataset"
)

// SupportDistribution computes the probability mass function of the
// pattern's support count over the dataset: result[k] is the
// probability that exactly k of the N records satisfy the pattern, so
// the result has length N+1 and sums to 1.
//
// Each record satisfies the pattern independently with its own
// probability p_i (the product of the record's cell values under the
// chosen variant), making the support count a Poisson-binomial
// variable. Its pmf is built by the standard recursive convolution:
// after folding in record i, fx[k] = p_i*fx[k-1] + (1-p_i)*fx[k].
// The update runs k from high to low so a single buffer suffices —
// new fx[k] reads only old fx[k] and fx[k-1], which a right-to-left
// sweep has not yet overwritten. O(N) space, O(N) time per record.
func SupportDistribution(ds *dataset.Dataset, p Pair, v Variant) ([]float64, error) {
	xi, ok := ds.ColumnIndex(p.X)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, p.X)
	}
	yi, ok := ds.ColumnIndex(p.Y)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, p.Y)
	}

	n := ds.NumRecords()
	fx := make([]float64, n+1)
	fx[0] = 1 // zero records processed: certainly zero successes

	for i := 0; i < n; i++ {
		var pi float64
		switch v {
		case Conjunction:
			pi = ds.Value(i, xi) * ds.Value(i, yi)
		case FirstAndNotSecond:
			pi = ds.Value(i, xi) * (1 - ds.Value(i, yi))
		default:
			return nil, fmt.Errorf("unknown pattern variant %d", v)
		}

		// Counts above i+1 are impossible at this step, so the sweep
		// stops there instead of scanning the whole buffer.
		for k := i + 1; k > 0; k-- {
			fx[k] = pi*fx[k-1] + (1-pi)*fx[k]
		}
		fx[0] *= 1 - pi
	}

	return fx, nil
}

// Moments returns the mean and standard deviation of a support pmf.
func Moments(fx []float64) (mean, stddev float64) {
	if len(fx) < 2 {
		// A single bin means N=0: the count is certainly zero.
		return 0, 0
	}

	counts := make([]float64, len(fx))
	floats.Span(counts, 0, float64(len(fx)-1))
	mean = floats.Dot(counts, fx)

	for k := range counts {
		d := float64(k) - mean
		counts[k] = d * d
	}
	return mean, math.Sqrt(floats.Dot(counts, fx))
}

// TailMass returns the probability that the support count is at least
// minsup, i.e. the upper tail of the pmf.
func TailMass(fx []float64, minsup int) float64 {
	if minsup < 0 {
		minsup = 0
	}
	if minsup >= len(fx) {
		return 0
	}
	return floats.Sum(fx[minsup:])
}
