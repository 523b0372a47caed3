package mining

import "fmt"

// RuleProbability aggregates two support distributions into the
// probability that the rule x => y meets both thresholds: support
// count(x AND y) >= minsup, and confidence
// count(x AND y) / (count(x AND y) + count(x AND NOT y)) >= minconf.
//
// The confidence constraint rearranges to
// count(x AND NOT y) <= ((1-minconf)/minconf) * count(x AND y), so for
// every support count k >= minsup the inner loop accumulates the mass
// of fxny at counts j from 0 upward, stopping once j exceeds the bound
// for that k. The cumulative sum is rebuilt per k; the result is the
// sum over k of fxy[k] times that prefix mass.
func RuleProbability(fxy, fxny []float64, minsup int, minconf float64) (float64, error) {
	if minsup < 0 {
		return 0, fmt.Errorf("%w: minsup %d is negative", ErrBadThreshold, minsup)
	}
	if minconf <= 0 || minconf > 1 {
		return 0, fmt.Errorf("%w: minconf %v not in (0, 1]", ErrBadThreshold, minconf)
	}

	ratio := (1 - minconf) / minconf

	var prob float64
	for k := minsup; k < len(fxy); k++ {
		bound := ratio * float64(k)
		var cum float64
		for j := 0; j < len(fxny); j++ {
			if float64(j) > bound {
				break
			}
			cum += fxny[j]
		}
		prob += cum * fxy[k]
	}

	return prob, nil
}
