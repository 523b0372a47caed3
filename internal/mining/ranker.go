package mining

import (
	"sort"

	"github.com/blackwell-systems/kcmine/internal/dataset"
)

// Rank evaluates every oriented rule and returns all of them sorted by
// probability, highest first. No probability threshold is applied.
// Equal probabilities keep their discovery order (forward orientations
// in enumeration order, then reverse orientations): the sort is stable,
// so ties never reorder.
func Rank(ds *dataset.Dataset, minsup int, minconf float64, opts ...Option) ([]ScoredRule, error) {
	th := Thresholds{MinSupport: minsup, MinConfidence: minconf}
	if err := th.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rules := orient(EnumeratePairs(ds.Columns()))
	probs, err := evaluate(ds, rules, minsup, minconf, o)
	if err != nil {
		return nil, err
	}

	scored := make([]ScoredRule, len(rules))
	for i, r := range rules {
		scored[i] = ScoredRule{Rule: r, Probability: probs[i]}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Probability > scored[j].Probability
	})

	return scored, nil
}
