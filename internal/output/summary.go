package output

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/blackwell-systems/kcmine/internal/mining"
)

// RenderSummary produces a one-line statistical summary of the rule
// probabilities in a ranking: count, mean, median, standard deviation,
// and the extremes.
func RenderSummary(rules []mining.ScoredRule) string {
	if len(rules) == 0 {
		return "Summary: no rules evaluated\n"
	}

	probs := make([]float64, len(rules))
	for i, r := range rules {
		probs[i] = r.Probability
	}

	mean, err := stats.Mean(probs)
	if err != nil {
		return fmt.Sprintf("Summary: %d rules\n", len(rules))
	}
	median, _ := stats.Median(probs)
	stddev, _ := stats.StandardDeviation(probs)
	min, _ := stats.Min(probs)
	max, _ := stats.Max(probs)

	return fmt.Sprintf("Summary: %d rules, mean %.4f, median %.4f, stddev %.4f, range [%.4f, %.4f]\n",
		len(rules), mean, median, stddev, min, max)
}
