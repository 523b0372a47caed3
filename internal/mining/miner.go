package mining

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/kcmine/internal/dataset"
)

// orient materializes both directions of every unordered pair: all
// forward orientations in enumeration order, then all reverse
// orientations in the same order. Downstream output order (and the
// ranker's tie-break) depends on this layout, so it is a contract.
func orient(pairs []Pair) []Rule {
	rules := make([]Rule, 0, 2*len(pairs))
	for _, p := range pairs {
		rules = append(rules, Rule{Antecedent: p.X, Consequent: p.Y})
	}
	for _, p := range pairs {
		rules = append(rules, Rule{Antecedent: p.Y, Consequent: p.X})
	}
	return rules
}

// evaluate computes the rule probability for every oriented rule.
// Pattern evaluations are independent of one another, so they run on a
// bounded worker group; each worker owns its DP buffers and writes its
// result to a dedicated slot, keeping the output order identical to a
// sequential pass.
func evaluate(ds *dataset.Dataset, rules []Rule, minsup int, minconf float64, o options) ([]float64, error) {
	workers := o.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	probs := make([]float64, len(rules))
	var done atomic.Int64

	var g errgroup.Group
	g.SetLimit(workers)
	for i, r := range rules {
		i, r := i, r
		g.Go(func() error {
			pat := Pair{X: r.Antecedent, Y: r.Consequent}
			fxy, err := SupportDistribution(ds, pat, Conjunction)
			if err != nil {
				return fmt.Errorf("rule %s => %s: %w", r.Antecedent, r.Consequent, err)
			}
			fxny, err := SupportDistribution(ds, pat, FirstAndNotSecond)
			if err != nil {
				return fmt.Errorf("rule %s => %s: %w", r.Antecedent, r.Consequent, err)
			}
			p, err := RuleProbability(fxy, fxny, minsup, minconf)
			if err != nil {
				return fmt.Errorf("rule %s => %s: %w", r.Antecedent, r.Consequent, err)
			}
			probs[i] = p
			if o.progress != nil {
				o.progress(int(done.Add(1)), len(rules))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return probs, nil
}

// Mine returns every oriented rule whose probability of meeting the
// support and confidence thresholds is at least th.MinProbability.
// Rules appear as the forward orientations of all enumerated pairs
// followed by the reverse orientations, filtered in place; no ranking
// is applied. A dataset with fewer than two columns yields an empty
// result.
func Mine(ds *dataset.Dataset, th Thresholds, opts ...Option) ([]ScoredRule, error) {
	if err := th.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rules := orient(EnumeratePairs(ds.Columns()))
	probs, err := evaluate(ds, rules, th.MinSupport, th.MinConfidence, o)
	if err != nil {
		return nil, err
	}

	var kept []ScoredRule
	for i, r := range rules {
		if probs[i] >= th.MinProbability {
			kept = append(kept, ScoredRule{Rule: r, Probability: probs[i]})
		}
	}
	return kept, nil
}
