// Package mining implements probabilistic association-rule mining over
// mastery datasets.
//
// For every ordered pair of knowledge components (x, y) the miner
// estimates the probability that the rule "mastery of x implies mastery
// of y" holds at a given support count and confidence level. The input
// is probabilistic (each cell is the probability that the latent binary
// mastery variable is 1), so a pattern's support count is itself a
// random variable. Rather than enumerating the exponentially many hard
// 0/1 datasets consistent with the input, the engine computes the full
// support-count distribution with a linear dynamic program and
// aggregates two such distributions into one rule probability.
package mining

import (
	"errors"
	"fmt"
)

// Variant selects how a pattern is interpreted when computing its
// support distribution.
type Variant int

const (
	// Conjunction counts records where both components hold (x AND y).
	Conjunction Variant = iota
	// FirstAndNotSecond counts records where the first component holds
	// and the second does not (x AND NOT y).
	FirstAndNotSecond
)

// ErrBadThreshold is returned when minsup, minconf, or minprob fall
// outside their numeric contracts.
var ErrBadThreshold = errors.New("threshold outside valid range")

// ErrUnknownColumn is returned when a pattern references a KC that is
// not in the dataset's schema.
var ErrUnknownColumn = errors.New("unknown knowledge component")

// Pair is an unordered pair of distinct KC identifiers, canonicalized
// so that X sorts before Y.
type Pair struct {
	X, Y string
}

// Rule is an oriented pair: the candidate rule Antecedent => Consequent.
type Rule struct {
	Antecedent string
	Consequent string
}

// ScoredRule is a rule together with the probability that it meets the
// support and confidence thresholds.
type ScoredRule struct {
	Rule
	Probability float64
}

// Thresholds bundles the three mining thresholds. MinProbability is
// ignored by Rank, which returns every rule.
type Thresholds struct {
	MinSupport     int     // minimum support count, 0..N
	MinConfidence  float64 // minimum confidence, (0, 1]
	MinProbability float64 // minimum rule probability, [0, 1]
}

// Validate rejects thresholds outside their numeric contracts.
func (t Thresholds) Validate() error {
	if t.MinSupport < 0 {
		return fmt.Errorf("%w: minsup %d is negative", ErrBadThreshold, t.MinSupport)
	}
	if t.MinConfidence <= 0 || t.MinConfidence > 1 {
		return fmt.Errorf("%w: minconf %v not in (0, 1]", ErrBadThreshold, t.MinConfidence)
	}
	if t.MinProbability < 0 || t.MinProbability > 1 {
		return fmt.Errorf("%w: minprob %v not in [0, 1]", ErrBadThreshold, t.MinProbability)
	}
	return nil
}

// Option configures a Mine or Rank call.
type Option func(*options)

type options struct {
	workers  int
	progress func(done, total int)
}

// WithWorkers caps the number of concurrent pattern evaluations.
// Values below 1 fall back to the number of CPUs.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithProgress registers a callback invoked after each oriented pair is
// evaluated. The callback may be called from multiple goroutines.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) { o.progress = fn }
}
