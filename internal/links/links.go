// Package links turns mined association rules into prerequisite links.
//
// A single mining pass is not enough evidence for a prerequisite: rule
// x => y over the mastery data only says mastered students tend to have
// mastered y whenever they mastered x. The protocol therefore mines the
// dataset twice — once as-is and once with every cell complemented
// (mastery=0 events) — and reports "y is a prerequisite of x" only when
// x => y holds in the positive run AND y => x holds in the complemented
// run (not mastering y implies not mastering x).
package links

import (
	"fmt"

	"github.com/blackwell-systems/kcmine/internal/dataset"
	"github.com/blackwell-systems/kcmine/internal/mining"
)

// Link is one discovered prerequisite relationship: Prereq must be
// mastered before Dependent. Forward is the probability of the rule
// Dependent => Prereq on the positive data; Backward the probability of
// Prereq => Dependent on the complemented data.
type Link struct {
	Prereq    string
	Dependent string
	Forward   float64
	Backward  float64
}

// Discover runs the complement-and-intersect protocol. Both mining
// passes use the same thresholds. Output order follows the positive
// run's rule order.
func Discover(ds *dataset.Dataset, th mining.Thresholds, opts ...mining.Option) ([]Link, error) {
	positive, err := mining.Mine(ds, th, opts...)
	if err != nil {
		return nil, fmt.Errorf("positive mining pass: %w", err)
	}

	negative, err := mining.Mine(ds.Complement(), th, opts...)
	if err != nil {
		return nil, fmt.Errorf("complemented mining pass: %w", err)
	}

	backward := make(map[mining.Rule]float64, len(negative))
	for _, r := range negative {
		backward[r.Rule] = r.Probability
	}

	var found []Link
	for _, r := range positive {
		// Rule x => y with reverse y => x present in the complemented
		// run means y is a prerequisite of x.
		rev := mining.Rule{Antecedent: r.Consequent, Consequent: r.Antecedent}
		p, ok := backward[rev]
		if !ok {
			continue
		}
		found = append(found, Link{
			Prereq:    r.Consequent,
			Dependent: r.Antecedent,
			Forward:   r.Probability,
			Backward:  p,
		})
	}

	return found, nil
}
