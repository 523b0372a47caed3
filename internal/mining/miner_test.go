package mining

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"
)

// TestMine_AsymmetricRule uses a dataset where X => Y is certain but
// Y => X is not: Y is always mastered, X only in two of three records.
// X AND NOT Y never occurs, while Y AND NOT X certainly occurs once,
// which kills the confidence test for Y => X.
func TestMine_AsymmetricRule(t *testing.T) {
	ds := mustDataset(t, []string{"X", "Y"}, [][]float64{
		{1, 1},
		{1, 1},
		{0, 1},
	})

	th := Thresholds{MinSupport: 2, MinConfidence: 0.8, MinProbability: 0.9}
	rules, err := Mine(ds, th)
	if err != nil {
		t.Fatalf("Mine() failed: %v", err)
	}

	if len(rules) != 1 {
		t.Fatalf("Mine() returned %d rules, want 1: %v", len(rules), rules)
	}

	got := rules[0]
	if got.Antecedent != "X" || got.Consequent != "Y" {
		t.Errorf("Mine() returned rule %s => %s, want X => Y", got.Antecedent, got.Consequent)
	}
	if math.Abs(got.Probability-1) > 1e-12 {
		t.Errorf("rule probability = %v, want 1", got.Probability)
	}
}

func TestMine_ForwardBlockThenReverseBlock(t *testing.T) {
	// Every value is 1, so every rule is certain and survives the
	// filter. The output must be all forward orientations in
	// enumeration order, then all reverse orientations.
	ds := mustDataset(t, []string{"A", "B", "C"}, [][]float64{
		{1, 1, 1},
		{1, 1, 1},
	})

	th := Thresholds{MinSupport: 1, MinConfidence: 0.8, MinProbability: 0.9}
	rules, err := Mine(ds, th)
	if err != nil {
		t.Fatalf("Mine() failed: %v", err)
	}

	want := []Rule{
		{Antecedent: "A", Consequent: "B"},
		{Antecedent: "A", Consequent: "C"},
		{Antecedent: "B", Consequent: "C"},
		{Antecedent: "B", Consequent: "A"},
		{Antecedent: "C", Consequent: "A"},
		{Antecedent: "C", Consequent: "B"},
	}

	if len(rules) != len(want) {
		t.Fatalf("Mine() returned %d rules, want %d: %v", len(rules), len(want), rules)
	}
	for i := range want {
		if rules[i].Rule != want[i] {
			t.Errorf("rules[%d] = %v, want %v", i, rules[i].Rule, want[i])
		}
	}
}

func TestMine_SingleColumnDataset(t *testing.T) {
	ds := mustDataset(t, []string{"X"}, [][]float64{{0.5}})

	th := Thresholds{MinSupport: 0, MinConfidence: 0.8, MinProbability: 0}
	rules, err := Mine(ds, th)
	if err != nil {
		t.Fatalf("Mine() on single-column dataset failed: %v", err)
	}
	if len(rules) != 0 {
		t.Errorf("Mine() = %v, want empty result", rules)
	}
}

func TestMine_RejectsBadThresholds(t *testing.T) {
	ds := mustDataset(t, []string{"X", "Y"}, [][]float64{{1, 1}})

	_, err := Mine(ds, Thresholds{MinSupport: 0, MinConfidence: 0, MinProbability: 0})
	if !errors.Is(err, ErrBadThreshold) {
		t.Errorf("Mine() error = %v; want ErrBadThreshold", err)
	}
}

func TestMine_ParallelMatchesSequential(t *testing.T) {
	ds := mustDataset(t, []string{"a", "b", "c", "d"}, [][]float64{
		{0.9, 0.8, 0.1, 0.4},
		{0.7, 0.95, 0.3, 0.2},
		{0.85, 0.9, 0.6, 0.1},
		{0.2, 0.4, 0.9, 0.7},
		{0.95, 0.85, 0.05, 0.3},
	})
	th := Thresholds{MinSupport: 1, MinConfidence: 0.6, MinProbability: 0}

	sequential, err := Mine(ds, th, WithWorkers(1))
	if err != nil {
		t.Fatalf("sequential Mine() failed: %v", err)
	}
	parallel, err := Mine(ds, th, WithWorkers(8))
	if err != nil {
		t.Fatalf("parallel Mine() failed: %v", err)
	}

	if len(sequential) != len(parallel) {
		t.Fatalf("parallel returned %d rules, sequential %d", len(parallel), len(sequential))
	}
	for i := range sequential {
		if sequential[i] != parallel[i] {
			t.Errorf("result %d differs: sequential %v, parallel %v", i, sequential[i], parallel[i])
		}
	}
}

func TestMine_ProgressCallback(t *testing.T) {
	ds := mustDataset(t, []string{"a", "b", "c"}, [][]float64{
		{0.5, 0.5, 0.5},
	})

	var calls atomic.Int64
	th := Thresholds{MinSupport: 0, MinConfidence: 0.8, MinProbability: 0}
	_, err := Mine(ds, th, WithProgress(func(done, total int) {
		calls.Add(1)
		if total != 6 {
			t.Errorf("progress total = %d, want 6", total)
		}
	}))
	if err != nil {
		t.Fatalf("Mine() failed: %v", err)
	}

	// 3 pairs, both orientations.
	if calls.Load() != 6 {
		t.Errorf("progress callback called %d times, want 6", calls.Load())
	}
}
