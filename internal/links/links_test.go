package links

import (
	"testing"

	"github.com/blackwell-systems/kcmine/internal/dataset"
	"github.com/blackwell-systems/kcmine/internal/mining"
)

func mustDataset(t *testing.T, columns []string, rows [][]float64) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(columns, rows)
	if err != nil {
		t.Fatalf("failed to build test dataset: %v", err)
	}
	return ds
}

func TestDiscover_FindsPrerequisite(t *testing.T) {
	// Y behaves as a prerequisite of X: nobody masters X without Y,
	// and nobody lacking Y has mastered X.
	//   (X, Y): (1,1), (0,1), (0,0)
	// Positive run: X => Y is certain. Complemented run: NOT Y => NOT X
	// is certain. The intersection yields exactly one link.
	ds := mustDataset(t, []string{"X", "Y"}, [][]float64{
		{1, 1},
		{0, 1},
		{0, 0},
	})

	th := mining.Thresholds{MinSupport: 1, MinConfidence: 0.8, MinProbability: 0.9}
	found, err := Discover(ds, th)
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("Discover() returned %d links, want 1: %v", len(found), found)
	}

	link := found[0]
	if link.Prereq != "Y" || link.Dependent != "X" {
		t.Errorf("Discover() = %s prerequisite of %s, want Y prerequisite of X",
			link.Prereq, link.Dependent)
	}
	if link.Forward < 0.9 || link.Backward < 0.9 {
		t.Errorf("link probabilities = %v/%v, want both >= 0.9", link.Forward, link.Backward)
	}
}

func TestDiscover_RequiresBothDirections(t *testing.T) {
	// X and Y are mastered independently: complementing does not
	// produce the reverse rule, so no link may be reported even though
	// the positive run finds rules.
	ds := mustDataset(t, []string{"X", "Y"}, [][]float64{
		{1, 1},
		{1, 0},
		{0, 1},
		{0, 0},
	})

	th := mining.Thresholds{MinSupport: 1, MinConfidence: 0.9, MinProbability: 0.9}
	found, err := Discover(ds, th)
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}

	if len(found) != 0 {
		t.Errorf("Discover() = %v, want no links for independent KCs", found)
	}
}

func TestDiscover_EmptyDataset(t *testing.T) {
	ds := mustDataset(t, []string{"X", "Y"}, nil)

	// Zero records is a valid empty result, not a fault.
	th := mining.Thresholds{MinSupport: 1, MinConfidence: 0.8, MinProbability: 0.9}
	found, err := Discover(ds, th)
	if err != nil {
		t.Fatalf("Discover() on empty dataset failed: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("Discover() on empty dataset = %v, want none", found)
	}
}

func TestDiscover_PropagatesBadThresholds(t *testing.T) {
	ds := mustDataset(t, []string{"X", "Y"}, [][]float64{{1, 1}})

	th := mining.Thresholds{MinSupport: 0, MinConfidence: 0, MinProbability: 0.9}
	if _, err := Discover(ds, th); err == nil {
		t.Error("Discover() with invalid thresholds should fail")
	}
}
