package app

import "testing"

func TestRankCommand(t *testing.T) {
	if rankCmd.Use != "rank <dataset.csv>" {
		t.Errorf("expected Use to be 'rank <dataset.csv>', got '%s'", rankCmd.Use)
	}

	if rankCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if rankCmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
}

func TestRankCommandFlags(t *testing.T) {
	for _, name := range []string{"minsup", "minconf", "top"} {
		if rankCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag '%s' to be registered", name)
		}
	}

	// rank applies no probability cutoff, so it must not take --minprob.
	if rankCmd.Flags().Lookup("minprob") != nil {
		t.Error("expected rank to have no minprob flag")
	}
}

func TestRankCommandRejectsNegativeTop(t *testing.T) {
	oldTop := rankTop
	rankTop = -1
	defer func() { rankTop = oldTop }()

	if err := runRank(rankCmd, []string{"irrelevant.csv"}); err == nil {
		t.Error("expected error for negative --top, got nil")
	}
}
