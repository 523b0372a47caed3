package app

import (
	"testing"
	"time"

	"github.com/blackwell-systems/kcmine/internal/links"
)

func TestWatchCommand(t *testing.T) {
	if watchCmd.Use != "watch <dataset.csv>" {
		t.Errorf("expected Use to be 'watch <dataset.csv>', got '%s'", watchCmd.Use)
	}

	if watchCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if watchCmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
}

func TestWatchCommandFlags(t *testing.T) {
	for _, name := range []string{"minsup", "minconf", "minprob", "preset", "debounce"} {
		if watchCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag '%s' to be registered", name)
		}
	}

	flag := watchCmd.Flags().Lookup("debounce")
	if flag != nil && flag.DefValue != (2*time.Second).String() {
		t.Errorf("expected debounce default to be '2s', got '%s'", flag.DefValue)
	}
}

func TestDescribeLinkChange(t *testing.T) {
	ab := links.Link{Prereq: "A", Dependent: "B"}
	cd := links.Link{Prereq: "C", Dependent: "D"}

	tests := []struct {
		name     string
		prev     []links.Link
		next     []links.Link
		first    bool
		expected string
	}{
		{"first pass", nil, []links.Link{ab}, true, ""},
		{"unchanged", []links.Link{ab}, []links.Link{ab}, false, " (unchanged)"},
		{"added", []links.Link{ab}, []links.Link{ab, cd}, false, " (+1 -0)"},
		{"removed", []links.Link{ab, cd}, []links.Link{cd}, false, " (+0 -1)"},
		{"replaced", []links.Link{ab}, []links.Link{cd}, false, " (+1 -1)"},
		{"both empty", nil, nil, false, " (unchanged)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describeLinkChange(tt.prev, tt.next, tt.first)
			if got != tt.expected {
				t.Errorf("expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}
