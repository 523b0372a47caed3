package app

import "testing"

func TestInspectCommand(t *testing.T) {
	if inspectCmd.Use != "inspect <dataset.csv>" {
		t.Errorf("expected Use to be 'inspect <dataset.csv>', got '%s'", inspectCmd.Use)
	}

	if inspectCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if inspectCmd.Flags().Lookup("pair") == nil {
		t.Error("expected --pair flag to be registered")
	}
}

func TestInspectRejectsBadPair(t *testing.T) {
	tests := []struct {
		name string
		pair string
	}{
		{"empty", ""},
		{"single identifier", "algebra"},
		{"three identifiers", "a,b,c"},
		{"blank side", "a,"},
		{"same identifier", "a,a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldPair := inspectPair
			inspectPair = tt.pair
			defer func() { inspectPair = oldPair }()

			if err := runInspect(inspectCmd, []string{"irrelevant.csv"}); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
