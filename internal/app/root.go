package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath string

	// RootCmd is the root command for kcmine
	RootCmd = &cobra.Command{
		Use:   "kcmine",
		Short: "Probabilistic prerequisite discovery for knowledge components",
		Long: `kcmine mines probabilistic association rules from knowledge-component
mastery data and turns them into prerequisite links.

The input is a CSV table: one column per knowledge component (KC), one
row per observation, every cell the probability that the KC is mastered
in that observation. For every ordered KC pair (x, y), kcmine computes
the probability that the rule "mastery of x implies mastery of y" meets
the chosen support and confidence thresholds, without ever enumerating
the exponentially many hard 0/1 datasets behind the probabilities.

A prerequisite link "y is a prerequisite of x" is reported only when
x => y holds on the mastery data AND y => x holds on the complemented
(mastery=0) data.

Every invocation is recorded in a local SQLite history.

Examples:
  # Mine rules above a probability threshold
  kcmine mine mastery.csv --minsup 150 --minconf 0.8 --minprob 0.9

  # Rank every rule by probability
  kcmine rank mastery.csv --minsup 150 --minconf 0.8

  # Discover prerequisite links (complement-and-intersect)
  kcmine links mastery.csv --minsup 150 --minconf 0.8 --minprob 0.9

  # Re-discover links whenever the dataset file changes
  kcmine watch mastery.csv

  # Review stored runs
  kcmine runs
  kcmine runs --id 3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := getDBPath()
			fmt.Println("kcmine: probabilistic prerequisite discovery for knowledge components")
			fmt.Println()
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Println("Run 'kcmine mine <dataset.csv>' to mine your first ruleset.")
				fmt.Println("Run 'kcmine --help' for the full reference.")
			} else {
				fmt.Println("Tip: Run 'kcmine runs' to review past mining runs.")
				fmt.Println("     Run 'kcmine --help' for all commands.")
			}
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.kcmine/kcmine.db)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	// Create .kcmine directory if it doesn't exist
	kcmineDir := filepath.Join(home, ".kcmine")
	if err := os.MkdirAll(kcmineDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create kcmine directory: %w", err)
	}

	return filepath.Join(kcmineDir, "kcmine.db"), nil
}
