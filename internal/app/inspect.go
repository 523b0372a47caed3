package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/kcmine/internal/dataset"
	"github.com/blackwell-systems/kcmine/internal/mining"
)

var (
	inspectPair    string
	inspectMinsup  int
	inspectMinconf float64

	inspectCmd = &cobra.Command{
		Use:   "inspect <dataset.csv>",
		Short: "Inspect the support distributions of one oriented pair",
		Long: `Show the support-count distributions behind a single candidate rule
x => y: the pmf of the pattern "x AND y" and of "x AND NOT y", their
means and spreads, the probability mass at or above --minsup, and the
resulting rule probability.

This is a diagnostic view; nothing is recorded in the run history.`,
		Example: `  kcmine inspect mastery.csv --pair algebra,fractions --minsup 150 --minconf 0.8`,
		Args:    cobra.ExactArgs(1),
		RunE:    runInspect,
	}
)

func init() {
	inspectCmd.Flags().StringVar(&inspectPair, "pair", "", "oriented pair as 'x,y' (required)")
	inspectCmd.Flags().IntVar(&inspectMinsup, "minsup", 2, "minimum support count")
	inspectCmd.Flags().Float64Var(&inspectMinconf, "minconf", 0.8, "minimum confidence, in (0, 1]")
	inspectCmd.MarkFlagRequired("pair")

	RootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	parts := strings.Split(inspectPair, ",")
	if len(parts) != 2 {
		return fmt.Errorf("invalid --pair %q: want 'x,y'", inspectPair)
	}
	x := strings.TrimSpace(parts[0])
	y := strings.TrimSpace(parts[1])
	if x == "" || y == "" || x == y {
		return fmt.Errorf("invalid --pair %q: want two distinct identifiers", inspectPair)
	}

	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	pat := mining.Pair{X: x, Y: y}
	fxy, err := mining.SupportDistribution(ds, pat, mining.Conjunction)
	if err != nil {
		return err
	}
	fxny, err := mining.SupportDistribution(ds, pat, mining.FirstAndNotSecond)
	if err != nil {
		return err
	}

	prob, err := mining.RuleProbability(fxy, fxny, inspectMinsup, inspectMinconf)
	if err != nil {
		return err
	}

	fmt.Printf("Rule: %s => %s over %d records\n\n", x, y, ds.NumRecords())
	printDistribution(fmt.Sprintf("count(%s AND %s)", x, y), fxy, inspectMinsup)
	printDistribution(fmt.Sprintf("count(%s AND NOT %s)", x, y), fxny, inspectMinsup)
	fmt.Printf("P(rule at minsup=%d, minconf=%.2f) = %.6f\n", inspectMinsup, inspectMinconf, prob)
	return nil
}

// printDistribution summarizes one support pmf.
func printDistribution(label string, fx []float64, minsup int) {
	mean, stddev := mining.Moments(fx)
	fmt.Printf("%s:\n", label)
	fmt.Printf("  expected count:  %.4f\n", mean)
	fmt.Printf("  std deviation:   %.4f\n", stddev)
	fmt.Printf("  P(count >= %d):  %.6f\n\n", minsup, mining.TailMass(fx, minsup))
}
