package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/kcmine/internal/dataset"
	"github.com/blackwell-systems/kcmine/internal/mining"
	"github.com/blackwell-systems/kcmine/internal/output"
	"github.com/blackwell-systems/kcmine/internal/store"
)

var (
	mineMinsup  int
	mineMinconf float64
	mineMinprob float64
	minePreset  string

	mineCmd = &cobra.Command{
		Use:   "mine <dataset.csv>",
		Short: "Mine association rules above a probability threshold",
		Long: `Mine probabilistic association rules from a mastery dataset.

Every ordered pair of knowledge components is evaluated as a candidate
rule x => y. A rule is kept when the probability that it meets both the
support and confidence thresholds is at least --minprob.

The support count of a pattern over probabilistic data is a random
variable; kcmine computes its full distribution with a linear dynamic
program per pattern, so no threshold is ever applied to a point
estimate.`,
		Example: `  # Course-sized dataset, strict thresholds
  kcmine mine mastery.csv --minsup 150 --minconf 0.8 --minprob 0.9

  # Use a named preset from ~/.config/kcmine/presets
  kcmine mine mastery.csv --preset strict`,
		Args: cobra.ExactArgs(1),
		RunE: runMine,
	}
)

func init() {
	mineCmd.Flags().IntVar(&mineMinsup, "minsup", 2, "minimum support count")
	mineCmd.Flags().Float64Var(&mineMinconf, "minconf", 0.8, "minimum confidence, in (0, 1]")
	mineCmd.Flags().Float64Var(&mineMinprob, "minprob", 0.9, "minimum rule probability, in [0, 1]")
	mineCmd.Flags().StringVar(&minePreset, "preset", "", "named threshold preset (overrides threshold flags)")

	RootCmd.AddCommand(mineCmd)
}

func runMine(cmd *cobra.Command, args []string) error {
	th, err := resolveThresholds(minePreset, mineMinsup, mineMinconf, mineMinprob)
	if err != nil {
		return err
	}

	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	total := len(mining.EnumeratePairs(ds.Columns())) * 2
	bar := output.NewProgress(total, "Evaluating rules")

	rules, err := mining.Mine(ds, th, mining.WithProgress(func(done, _ int) {
		bar.SetCurrent(done)
	}))
	if err != nil {
		return err
	}
	bar.Finish()

	fmt.Print(output.RenderRuleTable(rules))

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := recordRun(st, store.KindMine, args[0], ds, th, rules, nil)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	fmt.Printf("\n%d of %d candidate rules kept. Saved as run %d.\n", len(rules), total, id)
	return nil
}
