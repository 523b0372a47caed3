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
	rankMinsup  int
	rankMinconf float64
	rankTop     int

	rankCmd = &cobra.Command{
		Use:   "rank <dataset.csv>",
		Short: "Rank every candidate rule by probability",
		Long: `Evaluate every oriented pair of knowledge components and rank the
rules by the probability that they meet the support and confidence
thresholds, highest first. No probability cutoff is applied; use
'kcmine mine' to filter instead.

Equal probabilities keep their discovery order.`,
		Example: `  # Full ranking
  kcmine rank mastery.csv --minsup 150 --minconf 0.8

  # Only the ten strongest rules
  kcmine rank mastery.csv --minsup 150 --minconf 0.8 --top 10`,
		Args: cobra.ExactArgs(1),
		RunE: runRank,
	}
)

func init() {
	rankCmd.Flags().IntVar(&rankMinsup, "minsup", 2, "minimum support count")
	rankCmd.Flags().Float64Var(&rankMinconf, "minconf", 0.8, "minimum confidence, in (0, 1]")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "show only the N strongest rules (0 = all)")

	RootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	if rankTop < 0 {
		return fmt.Errorf("invalid --top: %d (must be non-negative)", rankTop)
	}

	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	total := len(mining.EnumeratePairs(ds.Columns())) * 2
	bar := output.NewProgress(total, "Evaluating rules")

	ranked, err := mining.Rank(ds, rankMinsup, rankMinconf, mining.WithProgress(func(done, _ int) {
		bar.SetCurrent(done)
	}))
	if err != nil {
		return err
	}
	bar.Finish()

	shown := ranked
	if rankTop > 0 && rankTop < len(shown) {
		shown = shown[:rankTop]
	}

	fmt.Print(output.RenderRankTable(shown))
	fmt.Println()
	fmt.Print(output.RenderSummary(ranked))

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	th := mining.Thresholds{MinSupport: rankMinsup, MinConfidence: rankMinconf}
	id, err := recordRun(st, store.KindRank, args[0], ds, th, ranked, nil)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	fmt.Printf("Saved as run %d.\n", id)
	return nil
}
