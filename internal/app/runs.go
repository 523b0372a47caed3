package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/kcmine/internal/links"
	"github.com/blackwell-systems/kcmine/internal/mining"
	"github.com/blackwell-systems/kcmine/internal/output"
	"github.com/blackwell-systems/kcmine/internal/store"
)

var (
	runsID     int64
	runsLimit  int
	runsDelete int64

	runsCmd = &cobra.Command{
		Use:   "runs",
		Short: "List or inspect recorded runs",
		Long: `List recorded runs, newest first, or show the stored results of one
run with --id. Runs are recorded by the mine, rank, links, and watch
commands.`,
		Example: `  # Most recent runs
  kcmine runs --limit 10

  # Full results of run 3
  kcmine runs --id 3

  # Delete run 3 and its results
  kcmine runs --delete 3`,
		Args: cobra.NoArgs,
		RunE: runRuns,
	}
)

func init() {
	runsCmd.Flags().Int64Var(&runsID, "id", 0, "show the stored results of one run")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum runs to list (0 = all)")
	runsCmd.Flags().Int64Var(&runsDelete, "delete", 0, "delete one run and its results")

	RootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	if runsID != 0 && runsDelete != 0 {
		return fmt.Errorf("--id and --delete are mutually exclusive")
	}
	if runsLimit < 0 {
		return fmt.Errorf("invalid --limit: %d (must be non-negative)", runsLimit)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	switch {
	case runsDelete != 0:
		if err := st.DeleteRun(runsDelete); err != nil {
			return err
		}
		fmt.Printf("Deleted run %d.\n", runsDelete)
		return nil
	case runsID != 0:
		return showRun(st, runsID)
	default:
		runs, err := st.ListRuns(runsLimit)
		if err != nil {
			return err
		}
		fmt.Print(output.RenderRunTable(runs))
		return nil
	}
}

// showRun prints one run's parameters and stored results.
func showRun(st *store.Store, id int64) error {
	run, err := st.GetRun(id)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d  (%s)\n", run.ID, run.Kind)
	fmt.Printf("  dataset:    %s  (%d records, %d components)\n",
		run.DatasetPath, run.RecordCount, run.ColumnCount)
	fmt.Printf("  thresholds: minsup=%d minconf=%.2f minprob=%.2f\n",
		run.MinSupport, run.MinConf, run.MinProb)
	fmt.Printf("  created:    %s\n\n", run.CreatedAt.Format("2006-01-02 15:04:05"))

	rules, err := st.GetRules(id)
	if err != nil {
		return err
	}
	if len(rules) > 0 {
		scored := make([]mining.ScoredRule, len(rules))
		for i, r := range rules {
			scored[i] = mining.ScoredRule{
				Rule:        mining.Rule{Antecedent: r.Antecedent, Consequent: r.Consequent},
				Probability: r.Probability,
			}
		}
		fmt.Print(output.RenderRuleTable(scored))
	}

	stored, err := st.GetLinks(id)
	if err != nil {
		return err
	}
	if len(stored) > 0 {
		found := make([]links.Link, len(stored))
		for i, l := range stored {
			found[i] = links.Link{
				Prereq:    l.Prereq,
				Dependent: l.Dependent,
				Forward:   l.Forward,
				Backward:  l.Backward,
			}
		}
		fmt.Print(output.RenderLinkTable(found))
	}

	if len(rules) == 0 && len(stored) == 0 {
		fmt.Println("No stored results.")
	}
	return nil
}
