package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/kcmine/internal/dataset"
	"github.com/blackwell-systems/kcmine/internal/links"
	"github.com/blackwell-systems/kcmine/internal/output"
	"github.com/blackwell-systems/kcmine/internal/store"
	"github.com/blackwell-systems/kcmine/internal/watcher"
)

var (
	watchMinsup   int
	watchMinconf  float64
	watchMinprob  float64
	watchPreset   string
	watchDebounce time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch <dataset.csv>",
		Short: "Re-discover prerequisite links whenever the dataset changes",
		Long: `Watch a mastery dataset and rerun prerequisite link discovery each
time the file is written. Useful while an export pipeline is still
filling the file in. Each rediscovery is recorded in the run history.

Stop with Ctrl-C.`,
		Example: `  kcmine watch mastery.csv --minsup 150 --minconf 0.8 --minprob 0.9 --debounce 2s`,
		Args:    cobra.ExactArgs(1),
		RunE:    runWatch,
	}
)

func init() {
	watchCmd.Flags().IntVar(&watchMinsup, "minsup", 2, "minimum support count")
	watchCmd.Flags().Float64Var(&watchMinconf, "minconf", 0.8, "minimum confidence, in (0, 1]")
	watchCmd.Flags().Float64Var(&watchMinprob, "minprob", 0.9, "minimum rule probability, in [0, 1]")
	watchCmd.Flags().StringVar(&watchPreset, "preset", "", "named threshold preset (overrides threshold flags)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 2*time.Second, "settle time after a file change")

	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	th, err := resolveThresholds(watchPreset, watchMinsup, watchMinconf, watchMinprob)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	path := args[0]
	var prev []links.Link
	first := true
	rediscover := func() {
		ds, err := dataset.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reload failed: %v\n", err)
			return
		}

		found, err := links.Discover(ds, th)
		if err != nil {
			fmt.Fprintf(os.Stderr, "discovery failed: %v\n", err)
			return
		}

		fmt.Printf("\n[%s] %d links%s\n", time.Now().Format("15:04:05"),
			len(found), describeLinkChange(prev, found, first))
		fmt.Print(output.RenderLinkTable(found))
		prev = found
		first = false

		id, err := recordRun(st, store.KindWatch, path, ds, th, nil, found)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to record run: %v\n", err)
			return
		}
		fmt.Printf("Saved as run %d.\n", id)
	}

	// Run once up front so the watcher starts from a known baseline.
	rediscover()

	w, err := watcher.New(path, watchDebounce, func(string) { rediscover() })
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Printf("\nWatching %s (debounce %s). Press Ctrl-C to stop.\n", path, watchDebounce)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nStopping.")
	return nil
}

// describeLinkChange summarizes how the link set moved since the last
// pass, comparing prereq/dependent identity only.
func describeLinkChange(prev, next []links.Link, first bool) string {
	if first {
		return ""
	}

	old := make(map[[2]string]bool, len(prev))
	for _, l := range prev {
		old[[2]string{l.Prereq, l.Dependent}] = true
	}

	var added, kept int
	for _, l := range next {
		if old[[2]string{l.Prereq, l.Dependent}] {
			kept++
		} else {
			added++
		}
	}
	removed := len(prev) - kept

	if added == 0 && removed == 0 {
		return " (unchanged)"
	}
	return fmt.Sprintf(" (+%d -%d)", added, removed)
}
