package app

import (
	"fmt"

	"github.com/blackwell-systems/kcmine/internal/config"
	"github.com/blackwell-systems/kcmine/internal/dataset"
	"github.com/blackwell-systems/kcmine/internal/links"
	"github.com/blackwell-systems/kcmine/internal/mining"
	"github.com/blackwell-systems/kcmine/internal/store"
)

// openStore opens the history database and makes sure the schema
// exists. Callers own the returned store and must Close it.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	st, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}

	return st, nil
}

// resolveThresholds builds the effective thresholds for a command: the
// named preset if --preset was given, otherwise the flag values.
func resolveThresholds(preset string, minsup int, minconf, minprob float64) (mining.Thresholds, error) {
	if preset != "" {
		dir, err := config.Dir()
		if err != nil {
			return mining.Thresholds{}, fmt.Errorf("failed to locate config directory: %w", err)
		}
		presets, err := config.LoadPresets(dir)
		if err != nil {
			return mining.Thresholds{}, fmt.Errorf("failed to load presets: %w", err)
		}
		th, ok := presets.Resolve(preset)
		if !ok {
			return mining.Thresholds{}, fmt.Errorf("unknown preset %q", preset)
		}
		return th, nil
	}

	th := mining.Thresholds{
		MinSupport:     minsup,
		MinConfidence:  minconf,
		MinProbability: minprob,
	}
	return th, th.Validate()
}

// recordRun persists one invocation and its results, returning the run
// ID for display.
func recordRun(st *store.Store, kind, datasetPath string, ds *dataset.Dataset,
	th mining.Thresholds, rules []mining.ScoredRule, found []links.Link) (int64, error) {

	run := &store.Run{
		Kind:        kind,
		DatasetPath: datasetPath,
		RecordCount: ds.NumRecords(),
		ColumnCount: ds.NumColumns(),
		MinSupport:  th.MinSupport,
		MinConf:     th.MinConfidence,
		MinProb:     th.MinProbability,
	}

	ruleRows := make([]store.RuleRow, len(rules))
	for i, r := range rules {
		ruleRows[i] = store.RuleRow{
			Antecedent:  r.Antecedent,
			Consequent:  r.Consequent,
			Probability: r.Probability,
		}
	}

	linkRows := make([]store.LinkRow, len(found))
	for i, l := range found {
		linkRows[i] = store.LinkRow{
			Prereq:    l.Prereq,
			Dependent: l.Dependent,
			Forward:   l.Forward,
			Backward:  l.Backward,
		}
	}

	return st.SaveRun(run, ruleRows, linkRows)
}
