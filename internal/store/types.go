package store

import "time"

// Run kinds as stored in the runs.kind column.
const (
	KindMine  = "mine"
	KindRank  = "rank"
	KindLinks = "links"
	KindWatch = "watch"
)

// Run records one invocation of the miner, ranker, or link discovery,
// together with the thresholds and dataset shape it ran against.
type Run struct {
	ID          int64
	CreatedAt   time.Time
	Kind        string
	DatasetPath string
	RecordCount int
	ColumnCount int
	MinSupport  int
	MinConf     float64
	MinProb     float64
}

// RuleRow is one stored association rule of a run, in output order.
type RuleRow struct {
	Antecedent  string
	Consequent  string
	Probability float64
}

// LinkRow is one stored prerequisite link of a run, in output order.
type LinkRow struct {
	Prereq    string
	Dependent string
	Forward   float64
	Backward  float64
}
