package store

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL,
    kind TEXT NOT NULL,
    dataset_path TEXT NOT NULL,
    record_count INTEGER NOT NULL,
    column_count INTEGER NOT NULL,
    minsup INTEGER NOT NULL,
    minconf REAL NOT NULL,
    minprob REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS rules (
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    antecedent TEXT NOT NULL,
    consequent TEXT NOT NULL,
    probability REAL NOT NULL,
    PRIMARY KEY (run_id, position),
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS links (
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    prereq TEXT NOT NULL,
    dependent TEXT NOT NULL,
    forward_prob REAL NOT NULL,
    backward_prob REAL NOT NULL,
    PRIMARY KEY (run_id, position),
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
CREATE INDEX IF NOT EXISTS idx_rules_run ON rules(run_id);
CREATE INDEX IF NOT EXISTS idx_links_run ON links(run_id);
`
