package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Run operations

// SaveRun inserts a run together with its rules and links in one
// transaction and returns the new run ID. Either slice may be nil.
func (s *Store) SaveRun(run *Run, rules []RuleRow, links []LinkRow) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := tx.Exec(`
		INSERT INTO runs (created_at, kind, dataset_path, record_count, column_count, minsup, minconf, minprob)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		createdAt.Format(time.RFC3339),
		run.Kind,
		run.DatasetPath,
		run.RecordCount,
		run.ColumnCount,
		run.MinSupport,
		run.MinConf,
		run.MinProb,
	)
	if err != nil {
		return 0, wrapSchemaErr(fmt.Errorf("failed to insert run: %w", err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	for i, r := range rules {
		_, err := tx.Exec(`
			INSERT INTO rules (run_id, position, antecedent, consequent, probability)
			VALUES (?, ?, ?, ?, ?)
		`, id, i, r.Antecedent, r.Consequent, r.Probability)
		if err != nil {
			return 0, fmt.Errorf("failed to insert rule %s => %s: %w", r.Antecedent, r.Consequent, err)
		}
	}

	for i, l := range links {
		_, err := tx.Exec(`
			INSERT INTO links (run_id, position, prereq, dependent, forward_prob, backward_prob)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, i, l.Prereq, l.Dependent, l.Forward, l.Backward)
		if err != nil {
			return 0, fmt.Errorf("failed to insert link %s -> %s: %w", l.Prereq, l.Dependent, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return id, nil
}

// scanRun reads one run row; the caller supplies the row scanner.
func scanRun(scan func(dest ...any) error) (*Run, error) {
	var run Run
	var createdAt string

	err := scan(
		&run.ID,
		&createdAt,
		&run.Kind,
		&run.DatasetPath,
		&run.RecordCount,
		&run.ColumnCount,
		&run.MinSupport,
		&run.MinConf,
		&run.MinProb,
	)
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &run, nil
}

const runColumns = "id, created_at, kind, dataset_path, record_count, column_count, minsup, minconf, minprob"

// GetRun retrieves a run by ID.
func (s *Store) GetRun(id int64) (*Run, error) {
	row := s.db.QueryRow("SELECT "+runColumns+" FROM runs WHERE id = ?", id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return nil, wrapSchemaErr(fmt.Errorf("failed to get run %d: %w", id, err))
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first. A limit of 0
// returns all runs.
func (s *Store) ListRuns(limit int) ([]*Run, error) {
	query := "SELECT " + runColumns + " FROM runs ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, wrapSchemaErr(fmt.Errorf("failed to list runs: %w", err))
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// LatestRun returns the most recent run of the given kind, or nil if
// none exists.
func (s *Store) LatestRun(kind string) (*Run, error) {
	row := s.db.QueryRow("SELECT "+runColumns+" FROM runs WHERE kind = ? ORDER BY id DESC LIMIT 1", kind)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapSchemaErr(fmt.Errorf("failed to get latest %s run: %w", kind, err))
	}
	return run, nil
}

// Rule and link operations

// GetRules returns the stored rules of a run in output order.
func (s *Store) GetRules(runID int64) ([]RuleRow, error) {
	rows, err := s.db.Query(`
		SELECT antecedent, consequent, probability
		FROM rules
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, wrapSchemaErr(fmt.Errorf("failed to get rules for run %d: %w", runID, err))
	}
	defer rows.Close()

	var rules []RuleRow
	for rows.Next() {
		var r RuleRow
		if err := rows.Scan(&r.Antecedent, &r.Consequent, &r.Probability); err != nil {
			return nil, fmt.Errorf("failed to scan rule row: %w", err)
		}
		rules = append(rules, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rules: %w", err)
	}

	return rules, nil
}

// GetLinks returns the stored prerequisite links of a run in output order.
func (s *Store) GetLinks(runID int64) ([]LinkRow, error) {
	rows, err := s.db.Query(`
		SELECT prereq, dependent, forward_prob, backward_prob
		FROM links
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, wrapSchemaErr(fmt.Errorf("failed to get links for run %d: %w", runID, err))
	}
	defer rows.Close()

	var links []LinkRow
	for rows.Next() {
		var l LinkRow
		if err := rows.Scan(&l.Prereq, &l.Dependent, &l.Forward, &l.Backward); err != nil {
			return nil, fmt.Errorf("failed to scan link row: %w", err)
		}
		links = append(links, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating links: %w", err)
	}

	return links, nil
}

// DeleteRun removes a run and, via cascade, its rules and links.
func (s *Store) DeleteRun(id int64) error {
	result, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return wrapSchemaErr(fmt.Errorf("failed to delete run %d: %w", id, err))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %d not found", id)
	}
	return nil
}
