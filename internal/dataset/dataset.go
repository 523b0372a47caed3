// Package dataset holds the tabular mastery data that the miner consumes.
//
// A dataset is a fixed-schema table: one column per knowledge component
// (KC), one row per observation. Every cell is a probability in [0, 1]
// that the latent binary mastery variable for that KC equals 1 in that
// observation. Datasets are validated once at construction and never
// mutated afterwards.
package dataset

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a cell value falls outside [0, 1].
var ErrOutOfRange = errors.New("mastery value outside [0, 1]")

// ErrBadSchema is returned when the column schema is malformed
// (empty or duplicate column names, ragged rows).
var ErrBadSchema = errors.New("malformed dataset schema")

// Dataset is an immutable table of mastery probabilities.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]float64
}

// New builds a Dataset from a column schema and row-major values.
// Column names must be non-empty and unique, every row must have one
// value per column, and every value must lie in [0, 1]. A dataset with
// zero rows is valid.
func New(columns []string, rows [][]float64) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrBadSchema)
	}

	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("%w: empty name for column %d", ErrBadSchema, i+1)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrBadSchema, name)
		}
		index[name] = i
	}

	for r, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ErrBadSchema, r+1, len(row), len(columns))
		}
		for c, v := range row {
			if v < 0 || v > 1 {
				return nil, fmt.Errorf("%w: row %d column %q has value %v",
					ErrOutOfRange, r+1, columns[c], v)
			}
		}
	}

	// Copy so later mutation of the caller's slices cannot leak in.
	cols := make([]string, len(columns))
	copy(cols, columns)

	data := make([][]float64, len(rows))
	for r, row := range rows {
		data[r] = make([]float64, len(row))
		copy(data[r], row)
	}

	return &Dataset{columns: cols, index: index, rows: data}, nil
}

// Columns returns the KC identifiers in schema order.
func (d *Dataset) Columns() []string {
	cols := make([]string, len(d.columns))
	copy(cols, d.columns)
	return cols
}

// NumRecords returns the number of observations.
func (d *Dataset) NumRecords() int {
	return len(d.rows)
}

// NumColumns returns the number of KCs.
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// ColumnIndex returns the position of the named column in the schema,
// or false if the column does not exist.
func (d *Dataset) ColumnIndex(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Value returns the mastery probability at the given row and column index.
func (d *Dataset) Value(row, col int) float64 {
	return d.rows[row][col]
}

// Complement returns a new dataset with every cell replaced by 1-v.
// Mining the complement discovers rules over the mastery=0 events,
// which the prerequisite protocol intersects with the positive run.
func (d *Dataset) Complement() *Dataset {
	rows := make([][]float64, len(d.rows))
	for r, row := range d.rows {
		rows[r] = make([]float64, len(row))
		for c, v := range row {
			rows[r][c] = 1 - v
		}
	}
	// Schema already validated; reuse it directly.
	cols := make([]string, len(d.columns))
	copy(cols, d.columns)
	return &Dataset{columns: cols, index: d.index, rows: rows}
}
