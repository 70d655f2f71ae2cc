package domain

import (
	"strings"
	"time"
)

// Default registration names for the single-batch ceremony. They are
// recorded in result metadata so reports stay recognizable to tooling
// built around the engine's naming scheme.
const (
	DefaultDataSourceName = "default_datasource"
	DefaultAssetName      = "input_asset"
	DefaultBatchDefName   = "default_batch_definition"
)

// defaultNullTokens mirrors the NA markers the engine's CSV ingestion
// treats as missing values.
var defaultNullTokens = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "#N/A"}

// DefaultNullTokens returns a copy of the built-in NA token set.
func DefaultNullTokens() []string {
	out := make([]string, len(defaultNullTokens))
	copy(out, defaultNullTokens)
	return out
}

// Table is an in-memory batch of tabular data: an ordered header plus
// row-major text cells. Cells keep their raw CSV text; interpretation
// (numbers, missing values) happens at evaluation time.
type Table struct {
	Columns []string
	Rows    [][]string

	nullTokens map[string]bool
}

// NewTable builds a Table using the default NA token set.
func NewTable(columns []string, rows [][]string) *Table {
	return NewTableWithNullTokens(columns, rows, nil)
}

// NewTableWithNullTokens builds a Table with a custom NA token set;
// nil tokens means the default set.
func NewTableWithNullTokens(columns []string, rows [][]string, tokens []string) *Table {
	if tokens == nil {
		tokens = defaultNullTokens
	}
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return &Table{Columns: columns, Rows: rows, nullTokens: set}
}

func (t *Table) RowCount() int    { return len(t.Rows) }
func (t *Table) ColumnCount() int { return len(t.Columns) }

// ColumnIndex returns the position of a named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// Column returns the cells of a named column in row order.
func (t *Table) Column(name string) ([]string, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			out = append(out, row[idx])
		} else {
			out = append(out, "")
		}
	}
	return out, true
}

// IsNull reports whether a cell counts as missing under the table's
// NA token set.
func (t *Table) IsNull(cell string) bool {
	if t.nullTokens == nil {
		for _, tok := range defaultNullTokens {
			if cell == tok {
				return true
			}
		}
		return false
	}
	return t.nullTokens[cell]
}

// IsDatabaseRef reports whether a data ref addresses a database rather
// than a file on disk.
func IsDatabaseRef(ref string) bool {
	return strings.HasPrefix(ref, "postgres://") || strings.HasPrefix(ref, "postgresql://")
}

// datetimeLayouts are the formats cells are recognized as datetimes in,
// tried in order.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ParseDatetime interprets a cell as a datetime in one of the
// recognized layouts.
func ParseDatetime(cell string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if ts, err := time.Parse(layout, cell); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Batch couples a Table with the identity it was registered under.
type Batch struct {
	Table      *Table
	DataSource string
	Asset      string
	BatchDef   string
	DataRef    string
}

// NewBatch registers a table under the default single-batch names.
func NewBatch(table *Table, dataRef string) *Batch {
	return &Batch{
		Table:      table,
		DataSource: DefaultDataSourceName,
		Asset:      DefaultAssetName,
		BatchDef:   DefaultBatchDefName,
		DataRef:    dataRef,
	}
}

// ID returns the batch identifier recorded in reports.
func (b *Batch) ID() string { return b.DataSource + "-" + b.Asset }
