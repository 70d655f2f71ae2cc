// Package tabular reads batches of tabular data from CSV files or
// Postgres databases, implementing domain.TableSource.
package tabular

import (
	"context"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// Options configures a Source.
type Options struct {
	// NullValues overrides the NA token set; nil means the default.
	NullValues []string
	// Table names a Postgres table to read in full. Ignored for file refs.
	Table string
	// Query is a verbatim SQL query to read. Takes precedence over Table.
	Query string
}

// Source implements domain.TableSource for file and database refs.
type Source struct {
	nullValues []string
	table      string
	query      string
}

// New creates a Source.
func New(opts Options) *Source {
	return &Source{
		nullValues: opts.NullValues,
		table:      opts.Table,
		query:      opts.Query,
	}
}

// Read loads the batch behind ref.
func (s *Source) Read(ctx context.Context, ref string) (*domain.Table, error) {
	if domain.IsDatabaseRef(ref) {
		return s.readPostgres(ctx, ref)
	}
	return s.readCSV(ref)
}
