package tabular

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/jackc/pgx/v5"
)

func (s *Source) readPostgres(ctx context.Context, dsn string) (*domain.Table, error) {
	query, err := s.buildQuery()
	if err != nil {
		return nil, domain.NewError(domain.KindEngineExecution, err)
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, domain.Errorf(domain.KindEngineExecution, "connecting to postgres: %v", err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, domain.Errorf(domain.KindEngineExecution, "querying postgres: %v", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}

	var data [][]string
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, domain.Errorf(domain.KindEngineExecution, "reading postgres row: %v", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = renderCell(v)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Errorf(domain.KindEngineExecution, "reading postgres rows: %v", err)
	}

	return domain.NewTableWithNullTokens(columns, data, s.nullValues), nil
}

func (s *Source) buildQuery() (string, error) {
	if s.query != "" {
		return s.query, nil
	}
	if s.table != "" {
		return "SELECT * FROM " + pgx.Identifier{s.table}.Sanitize(), nil
	}
	return "", fmt.Errorf("postgres refs need --table or --query")
}

// renderCell turns a database value into the raw text form the
// evaluators expect. SQL NULL becomes the empty string, which the
// default NA token set treats as missing.
func renderCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case []byte:
		return string(c)
	case bool:
		return strconv.FormatBool(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case int32:
		return strconv.FormatInt(int64(c), 10)
	case int16:
		return strconv.FormatInt(int64(c), 10)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32)
	case time.Time:
		return c.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", c)
	}
}
