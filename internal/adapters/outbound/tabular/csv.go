package tabular

import (
	"encoding/csv"
	"errors"
	"os"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

func (s *Source) readCSV(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.Errorf(domain.KindInputNotFound, "data file not found: %s", path)
		}
		return nil, domain.NewError(domain.KindEngineExecution, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Every record must match the header's field count.
	r.FieldsPerRecord = 0
	records, err := r.ReadAll()
	if err != nil {
		return nil, domain.Errorf(domain.KindEngineExecution, "parsing %s: %v", path, err)
	}
	if len(records) == 0 {
		return nil, domain.Errorf(domain.KindEngineExecution, "data file %s is empty, a header row is required", path)
	}

	return domain.NewTableWithNullTokens(records[0], records[1:], s.nullValues), nil
}
