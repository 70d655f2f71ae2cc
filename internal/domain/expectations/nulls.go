package expectations

import "github.com/Tac0Dude/data-quality-cli/internal/domain"

// Null rules evaluate every cell: missingness is the condition under
// test, so nothing is skipped and the payload carries no missing counts.
func evalNullRule(t *domain.Table, kw kwargs, wantNull bool) (map[string]any, bool, error) {
	col, err := kw.column()
	if err != nil {
		return nil, false, err
	}
	mostly, err := kw.mostly()
	if err != nil {
		return nil, false, err
	}
	cells, err := columnCells(t, col)
	if err != nil {
		return nil, false, err
	}

	unexpectedCount := 0
	var partial []any
	for _, cell := range cells {
		if t.IsNull(cell) == wantNull {
			continue
		}
		unexpectedCount++
		if len(partial) < partialListLimit {
			partial = append(partial, cell)
		}
	}

	elementCount := len(cells)
	detail := map[string]any{
		"element_count":           elementCount,
		"unexpected_count":        unexpectedCount,
		"unexpected_percent":      percent(unexpectedCount, elementCount),
		"partial_unexpected_list": partialList(partial),
	}
	success := true
	if elementCount > 0 {
		success = float64(elementCount-unexpectedCount)/float64(elementCount) >= mostly
	}
	return detail, success, nil
}

func evalValuesNotNull(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	return evalNullRule(t, kw, false)
}

func evalValuesNull(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	return evalNullRule(t, kw, true)
}
