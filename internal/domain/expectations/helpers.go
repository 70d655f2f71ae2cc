package expectations

import (
	"math"
	"sort"
	"strconv"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// partialListLimit caps partial_unexpected_list in result payloads.
const partialListLimit = 20

// columnCells returns the named column or an evaluation error.
func columnCells(t *domain.Table, name string) ([]string, error) {
	cells, ok := t.Column(name)
	if !ok {
		return nil, errColumnNotFound(name)
	}
	return cells, nil
}

func errColumnNotFound(name string) error {
	return &evalError{msg: "column \"" + name + "\" not found in batch"}
}

type evalError struct{ msg string }

func (e *evalError) Error() string { return e.msg }

// evalColumnMap runs a per-cell predicate over the non-missing values of a
// column and assembles the standard column-map payload. unexpected returns
// true for cells that violate the rule. Success honors mostly: the ratio
// of conforming considered values must reach the threshold. A column with
// no considered values passes vacuously.
func evalColumnMap(t *domain.Table, kw kwargs, unexpected func(cell string) bool) (map[string]any, bool, error) {
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

	elementCount := len(cells)
	missingCount := 0
	unexpectedCount := 0
	var partial []any

	for _, cell := range cells {
		if t.IsNull(cell) {
			missingCount++
			continue
		}
		if unexpected(cell) {
			unexpectedCount++
			if len(partial) < partialListLimit {
				partial = append(partial, cell)
			}
		}
	}

	considered := elementCount - missingCount
	detail := map[string]any{
		"element_count":           elementCount,
		"missing_count":           missingCount,
		"missing_percent":         percent(missingCount, elementCount),
		"unexpected_count":        unexpectedCount,
		"unexpected_percent":      percent(unexpectedCount, considered),
		"partial_unexpected_list": partialList(partial),
	}

	success := true
	if considered > 0 {
		success = float64(considered-unexpectedCount)/float64(considered) >= mostly
	}
	return detail, success, nil
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func partialList(items []any) []any {
	if items == nil {
		return []any{}
	}
	return items
}

// parseNumber interprets a cell as a float.
func parseNumber(cell string) (float64, bool) {
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// numericColumn parses the non-missing cells of a column, erroring on the
// first cell that is not a number. Aggregates need clean numeric input;
// per-row rules tolerate junk by counting it as unexpected instead.
func numericColumn(t *domain.Table, name string) ([]float64, error) {
	cells, err := columnCells(t, name)
	if err != nil {
		return nil, err
	}
	var out []float64
	for _, cell := range cells {
		if t.IsNull(cell) {
			continue
		}
		f, ok := parseNumber(cell)
		if !ok {
			return nil, &evalError{msg: "column \"" + name + "\" has non-numeric value " + strconv.Quote(cell)}
		}
		out = append(out, f)
	}
	return out, nil
}

// cellMatches compares a raw cell against a value-set item, treating
// numerically equal representations ("5" and 5.0) as the same value.
func cellMatches(cell string, item any) bool {
	switch v := item.(type) {
	case string:
		if cell == v {
			return true
		}
		cf, cok := parseNumber(cell)
		vf, vok := parseNumber(v)
		return cok && vok && cf == vf
	default:
		f, err := toFloat(v)
		if err != nil {
			return false
		}
		cf, ok := parseNumber(cell)
		return ok && cf == f
	}
}

func cellInSet(cell string, set []any) bool {
	for _, item := range set {
		if cellMatches(cell, item) {
			return true
		}
	}
	return false
}

// distinctValues returns the distinct non-missing cells in first-seen
// order plus the number of considered cells.
func distinctValues(t *domain.Table, cells []string) ([]string, int) {
	seen := make(map[string]bool)
	var out []string
	considered := 0
	for _, cell := range cells {
		if t.IsNull(cell) {
			continue
		}
		considered++
		if !seen[cell] {
			seen[cell] = true
			out = append(out, cell)
		}
	}
	return out, considered
}

func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
