package expectations

import (
	"sort"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// Table-shape rules look at the header and row count, never at cell
// values, so they have no mostly semantics.

func evalColumnToExist(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	col, err := kw.column()
	if err != nil {
		return nil, false, err
	}
	return nil, t.HasColumn(col), nil
}

func evalColumnsMatchOrderedList(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	want, err := kw.stringList("column_list")
	if err != nil {
		return nil, false, err
	}
	detail := map[string]any{"observed_value": t.Columns}
	if len(want) != len(t.Columns) {
		return detail, false, nil
	}
	for i, name := range want {
		if t.Columns[i] != name {
			return detail, false, nil
		}
	}
	return detail, true, nil
}

func evalColumnsMatchSet(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	want, err := kw.stringList("column_set")
	if err != nil {
		return nil, false, err
	}
	exact := kw.booleanDefault("exact_match", true)

	wantSet := make(map[string]bool, len(want))
	for _, name := range want {
		wantSet[name] = true
	}
	haveSet := make(map[string]bool, len(t.Columns))
	for _, name := range t.Columns {
		haveSet[name] = true
	}

	var missing, extra []string
	for _, name := range want {
		if !haveSet[name] {
			missing = append(missing, name)
		}
	}
	for _, name := range t.Columns {
		if !wantSet[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)

	detail := map[string]any{"observed_value": t.Columns}
	if len(missing) > 0 {
		detail["missing"] = missing
	}
	if len(extra) > 0 {
		detail["unexpected"] = extra
	}

	success := len(missing) == 0
	if exact {
		success = success && len(extra) == 0
	}
	return detail, success, nil
}

func evalColumnCountEqual(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	want, ok, err := kw.integer("value")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, &evalError{msg: "kwarg \"value\" is required"}
	}
	count := t.ColumnCount()
	return map[string]any{"observed_value": count}, count == want, nil
}

func evalColumnCountBetween(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	b, err := kw.bounds()
	if err != nil {
		return nil, false, err
	}
	count := t.ColumnCount()
	return map[string]any{"observed_value": count}, b.contains(float64(count)), nil
}

func evalRowCountEqual(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	want, ok, err := kw.integer("value")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, &evalError{msg: "kwarg \"value\" is required"}
	}
	count := t.RowCount()
	return map[string]any{"observed_value": count}, count == want, nil
}

func evalRowCountBetween(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	b, err := kw.bounds()
	if err != nil {
		return nil, false, err
	}
	count := t.RowCount()
	return map[string]any{"observed_value": count}, b.contains(float64(count)), nil
}
