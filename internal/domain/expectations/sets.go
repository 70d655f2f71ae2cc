package expectations

import "github.com/Tac0Dude/data-quality-cli/internal/domain"

func evalValuesInSet(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	set, ok, err := kw.list("value_set")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, &evalError{msg: "kwarg \"value_set\" is required"}
	}
	return evalColumnMap(t, kw, func(cell string) bool {
		return !cellInSet(cell, set)
	})
}

func evalValuesNotInSet(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	set, ok, err := kw.list("value_set")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, &evalError{msg: "kwarg \"value_set\" is required"}
	}
	return evalColumnMap(t, kw, func(cell string) bool {
		return cellInSet(cell, set)
	})
}
