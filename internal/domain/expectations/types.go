package expectations

import (
	"fmt"
	"strconv"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// typeCheckers maps logical type names to cell predicates. Cells are raw
// text, so "being of a type" means parsing as that type.
var typeCheckers = map[string]func(cell string) bool{
	"int": func(cell string) bool {
		_, err := strconv.ParseInt(cell, 10, 64)
		return err == nil
	},
	"float": func(cell string) bool {
		_, ok := parseNumber(cell)
		return ok
	},
	"str":    func(string) bool { return true },
	"string": func(string) bool { return true },
	"bool": func(cell string) bool {
		_, err := strconv.ParseBool(cell)
		return err == nil
	},
	"datetime": func(cell string) bool {
		_, ok := domain.ParseDatetime(cell)
		return ok
	},
}

func typeChecker(name string) (func(string) bool, error) {
	check, ok := typeCheckers[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q in type kwarg", name)
	}
	return check, nil
}

func evalValuesOfType(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	name, ok, err := kw.str("type_")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, &evalError{msg: "kwarg \"type_\" is required"}
	}
	check, err := typeChecker(name)
	if err != nil {
		return nil, false, err
	}
	return evalColumnMap(t, kw, func(cell string) bool {
		return !check(cell)
	})
}

func evalValuesInTypeList(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	names, err := kw.stringList("type_list")
	if err != nil {
		return nil, false, err
	}
	checks := make([]func(string) bool, len(names))
	for i, name := range names {
		check, err := typeChecker(name)
		if err != nil {
			return nil, false, err
		}
		checks[i] = check
	}
	return evalColumnMap(t, kw, func(cell string) bool {
		for _, check := range checks {
			if check(cell) {
				return false
			}
		}
		return true
	})
}
