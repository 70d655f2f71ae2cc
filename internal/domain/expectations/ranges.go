package expectations

import (
	"unicode/utf8"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// evalValuesBetween checks each value numerically against the bounds.
// Cells that do not parse as numbers cannot satisfy a numeric bound and
// count as unexpected.
func evalValuesBetween(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	b, err := kw.bounds()
	if err != nil {
		return nil, false, err
	}
	return evalColumnMap(t, kw, func(cell string) bool {
		f, ok := parseNumber(cell)
		return !ok || !b.contains(f)
	})
}

// evalValueLengthsBetween bounds the character length of each value.
func evalValueLengthsBetween(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	b, err := kw.bounds()
	if err != nil {
		return nil, false, err
	}
	return evalColumnMap(t, kw, func(cell string) bool {
		return !b.contains(float64(utf8.RuneCountInString(cell)))
	})
}
