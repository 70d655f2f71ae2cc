package expectations

import "github.com/Tac0Dude/data-quality-cli/internal/domain"

// evalValuesUnique flags every occurrence of a duplicated value, so two
// rows sharing a value both count as unexpected.
func evalValuesUnique(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	counts := map[string]int{}
	if col, err := kw.column(); err == nil {
		if cells, ok := t.Column(col); ok {
			for _, cell := range cells {
				if !t.IsNull(cell) {
					counts[cell]++
				}
			}
		}
	}
	return evalColumnMap(t, kw, func(cell string) bool {
		return counts[cell] > 1
	})
}
