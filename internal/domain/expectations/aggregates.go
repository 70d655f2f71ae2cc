package expectations

import (
	"math"
	"sort"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// aggregateBetween builds an evaluator that reduces a numeric column with
// stat and checks the observed value against the bounds kwargs. Columns
// containing non-numeric cells raise, aggregates need clean input.
func aggregateBetween(stat func(values []float64) (float64, error)) evalFunc {
	return func(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
		col, err := kw.column()
		if err != nil {
			return nil, false, err
		}
		b, err := kw.bounds()
		if err != nil {
			return nil, false, err
		}
		values, err := numericColumn(t, col)
		if err != nil {
			return nil, false, err
		}
		observed, err := stat(values)
		if err != nil {
			return nil, false, err
		}
		return map[string]any{"observed_value": observed}, b.contains(observed), nil
	}
}

func meanOf(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, &evalError{msg: "cannot compute mean of an empty column"}
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

func medianOf(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, &evalError{msg: "cannot compute median of an empty column"}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

func sumOf(values []float64) (float64, error) {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum, nil
}

func minOf(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, &evalError{msg: "cannot compute min of an empty column"}
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

func maxOf(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, &evalError{msg: "cannot compute max of an empty column"}
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// stdevOf is the sample standard deviation, matching the original
// engine's pandas-backed stdev.
func stdevOf(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, &evalError{msg: "cannot compute stdev of fewer than two values"}
	}
	mean, _ := meanOf(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1)), nil
}

func evalUniqueValueCountBetween(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	col, err := kw.column()
	if err != nil {
		return nil, false, err
	}
	b, err := kw.bounds()
	if err != nil {
		return nil, false, err
	}
	cells, err := columnCells(t, col)
	if err != nil {
		return nil, false, err
	}
	distinct, _ := distinctValues(t, cells)
	count := len(distinct)
	return map[string]any{"observed_value": count}, b.contains(float64(count)), nil
}

func evalUniqueProportionBetween(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	col, err := kw.column()
	if err != nil {
		return nil, false, err
	}
	b, err := kw.bounds()
	if err != nil {
		return nil, false, err
	}
	cells, err := columnCells(t, col)
	if err != nil {
		return nil, false, err
	}
	distinct, considered := distinctValues(t, cells)
	if considered == 0 {
		return nil, false, &evalError{msg: "column \"" + col + "\" has no non-missing values"}
	}
	proportion := float64(len(distinct)) / float64(considered)
	return map[string]any{"observed_value": proportion}, b.contains(proportion), nil
}

func evalDistinctValuesInSet(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	col, err := kw.column()
	if err != nil {
		return nil, false, err
	}
	set, ok, err := kw.list("value_set")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, &evalError{msg: "kwarg \"value_set\" is required"}
	}
	cells, err := columnCells(t, col)
	if err != nil {
		return nil, false, err
	}
	distinct, _ := distinctValues(t, cells)
	success := true
	for _, value := range distinct {
		if !cellInSet(value, set) {
			success = false
			break
		}
	}
	return map[string]any{"observed_value": sortedCopy(distinct)}, success, nil
}
