package expectations_test

import (
	"testing"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/Tac0Dude/data-quality-cli/internal/domain/expectations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ages in the fixture are 34, 41, 29 after the "NA" cell is dropped.

func TestEvaluate_MeanBetween(t *testing.T) {
	result := expectations.Evaluate(employeeTable(), expect("expect_column_mean_to_be_between", map[string]any{
		"column":    "age",
		"min_value": 30,
		"max_value": 40,
	}))

	assert.True(t, result.Success)
	assert.InDelta(t, 34.6667, result.Result["observed_value"], 0.001)
}

func TestEvaluate_MedianBetween(t *testing.T) {
	result := expectations.Evaluate(employeeTable(), expect("expect_column_median_to_be_between", map[string]any{
		"column":    "age",
		"min_value": 34,
		"max_value": 34,
	}))

	assert.True(t, result.Success)
	assert.InDelta(t, 34.0, result.Result["observed_value"], 1e-9)
}

func TestEvaluate_SumBetween(t *testing.T) {
	result := expectations.Evaluate(employeeTable(), expect("expect_column_sum_to_be_between", map[string]any{
		"column":    "age",
		"min_value": 104,
		"max_value": 104,
	}))

	assert.True(t, result.Success)
	assert.InDelta(t, 104.0, result.Result["observed_value"], 1e-9)
}

func TestEvaluate_MinMaxBetween(t *testing.T) {
	table := employeeTable()

	min := expectations.Evaluate(table, expect("expect_column_min_to_be_between", map[string]any{
		"column":    "age",
		"min_value": 18,
	}))
	assert.True(t, min.Success)
	assert.InDelta(t, 29.0, min.Result["observed_value"], 1e-9)

	max := expectations.Evaluate(table, expect("expect_column_max_to_be_between", map[string]any{
		"column":     "age",
		"max_value":  41,
		"strict_max": true,
	}))
	assert.False(t, max.Success, "strict_max excludes the bound itself")
}

func TestEvaluate_StdevBetween(t *testing.T) {
	result := expectations.Evaluate(employeeTable(), expect("expect_column_stdev_to_be_between", map[string]any{
		"column":    "age",
		"min_value": 5,
		"max_value": 7,
	}))

	assert.True(t, result.Success)
	assert.InDelta(t, 6.0277, result.Result["observed_value"], 0.001)
}

func TestEvaluate_StdevNeedsTwoValues(t *testing.T) {
	table := domain.NewTable([]string{"n"}, [][]string{{"7"}})

	result := expectations.Evaluate(table, expect("expect_column_stdev_to_be_between", map[string]any{
		"column":    "n",
		"min_value": 0,
	}))

	assert.False(t, result.Success)
	assert.True(t, result.ExceptionInfo.RaisedException)
}

func TestEvaluate_AggregateOnNonNumericColumn_RaisesException(t *testing.T) {
	result := expectations.Evaluate(employeeTable(), expect("expect_column_mean_to_be_between", map[string]any{
		"column":    "email",
		"min_value": 0,
	}))

	assert.False(t, result.Success)
	require.True(t, result.ExceptionInfo.RaisedException)
	assert.Contains(t, result.ExceptionInfo.ExceptionMessage, "non-numeric")
}

func TestEvaluate_UniqueValueCountBetween(t *testing.T) {
	result := expectations.Evaluate(employeeTable(), expect("expect_column_unique_value_count_to_be_between", map[string]any{
		"column":    "status",
		"min_value": 3,
		"max_value": 3,
	}))

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Result["observed_value"])
}

func TestEvaluate_UniqueProportionBetween(t *testing.T) {
	result := expectations.Evaluate(employeeTable(), expect("expect_column_proportion_of_unique_values_to_be_between", map[string]any{
		"column":    "status",
		"min_value": 0.5,
	}))

	assert.True(t, result.Success)
	assert.InDelta(t, 0.75, result.Result["observed_value"], 1e-9)
}

func TestEvaluate_UniqueProportion_EmptyColumn_RaisesException(t *testing.T) {
	table := domain.NewTable([]string{"v"}, [][]string{{""}, {"NA"}})

	result := expectations.Evaluate(table, expect("expect_column_proportion_of_unique_values_to_be_between", map[string]any{
		"column":    "v",
		"min_value": 0,
	}))

	assert.False(t, result.Success)
	assert.True(t, result.ExceptionInfo.RaisedException)
}

func TestEvaluate_DistinctValuesInSet(t *testing.T) {
	result := expectations.Evaluate(employeeTable(), expect("expect_column_distinct_values_to_be_in_set", map[string]any{
		"column":    "status",
		"value_set": []any{"active", "inactive", "pending", "banned"},
	}))

	assert.True(t, result.Success)
	assert.Equal(t, []string{"active", "inactive", "pending"}, result.Result["observed_value"])

	narrow := expectations.Evaluate(employeeTable(), expect("expect_column_distinct_values_to_be_in_set", map[string]any{
		"column":    "status",
		"value_set": []any{"active", "inactive"},
	}))
	assert.False(t, narrow.Success)
}
