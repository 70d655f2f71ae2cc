package expectations_test

import (
	"testing"

	"github.com/Tac0Dude/data-quality-cli/internal/domain/expectations"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_ColumnToExist(t *testing.T) {
	table := employeeTable()

	assert.True(t, expectations.Evaluate(table, expect("expect_column_to_exist", map[string]any{
		"column": "email",
	})).Success)

	missing := expectations.Evaluate(table, expect("expect_column_to_exist", map[string]any{
		"column": "salary",
	}))
	assert.False(t, missing.Success)
	assert.False(t, missing.ExceptionInfo.RaisedException, "absent column is a data failure, not an exception")
}

func TestEvaluate_ColumnsMatchOrderedList(t *testing.T) {
	table := employeeTable()

	ok := expectations.Evaluate(table, expect("expect_table_columns_to_match_ordered_list", map[string]any{
		"column_list": []any{"id", "age", "email", "status"},
	}))
	assert.True(t, ok.Success)

	reordered := expectations.Evaluate(table, expect("expect_table_columns_to_match_ordered_list", map[string]any{
		"column_list": []any{"age", "id", "email", "status"},
	}))
	assert.False(t, reordered.Success)
	assert.Equal(t, []string{"id", "age", "email", "status"}, reordered.Result["observed_value"])
}

func TestEvaluate_ColumnsMatchSet_ExactByDefault(t *testing.T) {
	table := employeeTable()

	subset := expectations.Evaluate(table, expect("expect_table_columns_to_match_set", map[string]any{
		"column_set": []any{"id", "age", "email"},
	}))
	assert.False(t, subset.Success)
	assert.Equal(t, []string{"status"}, subset.Result["unexpected"])

	relaxed := expectations.Evaluate(table, expect("expect_table_columns_to_match_set", map[string]any{
		"column_set":  []any{"id", "age", "email"},
		"exact_match": false,
	}))
	assert.True(t, relaxed.Success)
}

func TestEvaluate_ColumnsMatchSet_ReportsMissing(t *testing.T) {
	result := expectations.Evaluate(employeeTable(), expect("expect_table_columns_to_match_set", map[string]any{
		"column_set": []any{"id", "age", "email", "status", "salary"},
	}))

	assert.False(t, result.Success)
	assert.Equal(t, []string{"salary"}, result.Result["missing"])
}

func TestEvaluate_ColumnCount(t *testing.T) {
	table := employeeTable()

	equal := expectations.Evaluate(table, expect("expect_table_column_count_to_equal", map[string]any{
		"value": 4,
	}))
	assert.True(t, equal.Success)
	assert.Equal(t, 4, equal.Result["observed_value"])

	between := expectations.Evaluate(table, expect("expect_table_column_count_to_be_between", map[string]any{
		"min_value": 5,
	}))
	assert.False(t, between.Success)
}

func TestEvaluate_RowCount(t *testing.T) {
	table := employeeTable()

	assert.True(t, expectations.Evaluate(table, expect("expect_table_row_count_to_equal", map[string]any{
		"value": 4,
	})).Success)

	assert.True(t, expectations.Evaluate(table, expect("expect_table_row_count_to_be_between", map[string]any{
		"min_value": 1,
		"max_value": 10,
	})).Success)

	strict := expectations.Evaluate(table, expect("expect_table_row_count_to_be_between", map[string]any{
		"max_value":  4,
		"strict_max": true,
	}))
	assert.False(t, strict.Success)
}

func TestEvaluate_RowCountBetween_NoBounds_RaisesException(t *testing.T) {
	result := expectations.Evaluate(employeeTable(), expect("expect_table_row_count_to_be_between", map[string]any{}))

	assert.False(t, result.Success)
	assert.True(t, result.ExceptionInfo.RaisedException)
	assert.Contains(t, result.ExceptionInfo.ExceptionMessage, "min_value")
}
