// Package expectations evaluates individual data-quality rules against an
// in-memory table. Each supported rule type is registered with the kwargs
// it requires and a pure evaluator; the engine adapter drives the registry
// over a batch.
package expectations

import (
	"fmt"
	"sort"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// evalFunc evaluates one rule against a table. It returns the result
// payload, whether the rule passed, and an error when the rule could not
// be evaluated at all (bad kwargs, missing column, invalid pattern).
type evalFunc func(t *domain.Table, kw kwargs) (map[string]any, bool, error)

type spec struct {
	required []string
	evaluate evalFunc
}

var registry = map[string]spec{
	// Table shape.
	"expect_column_to_exist":                     {required: []string{"column"}, evaluate: evalColumnToExist},
	"expect_table_columns_to_match_ordered_list": {required: []string{"column_list"}, evaluate: evalColumnsMatchOrderedList},
	"expect_table_columns_to_match_set":          {required: []string{"column_set"}, evaluate: evalColumnsMatchSet},
	"expect_table_column_count_to_equal":         {required: []string{"value"}, evaluate: evalColumnCountEqual},
	"expect_table_column_count_to_be_between":    {evaluate: evalColumnCountBetween},
	"expect_table_row_count_to_equal":            {required: []string{"value"}, evaluate: evalRowCountEqual},
	"expect_table_row_count_to_be_between":       {evaluate: evalRowCountBetween},

	// Column map (per-value, honor mostly).
	"expect_column_values_to_not_be_null":       {required: []string{"column"}, evaluate: evalValuesNotNull},
	"expect_column_values_to_be_null":           {required: []string{"column"}, evaluate: evalValuesNull},
	"expect_column_values_to_be_unique":         {required: []string{"column"}, evaluate: evalValuesUnique},
	"expect_column_values_to_be_between":        {required: []string{"column"}, evaluate: evalValuesBetween},
	"expect_column_value_lengths_to_be_between": {required: []string{"column"}, evaluate: evalValueLengthsBetween},
	"expect_column_values_to_be_in_set":         {required: []string{"column", "value_set"}, evaluate: evalValuesInSet},
	"expect_column_values_to_not_be_in_set":     {required: []string{"column", "value_set"}, evaluate: evalValuesNotInSet},
	"expect_column_values_to_match_regex":       {required: []string{"column", "regex"}, evaluate: evalValuesMatchRegex},
	"expect_column_values_to_not_match_regex":   {required: []string{"column", "regex"}, evaluate: evalValuesNotMatchRegex},
	"expect_column_values_to_be_of_type":        {required: []string{"column", "type_"}, evaluate: evalValuesOfType},
	"expect_column_values_to_be_in_type_list":   {required: []string{"column", "type_list"}, evaluate: evalValuesInTypeList},

	// Column aggregate.
	"expect_column_mean_to_be_between":                        {required: []string{"column"}, evaluate: aggregateBetween(meanOf)},
	"expect_column_median_to_be_between":                      {required: []string{"column"}, evaluate: aggregateBetween(medianOf)},
	"expect_column_sum_to_be_between":                         {required: []string{"column"}, evaluate: aggregateBetween(sumOf)},
	"expect_column_min_to_be_between":                         {required: []string{"column"}, evaluate: aggregateBetween(minOf)},
	"expect_column_max_to_be_between":                         {required: []string{"column"}, evaluate: aggregateBetween(maxOf)},
	"expect_column_stdev_to_be_between":                       {required: []string{"column"}, evaluate: aggregateBetween(stdevOf)},
	"expect_column_unique_value_count_to_be_between":          {required: []string{"column"}, evaluate: evalUniqueValueCountBetween},
	"expect_column_proportion_of_unique_values_to_be_between": {required: []string{"column"}, evaluate: evalUniqueProportionBetween},
	"expect_column_distinct_values_to_be_in_set":              {required: []string{"column", "value_set"}, evaluate: evalDistinctValuesInSet},
}

// Known reports whether typ is a supported expectation type.
func Known(typ string) bool {
	_, ok := registry[typ]
	return ok
}

// Types returns all supported expectation type names, sorted.
func Types() []string {
	out := make([]string, 0, len(registry))
	for typ := range registry {
		out = append(out, typ)
	}
	sort.Strings(out)
	return out
}

// ValidateConfig checks that an expectation names a supported type and
// carries its required kwargs. It does not touch data, so suite loading
// can reject broken rules before any batch is read.
func ValidateConfig(exp domain.Expectation) error {
	s, ok := registry[exp.Type]
	if !ok {
		return fmt.Errorf("unknown expectation type %q", exp.Type)
	}
	for _, key := range s.required {
		if _, present := exp.Kwargs[key]; !present {
			return fmt.Errorf("expectation %q missing required kwarg %q", exp.Type, key)
		}
	}
	return nil
}

// Evaluate runs a single expectation against a table. Evaluation errors
// never propagate: rules that cannot run are reported as failed results
// with exception_info populated, so one broken rule does not sink a run.
func Evaluate(t *domain.Table, exp domain.Expectation) domain.ExpectationResult {
	s, ok := registry[exp.Type]
	if !ok {
		return domain.ExceptionResult(exp, fmt.Errorf("unknown expectation type %q", exp.Type))
	}
	detail, success, err := s.evaluate(t, kwargs(exp.Kwargs))
	if err != nil {
		return domain.ExceptionResult(exp, err)
	}
	return domain.ExpectationResult{
		Success: success,
		ExpectationConfig: domain.ExpectationConfig{
			Type:   exp.Type,
			Kwargs: exp.Kwargs,
			Meta:   exp.Meta,
		},
		Result:        detail,
		ExceptionInfo: domain.ExceptionInfo{RaisedException: false},
	}
}
