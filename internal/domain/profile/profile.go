// Package profile derives a starter expectation suite from observed
// data. The generated rules describe the batch as it stands; they are
// a draft for the user to edit, not a verdict.
package profile

import (
	"math"
	"sort"
	"strconv"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// smallDomainLimit is the distinct-value ceiling under which a column
// gets an in-set rule instead of a range rule.
const smallDomainLimit = 10

// BuildSuite profiles every column of t and assembles a suite under
// name: table shape first, then per-column rules in header order.
func BuildSuite(t *domain.Table, name string) *domain.Suite {
	expectations := []domain.Expectation{
		rule("expect_table_columns_to_match_ordered_list", map[string]any{
			"column_list": toAnySlice(t.Columns),
		}),
		rule("expect_table_row_count_to_be_between", map[string]any{
			"min_value": t.RowCount(),
			"max_value": t.RowCount(),
		}),
	}
	for _, column := range t.Columns {
		expectations = append(expectations, columnRules(t, column)...)
	}

	return &domain.Suite{
		Name:         name,
		Expectations: expectations,
		Meta:         map[string]any{"generated_by": "dq suite new"},
	}
}

// columnRules derives the rules one column already satisfies.
func columnRules(t *domain.Table, name string) []domain.Expectation {
	p := profileColumn(t, name)
	var rules []domain.Expectation

	switch {
	case p.considered() == 0 && p.missing > 0:
		rules = append(rules, rule("expect_column_values_to_be_null", map[string]any{
			"column": name,
		}))
	case p.missing == 0:
		rules = append(rules, rule("expect_column_values_to_not_be_null", map[string]any{
			"column": name,
		}))
	default:
		rules = append(rules, rule("expect_column_values_to_not_be_null", map[string]any{
			"column": name,
			"mostly": p.presentRatio(),
		}))
	}

	if p.considered() == 0 {
		return rules
	}

	typeName := p.typeName()
	if typeName != "" {
		rules = append(rules, rule("expect_column_values_to_be_of_type", map[string]any{
			"column": name,
			"type_":  typeName,
		}))
	}

	switch {
	case p.smallDomain():
		rules = append(rules, rule("expect_column_values_to_be_in_set", map[string]any{
			"column":    name,
			"value_set": p.domainValues(typeName),
		}))
	case p.numeric():
		rules = append(rules, rule("expect_column_values_to_be_between", map[string]any{
			"column":    name,
			"min_value": p.min,
			"max_value": p.max,
		}))
	}

	if p.unique() {
		rules = append(rules, rule("expect_column_values_to_be_unique", map[string]any{
			"column": name,
		}))
	}

	return rules
}

func rule(typ string, kwargs map[string]any) domain.Expectation {
	return domain.Expectation{Type: typ, Kwargs: kwargs}
}

// columnProfile is the single-pass summary of one column.
type columnProfile struct {
	total     int
	missing   int
	ints      int
	floats    int
	bools     int
	datetimes int
	min       float64
	max       float64
	distinct  []string
}

func profileColumn(t *domain.Table, name string) *columnProfile {
	cells, _ := t.Column(name)
	p := &columnProfile{total: len(cells)}
	seen := make(map[string]bool)

	for _, cell := range cells {
		if t.IsNull(cell) {
			p.missing++
			continue
		}
		if !seen[cell] {
			seen[cell] = true
			p.distinct = append(p.distinct, cell)
		}
		if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
			p.ints++
		}
		if f, err := strconv.ParseFloat(cell, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			if p.floats == 0 || f < p.min {
				p.min = f
			}
			if p.floats == 0 || f > p.max {
				p.max = f
			}
			p.floats++
		}
		if _, err := strconv.ParseBool(cell); err == nil {
			p.bools++
		}
		if _, ok := domain.ParseDatetime(cell); ok {
			p.datetimes++
		}
	}
	return p
}

func (p *columnProfile) considered() int { return p.total - p.missing }

// presentRatio is the non-missing fraction rounded down so the data
// that produced it still passes the generated rule.
func (p *columnProfile) presentRatio() float64 {
	return math.Floor(float64(p.considered())/float64(p.total)*100) / 100
}

// typeName picks the narrowest logical type every considered value
// parses as; empty means mixed content.
func (p *columnProfile) typeName() string {
	switch {
	case p.ints == p.considered():
		return "int"
	case p.floats == p.considered():
		return "float"
	case p.bools == p.considered():
		return "bool"
	case p.datetimes == p.considered():
		return "datetime"
	default:
		return ""
	}
}

func (p *columnProfile) numeric() bool { return p.floats == p.considered() }

// smallDomain holds when values repeat within a handful of distinct
// ones, the shape of an enum-like column.
func (p *columnProfile) smallDomain() bool {
	return len(p.distinct) <= smallDomainLimit && len(p.distinct) < p.considered()
}

func (p *columnProfile) unique() bool {
	return p.missing == 0 && p.considered() > 1 && len(p.distinct) == p.considered()
}

// domainValues returns the distinct values as a sorted value_set,
// typed to match the column when it is numeric.
func (p *columnProfile) domainValues(typeName string) []any {
	values := make([]string, len(p.distinct))
	copy(values, p.distinct)

	switch typeName {
	case "int":
		sort.Slice(values, func(i, j int) bool {
			a, _ := strconv.ParseInt(values[i], 10, 64)
			b, _ := strconv.ParseInt(values[j], 10, 64)
			return a < b
		})
		out := make([]any, len(values))
		for i, v := range values {
			n, _ := strconv.ParseInt(v, 10, 64)
			out[i] = n
		}
		return out
	case "float":
		sort.Slice(values, func(i, j int) bool {
			a, _ := strconv.ParseFloat(values[i], 64)
			b, _ := strconv.ParseFloat(values[j], 64)
			return a < b
		})
		out := make([]any, len(values))
		for i, v := range values {
			f, _ := strconv.ParseFloat(v, 64)
			out[i] = f
		}
		return out
	default:
		sort.Strings(values)
		return toAnySlice(values)
	}
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
