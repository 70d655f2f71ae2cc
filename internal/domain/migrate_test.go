package domain_test

import (
	"testing"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func legacyDoc() map[string]any {
	return map[string]any{
		"expectation_suite_name": "orders_suite",
		"expectations": []any{
			map[string]any{
				"expectation_type": "expect_column_to_exist",
				"kwargs":           map[string]any{"column": "order_id"},
			},
			map[string]any{
				"expectation_type": "expect_column_values_to_not_be_null",
				"kwargs":           map[string]any{"column": "order_id"},
			},
		},
	}
}

func TestMigrateSuiteDocument_RenamesLegacyKeys(t *testing.T) {
	got := domain.MigrateSuiteDocument(legacyDoc())

	want := map[string]any{
		"name": "orders_suite",
		"expectations": []any{
			map[string]any{
				"type":   "expect_column_to_exist",
				"kwargs": map[string]any{"column": "order_id"},
			},
			map[string]any{
				"type":   "expect_column_values_to_not_be_null",
				"kwargs": map[string]any{"column": "order_id"},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("migrated document mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrateSuiteDocument_Idempotent(t *testing.T) {
	once := domain.MigrateSuiteDocument(legacyDoc())
	twice := domain.MigrateSuiteDocument(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second migration changed the document (-once +twice):\n%s", diff)
	}
}

func TestMigrateSuiteDocument_CurrentSchemaPassesThrough(t *testing.T) {
	doc := map[string]any{
		"name": "clean",
		"expectations": []any{
			map[string]any{"type": "expect_column_to_exist", "kwargs": map[string]any{"column": "id"}},
		},
		"meta": map[string]any{"owner": "data-team"},
	}

	got := domain.MigrateSuiteDocument(doc)

	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("current-schema document changed (-want +got):\n%s", diff)
	}
}

func TestMigrateSuiteDocument_LegacyValueWinsOnCollision(t *testing.T) {
	doc := map[string]any{
		"expectation_suite_name": "from_legacy",
		"name":                   "from_current",
	}

	got := domain.MigrateSuiteDocument(doc)

	assert.Equal(t, "from_legacy", got["name"])
	assert.NotContains(t, got, "expectation_suite_name")
}

func TestMigrateSuiteDocument_DoesNotMutateInput(t *testing.T) {
	doc := legacyDoc()
	domain.MigrateSuiteDocument(doc)

	assert.Contains(t, doc, "expectation_suite_name")
	first := doc["expectations"].([]any)[0].(map[string]any)
	assert.Contains(t, first, "expectation_type")
}

func TestMigrateSuiteDocument_NilAndOddShapes(t *testing.T) {
	assert.Nil(t, domain.MigrateSuiteDocument(nil))

	// A non-list expectations value passes through untouched.
	doc := map[string]any{"expectations": "not a list"}
	got := domain.MigrateSuiteDocument(doc)
	assert.Equal(t, "not a list", got["expectations"])

	// Non-map list elements survive as-is.
	doc = map[string]any{"expectations": []any{"stray", 7}}
	got = domain.MigrateSuiteDocument(doc)
	assert.Equal(t, []any{"stray", 7}, got["expectations"])
}
