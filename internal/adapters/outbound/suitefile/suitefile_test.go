package suitefile_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/suitefile"
	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const currentSuite = `{
  "name": "users_suite",
  "expectations": [
    {"type": "expect_column_to_exist", "kwargs": {"column": "id"}},
    {"type": "expect_column_values_to_be_between", "kwargs": {"column": "age", "min_value": 18, "max_value": 99}}
  ]
}`

const legacySuite = `{
  "expectation_suite_name": "users_suite",
  "expectations": [
    {"expectation_type": "expect_column_to_exist", "kwargs": {"column": "id"}}
  ]
}`

func TestLoader_CurrentSchema(t *testing.T) {
	suite, err := suitefile.New().Load(writeSuite(t, currentSuite))
	require.NoError(t, err)

	assert.Equal(t, "users_suite", suite.Name)
	require.Len(t, suite.Expectations, 2)
	assert.Equal(t, "expect_column_to_exist", suite.Expectations[0].Type)
	assert.Equal(t, "id", suite.Expectations[0].Column())
}

func TestLoader_LegacySchemaIsMigrated(t *testing.T) {
	suite, err := suitefile.New().Load(writeSuite(t, legacySuite))
	require.NoError(t, err)

	assert.Equal(t, "users_suite", suite.Name)
	require.Len(t, suite.Expectations, 1)
	assert.Equal(t, "expect_column_to_exist", suite.Expectations[0].Type)
}

func TestLoader_PreservesNumericKwargs(t *testing.T) {
	suite, err := suitefile.New().Load(writeSuite(t, currentSuite))
	require.NoError(t, err)

	kwargs := suite.Expectations[1].Kwargs
	assert.Equal(t, json.Number("18"), kwargs["min_value"])
	assert.Equal(t, json.Number("99"), kwargs["max_value"])
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := suitefile.New().Load(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Equal(t, domain.KindSuiteLoad, domain.KindOf(err))
	assert.Contains(t, err.Error(), "nope.json")
}

func TestLoader_InvalidJSON(t *testing.T) {
	_, err := suitefile.New().Load(writeSuite(t, "{not json"))

	require.Error(t, err)
	assert.Equal(t, domain.KindSuiteLoad, domain.KindOf(err))
}

func TestLoader_MissingName(t *testing.T) {
	_, err := suitefile.New().Load(writeSuite(t, `{"expectations": []}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestLoader_ExpectationsNotAList(t *testing.T) {
	_, err := suitefile.New().Load(writeSuite(t, `{"name": "s", "expectations": {"oops": true}}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a list")
}

func TestLoader_UnknownExpectationType(t *testing.T) {
	_, err := suitefile.New().Load(writeSuite(t, `{
  "name": "s",
  "expectations": [{"type": "expect_magic", "kwargs": {}}]
}`))

	require.Error(t, err)
	assert.Equal(t, domain.KindSuiteLoad, domain.KindOf(err))
	assert.Contains(t, err.Error(), "expect_magic")
}

func TestLoader_MissingRequiredKwarg(t *testing.T) {
	_, err := suitefile.New().Load(writeSuite(t, `{
  "name": "s",
  "expectations": [{"type": "expect_column_values_to_be_in_set", "kwargs": {"column": "x"}}]
}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "value_set")
}

func TestLoader_EmptyExpectationsList(t *testing.T) {
	suite, err := suitefile.New().Load(writeSuite(t, `{"name": "empty", "expectations": []}`))

	require.NoError(t, err)
	assert.Empty(t, suite.Expectations)
}

func TestWriteDocument_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrated.json")
	doc := map[string]any{"name": "s", "expectations": []any{}}

	require.NoError(t, suitefile.WriteDocument(doc, path))

	got, err := suitefile.ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "s", got["name"])
}
