package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeStatistics(t *testing.T) {
	results := []domain.ExpectationResult{
		{Success: true},
		{Success: true},
		{Success: true},
		{Success: false},
	}

	stats := domain.ComputeStatistics(results)

	assert.Equal(t, 4, stats.EvaluatedExpectations)
	assert.Equal(t, 3, stats.SuccessfulExpectations)
	assert.Equal(t, 1, stats.UnsuccessfulExpectations)
	assert.InDelta(t, 75.0, stats.SuccessPercent, 1e-9)
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := domain.ComputeStatistics(nil)

	assert.Equal(t, 0, stats.EvaluatedExpectations)
	assert.InDelta(t, 0.0, stats.SuccessPercent, 1e-9)
}

func TestExceptionResult(t *testing.T) {
	exp := domain.Expectation{
		Type:   "expect_column_values_to_match_regex",
		Kwargs: map[string]any{"column": "email", "regex": "("},
	}

	result := domain.ExceptionResult(exp, errors.New("invalid regex"))

	assert.False(t, result.Success)
	assert.True(t, result.ExceptionInfo.RaisedException)
	assert.Equal(t, "invalid regex", result.ExceptionInfo.ExceptionMessage)
	assert.Equal(t, exp.Type, result.ExpectationConfig.Type)
	assert.Nil(t, result.Result)
}

func TestDefaultReportName(t *testing.T) {
	at := time.Date(2025, 3, 9, 14, 5, 7, 0, time.UTC)

	assert.Equal(t, "result_20250309_140507.json", domain.DefaultReportName(at))
}

func TestExpectationResult_Describe(t *testing.T) {
	aggregate := domain.ExpectationResult{
		Success: false,
		Result:  map[string]any{"observed_value": 34.7},
	}
	assert.Equal(t, "observed 34.7", aggregate.Describe())

	columnMap := domain.ExpectationResult{
		Success: false,
		Result: map[string]any{
			"element_count":      120,
			"unexpected_count":   3,
			"unexpected_percent": 2.5,
		},
	}
	assert.Equal(t, "3 of 120 values unexpected (2.5%)", columnMap.Describe())

	exception := domain.ExpectationResult{
		Success:       false,
		ExceptionInfo: domain.ExceptionInfo{RaisedException: true, ExceptionMessage: "invalid regex"},
	}
	assert.Equal(t, "exception: invalid regex", exception.Describe())

	assert.Empty(t, domain.ExpectationResult{Success: true}.Describe())
	assert.Equal(t, "expectation not met", domain.ExpectationResult{}.Describe())
}

func TestExpectationResult_Describe_AfterJSONRoundTrip(t *testing.T) {
	// Numbers decode as float64; Describe must still read them.
	columnMap := domain.ExpectationResult{
		Success: false,
		Result: map[string]any{
			"element_count":      float64(120),
			"unexpected_count":   float64(3),
			"unexpected_percent": 2.5,
		},
	}
	assert.Equal(t, "3 of 120 values unexpected (2.5%)", columnMap.Describe())
}

func TestExpectation_Column(t *testing.T) {
	exp := domain.Expectation{Kwargs: map[string]any{"column": "age"}}
	assert.Equal(t, "age", exp.Column())

	assert.Empty(t, domain.Expectation{}.Column())
	assert.Empty(t, domain.Expectation{Kwargs: map[string]any{"column": 7}}.Column())
}
