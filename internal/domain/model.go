package domain

import (
	"fmt"
	"time"
)

// Suite is a named, ordered collection of expectations, decoded from a
// suite document after legacy-key migration.
type Suite struct {
	Name         string         `json:"name"`
	Expectations []Expectation  `json:"expectations"`
	Meta         map[string]any `json:"meta,omitempty"`
}

// Expectation is a single declarative rule. Kwargs are opaque to everything
// except the evaluator registered for Type.
type Expectation struct {
	Type   string         `json:"type"`
	Kwargs map[string]any `json:"kwargs"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// Column returns the "column" kwarg, if present.
func (e Expectation) Column() string {
	s, _ := e.Kwargs["column"].(string)
	return s
}

// ValidationResult is the full verdict for one suite run against one batch.
// Field names follow the engine's report vocabulary so the persisted JSON
// matches what downstream tooling expects.
type ValidationResult struct {
	Success    bool                `json:"success"`
	Results    []ExpectationResult `json:"results"`
	SuiteName  string              `json:"suite_name"`
	Statistics Statistics          `json:"statistics"`
	Meta       RunMeta             `json:"meta"`
}

// Statistics aggregates per-run expectation counts.
type Statistics struct {
	EvaluatedExpectations    int     `json:"evaluated_expectations"`
	SuccessfulExpectations   int     `json:"successful_expectations"`
	UnsuccessfulExpectations int     `json:"unsuccessful_expectations"`
	SuccessPercent           float64 `json:"success_percent"`
}

// ComputeStatistics derives aggregate counts from individual results.
func ComputeStatistics(results []ExpectationResult) Statistics {
	stats := Statistics{EvaluatedExpectations: len(results)}
	for _, r := range results {
		if r.Success {
			stats.SuccessfulExpectations++
		} else {
			stats.UnsuccessfulExpectations++
		}
	}
	if stats.EvaluatedExpectations > 0 {
		stats.SuccessPercent = float64(stats.SuccessfulExpectations) / float64(stats.EvaluatedExpectations) * 100
	}
	return stats
}

// RunMeta records provenance for one engine run.
type RunMeta struct {
	RunID         string    `json:"run_id"`
	RunTime       time.Time `json:"run_time"`
	BatchID       string    `json:"batch_id"`
	DataSource    string    `json:"data_source"`
	DataAsset     string    `json:"data_asset"`
	DataRef       string    `json:"data_ref,omitempty"`
	CommitHash    string    `json:"commit_hash,omitempty"`
	EngineVersion string    `json:"engine_version,omitempty"`
}

// ExpectationResult is the outcome of evaluating one expectation.
type ExpectationResult struct {
	Success           bool              `json:"success"`
	ExpectationConfig ExpectationConfig `json:"expectation_config"`
	Result            map[string]any    `json:"result,omitempty"`
	ExceptionInfo     ExceptionInfo     `json:"exception_info"`
}

// ExpectationConfig echoes the evaluated rule back into the report.
type ExpectationConfig struct {
	Type   string         `json:"type"`
	Kwargs map[string]any `json:"kwargs"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// ExceptionInfo records a failure of the rule itself (bad kwargs, missing
// column, invalid regex) as opposed to a failure of the data.
type ExceptionInfo struct {
	RaisedException  bool   `json:"raised_exception"`
	ExceptionMessage string `json:"exception_message,omitempty"`
}

// Describe summarizes the outcome in one plain sentence for renderers.
func (r ExpectationResult) Describe() string {
	if r.ExceptionInfo.RaisedException {
		return "exception: " + r.ExceptionInfo.ExceptionMessage
	}
	if v, ok := r.Result["observed_value"]; ok {
		return fmt.Sprintf("observed %v", v)
	}
	if unexpected, ok := resultInt(r.Result, "unexpected_count"); ok {
		total, _ := resultInt(r.Result, "element_count")
		pct, _ := resultFloat(r.Result, "unexpected_percent")
		return fmt.Sprintf("%d of %d values unexpected (%.1f%%)", unexpected, total, pct)
	}
	if r.Success {
		return ""
	}
	return "expectation not met"
}

// Result payloads hold ints in-process but float64 after a JSON round
// trip, so lookups accept both.
func resultInt(detail map[string]any, key string) (int, bool) {
	switch v := detail[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func resultFloat(detail map[string]any, key string) (float64, bool) {
	switch v := detail[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// ExceptionResult builds the result for an expectation whose evaluation
// raised, which counts as unsuccessful without aborting the run.
func ExceptionResult(exp Expectation, err error) ExpectationResult {
	return ExpectationResult{
		Success:           false,
		ExpectationConfig: ExpectationConfig{Type: exp.Type, Kwargs: exp.Kwargs, Meta: exp.Meta},
		ExceptionInfo: ExceptionInfo{
			RaisedException:  true,
			ExceptionMessage: err.Error(),
		},
	}
}

// RunRecord is one line of persisted run history.
type RunRecord struct {
	Timestamp  string     `json:"timestamp"`
	SuiteName  string     `json:"suite_name"`
	DataRef    string     `json:"data_ref"`
	Success    bool       `json:"success"`
	Statistics Statistics `json:"statistics"`
	ReportPath string     `json:"report_path,omitempty"`
}

// Exit codes form the CLI contract with shells and CI systems.
const (
	// ExitPassed: validation ran and every expectation passed.
	ExitPassed = 0
	// ExitFailed: validation ran and at least one expectation failed.
	// The tool worked; the data is bad.
	ExitFailed = 1
	// ExitError: a precondition or the tool itself failed before a
	// verdict was reached.
	ExitError = 2
)

// DefaultReportName derives the timestamped report filename used when no
// output path is given. Collisions within one second are a documented
// limitation, not a guaranteed-unique key.
func DefaultReportName(t time.Time) string {
	return fmt.Sprintf("result_%s.json", t.Format("20060102_150405"))
}
