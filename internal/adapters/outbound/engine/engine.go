// Package engine drives the expectation registry over a batch,
// implementing domain.Engine.
package engine

import (
	"context"
	"time"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/Tac0Dude/data-quality-cli/internal/domain/expectations"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Version identifies the evaluator semantics recorded in reports as
// engine_version.
const Version = "1.0.0"

// Runner implements domain.Engine.
type Runner struct {
	logger *zap.Logger
}

// New creates a Runner. A nil logger disables diagnostics.
func New(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Validate evaluates every expectation in suite order against the batch.
// Rules that cannot be evaluated come back as exception results; only
// engine-level failures (nil inputs, cancellation) return an error.
func (r *Runner) Validate(ctx context.Context, batch *domain.Batch, suite *domain.Suite) (*domain.ValidationResult, error) {
	if batch == nil || batch.Table == nil {
		return nil, domain.Errorf(domain.KindEngineExecution, "no batch to validate")
	}
	if suite == nil {
		return nil, domain.Errorf(domain.KindEngineExecution, "no suite to validate against")
	}

	r.logger.Debug("batch registered",
		zap.String("data_source", batch.DataSource),
		zap.String("asset", batch.Asset),
		zap.String("batch_definition", batch.BatchDef),
		zap.String("batch_id", batch.ID()),
		zap.Int("rows", batch.Table.RowCount()),
		zap.Int("columns", batch.Table.ColumnCount()))

	results := make([]domain.ExpectationResult, 0, len(suite.Expectations))
	for i, exp := range suite.Expectations {
		if err := ctx.Err(); err != nil {
			return nil, domain.Errorf(domain.KindEngineExecution, "validation interrupted: %v", err)
		}

		res := expectations.Evaluate(batch.Table, exp)
		r.logger.Debug("expectation evaluated",
			zap.Int("index", i),
			zap.String("type", exp.Type),
			zap.String("column", exp.Column()),
			zap.Bool("success", res.Success),
			zap.Bool("raised_exception", res.ExceptionInfo.RaisedException))
		results = append(results, res)
	}

	stats := domain.ComputeStatistics(results)
	return &domain.ValidationResult{
		Success:    stats.UnsuccessfulExpectations == 0,
		Results:    results,
		SuiteName:  suite.Name,
		Statistics: stats,
		Meta: domain.RunMeta{
			RunID:         uuid.NewString(),
			RunTime:       time.Now().UTC(),
			BatchID:       batch.ID(),
			DataSource:    batch.DataSource,
			DataAsset:     batch.Asset,
			DataRef:       batch.DataRef,
			EngineVersion: Version,
		},
	}, nil
}
