package application

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// ValidateService runs one expectation suite against one batch of data,
// persisting the report and run history along the way.
type ValidateService struct {
	suites  domain.SuiteLoader
	tables  domain.TableSource
	engine  domain.Engine
	reports domain.ReportStore
	git     domain.GitInfo
	logger  *zap.Logger
}

// NewValidateService creates a ValidateService with all required ports.
// git may be nil when provenance is not wanted; logger may be nil.
func NewValidateService(
	suites domain.SuiteLoader,
	tables domain.TableSource,
	engine domain.Engine,
	reports domain.ReportStore,
	git domain.GitInfo,
	logger *zap.Logger,
) *ValidateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ValidateService{
		suites: suites, tables: tables, engine: engine,
		reports: reports, git: git, logger: logger,
	}
}

// ValidateRequest carries one validation invocation.
type ValidateRequest struct {
	// DataRef is a CSV path or a database URL.
	DataRef string
	// SuitePath is the expectation suite JSON document.
	SuitePath string
	// OutPath overrides the derived report path when non-empty.
	OutPath string
	// StrictCSV rejects file refs without a .csv extension up front.
	StrictCSV bool
}

// RunOutcome is what a completed run hands back to the caller: the full
// result plus wherever the report landed.
type RunOutcome struct {
	Result     *domain.ValidationResult
	ReportPath string
}

// Run executes the validation pipeline. A returned error always carries
// an operational kind; a failed expectation is not an error and shows
// up in the result instead. Run never terminates the process.
func (s *ValidateService) Run(ctx context.Context, req ValidateRequest) (*RunOutcome, error) {
	// 1. Preconditions, cheapest first.
	if !domain.IsDatabaseRef(req.DataRef) {
		if _, err := os.Stat(req.DataRef); errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Errorf(domain.KindInputNotFound, "data file not found: %s", req.DataRef)
		}
		if req.StrictCSV && !strings.EqualFold(filepath.Ext(req.DataRef), ".csv") {
			return nil, domain.Errorf(domain.KindUnsupportedFormat,
				"unsupported data format %q, expected a .csv file", filepath.Ext(req.DataRef))
		}
	}

	// 2. Suite before data, so a broken suite never costs a full read.
	suite, err := s.suites.Load(req.SuitePath)
	if err != nil {
		return nil, err
	}

	// 3. Read and register the batch.
	table, err := s.tables.Read(ctx, req.DataRef)
	if err != nil {
		return nil, err
	}
	batch := domain.NewBatch(table, req.DataRef)

	// 4. Engine run.
	result, err := s.engine.Validate(ctx, batch, suite)
	if err != nil {
		return nil, err
	}

	s.attachCommitHash(result, req.DataRef)

	// 5. Persist the report, pass or fail alike.
	path, err := s.reports.Write(result, req.OutPath)
	if err != nil {
		return nil, domain.Errorf(domain.KindEngineExecution, "writing report: %v", err)
	}

	// 6. Record history, best-effort.
	record := domain.RunRecord{
		Timestamp:  result.Meta.RunTime.Format(time.RFC3339),
		SuiteName:  result.SuiteName,
		DataRef:    req.DataRef,
		Success:    result.Success,
		Statistics: result.Statistics,
		ReportPath: path,
	}
	if err := s.reports.AppendHistory(record); err != nil {
		s.logger.Warn("appending run history", zap.Error(err))
	}

	return &RunOutcome{Result: result, ReportPath: path}, nil
}

// attachCommitHash stamps provenance into the result when the data file
// lives inside a git work tree. Absence of a repo is not an error.
func (s *ValidateService) attachCommitHash(result *domain.ValidationResult, dataRef string) {
	if s.git == nil || domain.IsDatabaseRef(dataRef) {
		return
	}
	dir := filepath.Dir(dataRef)
	if !s.git.IsGitRepo(dir) {
		return
	}
	hash, err := s.git.CommitHash(dir)
	if err != nil {
		s.logger.Debug("resolving commit hash", zap.Error(err))
		return
	}
	result.Meta.CommitHash = hash
}
