package application

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/Tac0Dude/data-quality-cli/internal/domain/profile"
)

// SuiteBuilderService drafts a starter expectation suite from a batch
// of data, giving new projects a suite to edit instead of a blank page.
type SuiteBuilderService struct {
	tables domain.TableSource
	logger *zap.Logger
}

// NewSuiteBuilderService creates a SuiteBuilderService. logger may be nil.
func NewSuiteBuilderService(tables domain.TableSource, logger *zap.Logger) *SuiteBuilderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SuiteBuilderService{tables: tables, logger: logger}
}

// BuildSuiteRequest carries one suite-generation invocation.
type BuildSuiteRequest struct {
	// DataRef is a CSV path or a database URL.
	DataRef string
	// Name overrides the suite name derived from the data ref.
	Name string
}

// Build profiles the data behind req.DataRef and returns the drafted
// suite. Errors carry an operational kind.
func (s *SuiteBuilderService) Build(ctx context.Context, req BuildSuiteRequest) (*domain.Suite, error) {
	if !domain.IsDatabaseRef(req.DataRef) {
		if _, err := os.Stat(req.DataRef); errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Errorf(domain.KindInputNotFound, "data file not found: %s", req.DataRef)
		}
	}

	table, err := s.tables.Read(ctx, req.DataRef)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = SuiteNameFor(req.DataRef)
	}

	suite := profile.BuildSuite(table, name)
	s.logger.Debug("profiled batch",
		zap.String("data_ref", req.DataRef),
		zap.Int("columns", table.ColumnCount()),
		zap.Int("rules", len(suite.Expectations)))
	return suite, nil
}

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// SuiteNameFor derives a suite name from a data ref: the file stem,
// lowercased with non-alphanumeric runs collapsed to underscores, plus
// a _suite suffix.
func SuiteNameFor(dataRef string) string {
	base := filepath.Base(dataRef)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	slug := strings.Trim(nonWord.ReplaceAllString(strings.ToLower(stem), "_"), "_")
	if slug == "" {
		slug = "data"
	}
	return slug + "_suite"
}
