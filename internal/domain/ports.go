package domain

import "context"

// SuiteLoader loads and migrates an expectation suite document.
type SuiteLoader interface {
	Load(path string) (*Suite, error)
}

// TableSource reads a data ref (CSV path or database URL) into a Table.
type TableSource interface {
	Read(ctx context.Context, ref string) (*Table, error)
}

// Engine evaluates a suite against a batch. The registration ceremony is
// the engine's business; orchestration and reporting only see this
// method, which keeps them decoupled from whichever engine is wired in.
type Engine interface {
	Validate(ctx context.Context, batch *Batch, suite *Suite) (*ValidationResult, error)
}

// ReportStore persists validation results and run history.
type ReportStore interface {
	Write(result *ValidationResult, path string) (string, error)
	AppendHistory(record RunRecord) error
	History() ([]RunRecord, error)
}

// GitInfo resolves provenance from a git work tree, when there is one.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// ConfigLoader reads project configuration.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}
