// Package report persists validation results as JSON files and keeps the
// append-only run history, implementing domain.ReportStore.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

const historyFile = ".dq/history/runs.json"

// Store implements domain.ReportStore using plain files.
type Store struct {
	baseDir    string
	reportsDir string
}

// New creates a Store. baseDir anchors the history directory, reportsDir
// is where derived report paths land.
func New(baseDir, reportsDir string) *Store {
	return &Store{baseDir: baseDir, reportsDir: reportsDir}
}

// Write persists the result as pretty-printed JSON. An empty path derives
// the timestamped default name under the reports directory. Returns the
// path actually written.
func (s *Store) Write(result *domain.ValidationResult, path string) (string, error) {
	if path == "" {
		path = filepath.Join(s.baseDir, s.reportsDir, domain.DefaultReportName(result.Meta.RunTime))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating report directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// AppendHistory adds one run record to the history file.
func (s *Store) AppendHistory(record domain.RunRecord) error {
	records, err := s.History()
	if err != nil {
		return err
	}

	records = append(records, record)

	fp := filepath.Join(s.baseDir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fp, data, 0644)
}

// History loads all recorded runs, oldest first. A missing history file
// means no runs yet.
func (s *Store) History() ([]domain.RunRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.RunRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
