// Package suitefile loads expectation suites from JSON documents,
// implementing domain.SuiteLoader. Legacy key names are migrated before
// the suite is constructed, and every rule is checked against the
// expectation registry so broken suites fail before any data is read.
package suitefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/Tac0Dude/data-quality-cli/internal/domain/expectations"
)

// Loader implements domain.SuiteLoader.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads, migrates and constructs the suite at path. Every failure
// comes back as a suite_load error.
func (l *Loader) Load(path string) (*domain.Suite, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}

	suite, err := suiteFromDocument(domain.MigrateSuiteDocument(doc))
	if err != nil {
		return nil, domain.Errorf(domain.KindSuiteLoad, "invalid suite %s: %v", path, err)
	}
	return suite, nil
}

// ReadDocument reads a suite file into its raw, unmigrated form. Numbers
// are preserved as json.Number so kwargs round-trip without float noise.
func ReadDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.Errorf(domain.KindSuiteLoad, "suite file not found: %s", path)
		}
		return nil, domain.NewError(domain.KindSuiteLoad, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, domain.Errorf(domain.KindSuiteLoad, "parsing %s: %v", path, err)
	}
	return doc, nil
}

// WriteDocument writes a suite document as pretty-printed JSON.
func WriteDocument(doc map[string]any, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding suite: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func suiteFromDocument(doc map[string]any) (*domain.Suite, error) {
	name, _ := doc["name"].(string)
	if name == "" {
		return nil, fmt.Errorf("suite name is required")
	}

	suite := &domain.Suite{Name: name}
	if meta, ok := doc["meta"].(map[string]any); ok {
		suite.Meta = meta
	}

	raw, ok := doc["expectations"]
	if !ok {
		return nil, fmt.Errorf(`missing "expectations" list`)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf(`"expectations" must be a list`)
	}

	suite.Expectations = make([]domain.Expectation, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expectation %d is not an object", i)
		}

		typ, _ := m["type"].(string)
		if typ == "" {
			return nil, fmt.Errorf(`expectation %d has no "type"`, i)
		}

		exp := domain.Expectation{Type: typ, Kwargs: map[string]any{}}
		if kw, ok := m["kwargs"].(map[string]any); ok {
			exp.Kwargs = kw
		}
		if meta, ok := m["meta"].(map[string]any); ok {
			exp.Meta = meta
		}

		if err := expectations.ValidateConfig(exp); err != nil {
			return nil, fmt.Errorf("expectation %d: %w", i, err)
		}
		suite.Expectations = append(suite.Expectations, exp)
	}

	return suite, nil
}
