package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := domain.Errorf(domain.KindSuiteLoad, "suite %s is broken", "orders")

	assert.Equal(t, domain.KindSuiteLoad, domain.KindOf(err))
	assert.Equal(t, "suite orders is broken", err.Error())
}

func TestKindOf_Wrapped(t *testing.T) {
	inner := domain.NewError(domain.KindInputNotFound, errors.New("data file not found: x.csv"))
	wrapped := fmt.Errorf("running validation: %w", inner)

	assert.Equal(t, domain.KindInputNotFound, domain.KindOf(wrapped))
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, domain.ErrorKind(""), domain.KindOf(errors.New("plain")))
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("root cause")
	err := domain.NewError(domain.KindEngineExecution, inner)

	assert.ErrorIs(t, err, inner)
}
