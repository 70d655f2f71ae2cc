// Package gitinfo resolves the commit hash recorded in report metadata,
// implementing domain.GitInfo.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Adapter implements domain.GitInfo using go-git.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) open(path string) (*git.Repository, error) {
	// Walk up to the repo root so validation run from a subdirectory
	// still picks up provenance.
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}

func (a *Adapter) IsGitRepo(path string) bool {
	_, err := a.open(path)
	return err == nil
}

func (a *Adapter) CommitHash(path string) (string, error) {
	repo, err := a.open(path)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
