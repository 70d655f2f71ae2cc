package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}

func initRepoWithCommit(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.csv"), []byte("id\n1\n"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")
	return dir
}

func TestAdapter_IsGitRepo(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()

	assert.False(t, gi.IsGitRepo(dir))

	runGit(t, dir, "init")
	assert.True(t, gi.IsGitRepo(dir))
}

func TestAdapter_CommitHash(t *testing.T) {
	dir := initRepoWithCommit(t)

	hash, err := gitinfo.New().CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40, "full SHA-1 hash")
}

func TestAdapter_DetectsRepoFromSubdirectory(t *testing.T) {
	dir := initRepoWithCommit(t)
	sub := filepath.Join(dir, "data", "input")
	require.NoError(t, os.MkdirAll(sub, 0755))

	gi := gitinfo.New()
	assert.True(t, gi.IsGitRepo(sub))

	hash, err := gi.CommitHash(sub)
	require.NoError(t, err)
	assert.Len(t, hash, 40)
}

func TestAdapter_CommitHash_NotARepo(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}

func TestAdapter_CommitHash_EmptyRepo(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")

	_, err := gitinfo.New().CommitHash(dir)
	assert.Error(t, err, "no HEAD before the first commit")
}
