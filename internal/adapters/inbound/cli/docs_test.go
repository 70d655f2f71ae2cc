package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/inbound/cli"
	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCommand_RendersSavedReport(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "users.csv", usersCSV)
	writeFile(t, "suite.json", passingSuite)

	run := cli.NewRootCmdForTest()
	run.SetOut(new(bytes.Buffer))
	run.SetArgs([]string{"validate", "users.csv", "--suite", "suite.json", "--out", "report.json"})
	require.NoError(t, run.Execute())

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"docs", "report.json"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "docs page saved to")
	pages, err := filepath.Glob("reports/docs/result_*.html")
	require.NoError(t, err)
	assert.Len(t, pages, 1)
}

func TestDocsCommand_MissingReport(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"docs", "absent.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, domain.KindInputNotFound, domain.KindOf(err))
}

func TestDocsCommand_UnparsableReport(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "report.json", "{broken")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"docs", "report.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing report")
}
