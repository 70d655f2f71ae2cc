package cli_test

import (
	"bytes"
	"testing"

	"github.com/Tac0Dude/data-quality-cli/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "dq dev (none)")
}

func TestRootHelpListsCommands(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	for _, sub := range []string{"validate", "suite", "docs", "history", "init", "mcp", "version"} {
		assert.Contains(t, buf.String(), sub)
	}
}
