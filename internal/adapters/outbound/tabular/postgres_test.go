package tabular

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	q, err := New(Options{Query: "SELECT a FROM b WHERE c > 1"}).buildQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM b WHERE c > 1", q)

	q, err = New(Options{Table: "users"}).buildQuery()
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "users"`, q)

	// Query wins when both are set.
	q, err = New(Options{Table: "users", Query: "SELECT 1"}).buildQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", q)

	_, err = New(Options{}).buildQuery()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--table or --query")
}

func TestRenderCell(t *testing.T) {
	assert.Equal(t, "", renderCell(nil))
	assert.Equal(t, "hello", renderCell("hello"))
	assert.Equal(t, "bytes", renderCell([]byte("bytes")))
	assert.Equal(t, "true", renderCell(true))
	assert.Equal(t, "42", renderCell(int64(42)))
	assert.Equal(t, "7", renderCell(int32(7)))
	assert.Equal(t, "3.14", renderCell(3.14))

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-01T12:00:00Z", renderCell(at))
}
