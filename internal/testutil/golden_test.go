package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGolden_UpdateThenCompare(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GOLDEN_UPDATE", "1")

	GoldenString(t, "report", "Page 1/1  total: 2\n")

	got, err := os.ReadFile(filepath.Join("testdata", "report.golden"))
	require.NoError(t, err)
	assert.Equal(t, "Page 1/1  total: 2\n", string(got))

	t.Setenv("GOLDEN_UPDATE", "")
	GoldenString(t, "report", "Page 1/1  total: 2\n")
}

func TestGoldenPath(t *testing.T) {
	assert.Equal(t, filepath.Join("testdata", "demo.golden"), GoldenPath("demo"))
}
