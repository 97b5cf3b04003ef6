package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "rewrite testdata/*.golden with current output")

// GoldenPath returns testdata/<name>.golden relative to the package under test.
func GoldenPath(name string) string {
	return filepath.Join("testdata", name+".golden")
}

// Golden compares got with testdata/<name>.golden and reports a line diff on
// mismatch. Running the tests with -update or GOLDEN_UPDATE=1 rewrites the
// file instead.
func Golden(t testing.TB, name string, got []byte) {
	t.Helper()
	path := GoldenPath(name)

	if *update || os.Getenv("GOLDEN_UPDATE") != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, got, 0o644))
		t.Logf("updated %s", path)
		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "missing golden file, rerun with -update")
	assert.Equal(t, string(want), string(got), "output differs from %s", path)
}

// GoldenString is Golden for string output.
func GoldenString(t testing.TB, name, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}
