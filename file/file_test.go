/*
File : kodi-script-go/file/file_test.go
*/
package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDirectives verifies directive extraction from comments.
func TestParseDirectives(t *testing.T) {
	src := `// config: maxOps=500
// expect: error
// an unrelated comment
let x = 1
`
	directives := ParseDirectives(src)
	assert.Equal(t, 500, directives.MaxOps)
	assert.True(t, directives.ExpectError)

	directives = ParseDirectives("let x = 1")
	assert.Zero(t, directives.MaxOps)
	assert.False(t, directives.ExpectError)

	// Malformed values are ignored.
	directives = ParseDirectives("// config: maxOps=abc")
	assert.Zero(t, directives.MaxOps)
}

// writeScript drops a script into a temp dir and returns its path.
func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script"+Extension)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// TestRunFile verifies loading and executing a script from disk.
func TestRunFile(t *testing.T) {
	path := writeScript(t, `print("from disk") 40 + 2`)

	result, directives, err := RunFile(path)
	require.NoError(t, err)
	assert.False(t, directives.ExpectError)
	require.True(t, result.OK(), result.Errors)
	assert.Equal(t, 42.0, result.Value)
	assert.Equal(t, []string{"from disk"}, result.Output)
}

// TestRunFile_AppliesMaxOps verifies the config directive caps the run.
func TestRunFile_AppliesMaxOps(t *testing.T) {
	path := writeScript(t, `// config: maxOps=10
// expect: error
let n = 0
while (true) { n = n + 1 }
`)

	result, directives, err := RunFile(path)
	require.NoError(t, err)
	assert.True(t, directives.ExpectError)
	require.False(t, result.OK())
	assert.Contains(t, result.Errors[0], "max operations exceeded")
}

// TestRunFile_MissingFile verifies filesystem failures are returned as
// Go errors, separate from script failures.
func TestRunFile_MissingFile(t *testing.T) {
	_, _, err := RunFile(filepath.Join(t.TempDir(), "nope.kodi"))
	assert.Error(t, err)
}
