// test_helpers.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// minimalSpecJSON returns a minimal adapter spec that passes validateSpec and
// renders a complete source unit.
func minimalSpecJSON() []byte {
	return []byte(`{
  "package": "clearing",
  "target": "My::Clear",
  "isa": ["_OBJECT_"],
  "autoload": true,
  "map": { "bar": "flush" }
}`)
}

// minimalSpecYAML is the YAML twin of minimalSpecJSON.
func minimalSpecYAML() []byte {
	return []byte(`package: clearing
target: "My::Clear"
isa: ["_OBJECT_"]
autoload: true
map:
  bar: flush
`)
}

//
// -----------------------------------------------------------------------------
// Small helpers
// -----------------------------------------------------------------------------

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, content, 0o644))
	return p
}

// readFileString reads a file and returns its contents as string (fatal on error).
func readFileString(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic() seam helpers
// -----------------------------------------------------------------------------

// fakeTempFile is a controllable file-like object for writeFileAtomic tests.
// It lets us force errors on Write and Close without using a real file.
type fakeTempFile struct {
	fileName string
	writeErr error
	closeErr error
}

func (f *fakeTempFile) Name() string { return f.fileName }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Close() error {
	return f.closeErr
}

// restoreWriteFileSeams registers a cleanup that puts the global file seams
// back, so a test can override any of them freely.
func restoreWriteFileSeams(t *testing.T) {
	t.Helper()

	origCreate, origChmod := createTempFile, chmodFile
	origRename, origRemove := renameFile, removeFile
	t.Cleanup(func() {
		createTempFile, chmodFile = origCreate, origChmod
		renameFile, removeFile = origRename, origRemove
	})
}
