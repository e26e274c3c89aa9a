package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		fullPath := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}
}

func TestSourceScanner(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"main.c":          "int main(void) { return 0; }",
		"util.h":          "#pragma once",
		"notes.txt":       "not a source file",
		"subdir/timer.c":  "static int ticks;",
		"subdir/Makefile": "all:",
	})

	scanner := New(tempDir, ".c", ".h")
	scannedFiles, err := scanner.Scan()
	require.NoError(t, err)

	require.Len(t, scannedFiles, 3, "should find 3 C sources")
	for _, file := range scannedFiles {
		assert.Greater(t, file.Size, int64(0))
	}

	// results come back sorted by path
	assert.Equal(t, filepath.Join(tempDir, "main.c"), scannedFiles[0].Path)
	assert.Equal(t, filepath.Join(tempDir, "subdir/timer.c"), scannedFiles[1].Path)
	assert.Equal(t, filepath.Join(tempDir, "util.h"), scannedFiles[2].Path)
}

func TestScannerIgnoreGlobs(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"main.c":       "int main(void) { return 0; }",
		"main_test.c":  "static void t(void) {}",
		"vendor/lib.c": "int lib;",
		"src/driver.c": "int drv;",
	})

	scanner := New(tempDir, ".c")
	scanner.Ignore("vendor", "*_test.c")
	scannedFiles, err := scanner.Scan()
	require.NoError(t, err)

	require.Len(t, scannedFiles, 2)
	assert.Equal(t, filepath.Join(tempDir, "main.c"), scannedFiles[0].Path)
	assert.Equal(t, filepath.Join(tempDir, "src/driver.c"), scannedFiles[1].Path)
}

func TestScannerNoExtensionsMatchesEverything(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"a.c":   "x",
		"b.txt": "y",
	})

	scannedFiles, err := New(tempDir).Scan()
	require.NoError(t, err)
	assert.Len(t, scannedFiles, 2)
}
