package run

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverkit/cmcdc/internal/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{".c", ".h"}, cfg.Extensions)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 16, cfg.MaxConditions)
	assert.Positive(t, cfg.MaxFileSize)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".cmcdc.yaml")
	content := `name: myproject
extensions: [".c"]
format: csv
max_conditions: 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "myproject", cfg.Name)
	assert.Equal(t, []string{".c"}, cfg.Extensions)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, 8, cfg.MaxConditions)
	// unset fields keep their defaults
	assert.Equal(t, DefaultConfig().MaxFileSize, cfg.MaxFileSize)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

const runSource = `int sign(int x, int y) {
    if (x > 0 && y > 0) {
        return 1;
    }
    if (x < 0 || y < 0) {
        return -1;
    }
    return 0;
}
`

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sign.c")
	require.NoError(t, os.WriteFile(path, []byte(runSource), 0o644))

	engine := New(nil, DefaultConfig())
	tables, err := engine.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	assert.Equal(t, types.KindIf, tables[0].Decision.Kind)
	assert.Equal(t, "x > 0 && y > 0", tables[0].Decision.Expr)
	assert.Equal(t, []string{"x > 0", "y > 0"}, tables[0].Leaves)
	assert.ElementsMatch(t, []string{"FT", "TF", "TT"}, tables[0].Patterns)

	assert.Equal(t, "x < 0 || y < 0", tables[1].Decision.Expr)
	assert.ElementsMatch(t, []string{"FF", "FT", "TF"}, tables[1].Patterns)
}

func TestProcessPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.c"), []byte(runSource), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.c"), []byte(runSource), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("x"), 0o644))

	engine := New(nil, DefaultConfig())
	tables, err := engine.ProcessPaths(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Len(t, tables, 4)

	// ordered by file then line
	assert.Equal(t, filepath.Join(dir, "a.c"), tables[0].Decision.Filename)
	assert.Equal(t, filepath.Join(dir, "a.c"), tables[1].Decision.Filename)
	assert.Equal(t, filepath.Join(dir, "b.c"), tables[2].Decision.Filename)
	assert.LessOrEqual(t, tables[0].Decision.Line, tables[1].Decision.Line)
}

func TestProcessFileConditionCap(t *testing.T) {
	source := `int f(int a, int b, int c) {
    if (a && b && c) {
        return 1;
    }
    if (a || b) {
        return 2;
    }
    return 0;
}
`
	dir := t.TempDir()
	path := filepath.Join(dir, "cap.c")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	cfg := DefaultConfig()
	cfg.MaxConditions = 2

	tables, err := New(nil, cfg).ProcessFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, tables, 1, "the three-condition decision is skipped")
	assert.Equal(t, "a || b", tables[0].Decision.Expr)
}

func TestProcessPathsMissingPath(t *testing.T) {
	engine := New(nil, DefaultConfig())
	_, err := engine.ProcessPaths(context.Background(), []string{"/does/not/exist"})
	assert.Error(t, err)
}
