// SPDX-License-Identifier: MIT
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthospace/matrix"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Output.Precision)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("ORTHOSPACE_LOG_LEVEL", "debug")
	t.Setenv("ORTHOSPACE_LOG_DEV", "true")
	t.Setenv("ORTHOSPACE_OUTPUT", "yaml")
	t.Setenv("ORTHOSPACE_PRECISION", "8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 8, cfg.Output.Precision)
}

func TestLoadIgnoresSectionPrefixedKeys(t *testing.T) {
	t.Setenv("ORTHOSPACE_LOGGING_LOG_LEVEL", "debug")
	t.Setenv("ORTHOSPACE_OUTPUT_OUTPUT", "yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "auto", cfg.Output.Format)
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("ORTHOSPACE_PRECISION", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, Default(), LoadOrDefault())
}

func TestReadMatrix(t *testing.T) {
	m, err := ReadMatrix(strings.NewReader("rows:\n  - [1, 2, 3]\n  - [4, 5, 6]\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

func TestReadMatrixErrors(t *testing.T) {
	_, err := ReadMatrix(strings.NewReader("rows: []\n"))
	require.ErrorIs(t, err, ErrEmptyMatrixFile)

	_, err = ReadMatrix(strings.NewReader("rows:\n  - [1, 2]\n  - [3]\n"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = ReadMatrix(strings.NewReader("rows: {a: 1}\n"))
	require.Error(t, err)

	_, err = ReadMatrix(strings.NewReader(""))
	require.ErrorIs(t, err, io.EOF)
}

func TestLoadMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: [[2, 0], [0, 2]]\n"), 0o600))

	m, err := LoadMatrix(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())

	_, err = LoadMatrix(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
