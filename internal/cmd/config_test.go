package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeConfig(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewConfigCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigPathCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FF_CONFIG_DIR", dir)

	out, err := executeConfig(t, "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml")+"\n", out)
}

func TestConfigShowCommand_Defaults(t *testing.T) {
	t.Setenv("FF_CONFIG_DIR", t.TempDir())

	out, err := executeConfig(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "history: true")
	assert.Contains(t, out, "log_level: warn")
}

func TestConfigSetThenShow(t *testing.T) {
	t.Setenv("FF_CONFIG_DIR", t.TempDir())
	root := t.TempDir()

	out, err := executeConfig(t, "set", "root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "root = "+root)

	out, err = executeConfig(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "root: "+root)
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	t.Setenv("FF_CONFIG_DIR", t.TempDir())

	_, err := executeConfig(t, "set", "colour", "red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestConfigSetValidatesValue(t *testing.T) {
	t.Setenv("FF_CONFIG_DIR", t.TempDir())

	_, err := executeConfig(t, "set", "log_level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level")
}

func TestConfigSetRejectsMissingRoot(t *testing.T) {
	t.Setenv("FF_CONFIG_DIR", t.TempDir())

	_, err := executeConfig(t, "set", "root", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
