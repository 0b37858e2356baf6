package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"version", "serve", "routes", "catalog", "export", "completion"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	for _, name := range []string{"config", "catalog", "log-level", "log-format", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
}

func TestRootCmd_OutputFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "catalog", "list", "deals", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "d1"`)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "acronym.yaml"), []byte("output: markdown\n"), 0o644))

	out, err := execute(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "| /deals |")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "routes", "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "acronym")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}
