package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "acronym.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("port", 0, "")
	fs.Bool("watch", true, "")
	fs.String("catalog", "", "")
	fs.String("log-level", "", "")
	fs.StringP("output", "o", "", "")
	fs.Bool("no-browser", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

// =============================================================================
// LoadConfig
// =============================================================================

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	got, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Empty(t, got.File)
	assert.Equal(t, Default(), got.Config)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, `
server:
  port: 9000
  auto_open: true
list:
  page_size: 10
log:
  level: debug
output: json
`)

	t.Run("file over defaults", func(t *testing.T) {
		got, err := LoadConfig("", nil)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "acronym.yaml"), got.File)
		assert.Equal(t, 9000, got.Server.Port)
		assert.True(t, got.Server.AutoOpen)
		assert.True(t, got.Server.Watch, "unset keys keep defaults")
		assert.Equal(t, 10, got.List.PageSize)
		assert.Equal(t, "debug", got.Log.Level)
		assert.Equal(t, "json", got.OutputFormat)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("ACRONYM_SERVER_PORT", "9100")
		t.Setenv("ACRONYM_LIST_PAGE_SIZE", "5")

		got, err := LoadConfig("", nil)
		require.NoError(t, err)

		assert.Equal(t, 9100, got.Server.Port)
		assert.Equal(t, 5, got.List.PageSize)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("ACRONYM_SERVER_PORT", "9100")

		got, err := LoadConfig("", testFlags(t, "--port", "9200", "-o", "text", "--no-browser"))
		require.NoError(t, err)

		assert.Equal(t, 9200, got.Server.Port)
		assert.Equal(t, "text", got.OutputFormat)
	})

	t.Run("unset flags do not override", func(t *testing.T) {
		got, err := LoadConfig("", testFlags(t))
		require.NoError(t, err)

		assert.Equal(t, 9000, got.Server.Port)
	})
}

func TestLoadConfig_SearchesUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "server:\n  port: 7000\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	got, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 7000, got.Server.Port)
}

func TestLoadConfig_CatalogPath(t *testing.T) {
	root := t.TempDir()
	cfgDir := filepath.Join(root, "conf")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	path := writeConfig(t, cfgDir, "catalog:\n  path: data/catalog.yaml\n")
	t.Chdir(root)

	t.Run("relative to the config file", func(t *testing.T) {
		got, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cfgDir, "data", "catalog.yaml"), got.Catalog.Path)
	})

	t.Run("flag is taken as given", func(t *testing.T) {
		got, err := LoadConfig(path, testFlags(t, "--catalog", "other.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "other.yaml", got.Catalog.Path)
	})

	t.Run("env is taken as given", func(t *testing.T) {
		t.Setenv("ACRONYM_CATALOG_PATH", "env.yaml")
		got, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "env.yaml", got.Catalog.Path)
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, dir, "server:\n  port: 70000\n")
		_, err := LoadConfig(path, nil)
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "server.port")
	})
}

// =============================================================================
// Validate
// =============================================================================

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, errSubstr: "server.port"},
		{name: "page size zero", mutate: func(c *Config) { c.List.PageSize = 0 }, errSubstr: "list.page_size"},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "loud" }, errSubstr: "log.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "xml" }, errSubstr: "log.format"},
		{name: "unknown output", mutate: func(c *Config) { c.OutputFormat = "csv" }, errSubstr: "output"},
		{name: "uppercase level", mutate: func(c *Config) { c.Log.Level = "WARN" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)

			err := c.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

// =============================================================================
// Logger and context
// =============================================================================

func TestNewLogger(t *testing.T) {
	t.Run("json at warn", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)
		require.NoError(t, err)

		l.Info("hidden")
		l.Warn("shown", "deal", "d1")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"deal":"d1"`)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := NewLogger(LogConfig{Level: "debug", Format: "text"}, &buf)
		require.NoError(t, err)

		l.Debug("reloaded", "streams", 2)

		assert.Contains(t, buf.String(), "streams=2")
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := NewLogger(LogConfig{Level: "chatty"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestContextAccessors(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, Default(), GetConfig(ctx))
	assert.NotNil(t, GetLogger(ctx))

	cfg := Default()
	cfg.Server.Port = 1234
	logger := slog.New(slog.DiscardHandler)
	ctx = WithLogger(WithConfig(ctx, cfg), logger)

	assert.Same(t, cfg, GetConfig(ctx))
	assert.Same(t, logger, GetLogger(ctx))
}
