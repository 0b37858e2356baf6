package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/cli/config"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// run executes cmd with a config carrying output format and catalog path.
func run(t *testing.T, cmd *cobra.Command, output, catalogPath string, args ...string) (string, error) {
	t.Helper()
	cfg := config.Default()
	cfg.OutputFormat = output
	cfg.Catalog.Path = catalogPath

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	cmd.SetContext(config.WithConfig(context.Background(), cfg))

	err := cmd.Execute()
	return buf.String(), err
}

// =============================================================================
// routes
// =============================================================================

func TestRouteTable_ExamplesResolve(t *testing.T) {
	for _, r := range routeTable {
		t.Run(r.Example, func(t *testing.T) {
			res := viewstate.ResolveURL(r.Example)
			assert.Equal(t, r.Page, res.Route.Page)
		})
	}
}

func TestRoutesCommand(t *testing.T) {
	out, err := run(t, NewRoutesCommand(), "json", "")
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, len(routeTable))

	byPattern := map[string]map[string]string{}
	for _, row := range rows {
		byPattern[row["pattern"]] = row
	}
	assert.Equal(t, "?dealId=", byPattern["/deals"]["panel"])
	assert.Equal(t, "table|board", byPattern["/deals/:view"]["variants"])
	assert.Equal(t, "v1|v2", byPattern["/deals/:view/:dealId"]["variants"])
	assert.Empty(t, byPattern["/components"]["panel"])
}

// =============================================================================
// catalog
// =============================================================================

func TestCatalogCommand(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		args       []string
		wantBody   []string
		rejectBody []string
		wantErr    error
	}{
		{
			name:     "counts per kind",
			output:   "text",
			args:     []string{"list"},
			wantBody: []string{"customer-profile", "discovery-question", "(10 rows)"},
		},
		{
			name:       "rows of one kind",
			output:     "text",
			args:       []string{"list", "deals"},
			wantBody:   []string{"Acme Platform Rollout", "Hooli Pilot", "Discovery"},
			rejectBody: []string{"Acme Corporation"},
		},
		{
			name:     "markdown when piped",
			output:   "auto",
			args:     []string{"list", "deal"},
			wantBody: []string{"| d1 | Acme Platform Rollout |"},
		},
		{
			name:     "show as yaml",
			output:   "text",
			args:     []string{"show", "deal", "d1"},
			wantBody: []string{"name: Acme Platform Rollout", "stage: Negotiation"},
		},
		{
			name:     "show as json",
			output:   "json",
			args:     []string{"show", "company", "co-acme"},
			wantBody: []string{`"Name": "Acme Corporation"`},
		},
		{
			name:    "show unknown record",
			output:  "text",
			args:    []string{"show", "deal", "d404"},
			wantErr: catalog.ErrNotFound,
		},
		{
			name:     "check demo data",
			output:   "text",
			args:     []string{"check"},
			wantBody: []string{"No issues found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, NewCatalogCommand(), tt.output, "", tt.args...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantBody {
				assert.Contains(t, out, want)
			}
			for _, reject := range tt.rejectBody {
				assert.NotContains(t, out, reject)
			}
		})
	}
}

func TestCatalogCommand_UnknownKind(t *testing.T) {
	_, err := run(t, NewCatalogCommand(), "text", "", "list", "widgets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown record kind "widgets"`)
}

func TestCatalogCheck_ReportsIssues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("deals:\n  - id: d1\n    company_id: co-missing\n"), 0o644))

	out, err := run(t, NewCatalogCommand(), "text", path, "check")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 catalog issue(s)")
	assert.Contains(t, out, `unknown company "co-missing"`)
}

// =============================================================================
// export
// =============================================================================

func TestExportDeal(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantBody   []string
		rejectBody []string
	}{
		{
			name:       "classic brief",
			args:       []string{"deal", "d1"},
			wantBody:   []string{"# Acme Platform Rollout", "## Timeline", "Technical deep dive"},
			rejectBody: []string{"<section", "Stakeholder map"},
		},
		{
			name:     "stakeholder brief",
			args:     []string{"deal", "d1", "--variant", "v2"},
			wantBody: []string{"## Stakeholder map", "Maria Chen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, NewExportCommand(), "text", "", tt.args...)
			require.NoError(t, err)
			for _, want := range tt.wantBody {
				assert.Contains(t, out, want)
			}
			for _, reject := range tt.rejectBody {
				assert.NotContains(t, out, reject)
			}
		})
	}
}

func TestExportDeal_Errors(t *testing.T) {
	t.Run("unknown deal", func(t *testing.T) {
		_, err := run(t, NewExportCommand(), "text", "", "deal", "d404")
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := run(t, NewExportCommand(), "text", "", "deal", "d1", "--variant", "v9")
		require.ErrorIs(t, err, viewstate.ErrUnknownVariant)
	})
}

// =============================================================================
// serve
// =============================================================================

func TestServeCommandMetadata(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.Contains(t, cmd.Aliases, "ui")
	for _, name := range []string{"port", "watch", "dev", "page-size", "no-browser"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestSessionSecret(t *testing.T) {
	a, b := sessionSecret(), sessionSecret()
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
