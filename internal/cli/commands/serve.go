package commands

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/cli/config"
	"github.com/leapstack-labs/acronym/internal/ui"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	NoBrowser bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"ui"},
		Short:   "Start the ACRONYM dashboard",
		Long: `Start a local web server serving the sales enablement dashboard.

The dashboard provides:
- Deals as a table or a pipeline board, with a side panel per deal
- Meetings (upcoming and past) with first-call and post-call views
- Companies and contacts
- The sales playbook: profiles, personas, questions, FAQs, objections, positioning

When --catalog points at a YAML file and watching is on, edits to the file
re-render every open tab.`,
		Example: `  # Serve the built-in demo data
  acronym serve

  # Serve your own catalog on a custom port
  acronym serve --catalog ./catalog.yaml --port 3000

  # Start without auto-opening browser
  acronym serve --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().Int("port", config.DefaultPort, "Port to serve on")
	cmd.Flags().Bool("watch", true, "Reload the catalog file when it changes")
	cmd.Flags().Bool("dev", false, "Serve assets from disk and enable live reload")
	cmd.Flags().Int("page-size", config.DefaultPageSize, "Rows per list page")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	store, err := catalog.NewStore(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	for _, issue := range store.Catalog().Check() {
		logger.Warn("catalog reference", "issue", issue.String())
	}

	secret := cfg.Server.SessionSecret
	if secret == "" {
		secret = sessionSecret()
		logger.Debug("no session secret configured, tabs will not survive a restart")
	}

	server := ui.NewServer(ui.Config{
		Store:         store,
		Port:          cfg.Server.Port,
		Watch:         cfg.Server.Watch,
		Dev:           cfg.Server.Dev,
		SessionSecret: secret,
		PageSize:      cfg.List.PageSize,
		Logger:        logger,
	})

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	if cfg.Server.AutoOpen && !opts.NoBrowser {
		go openBrowser(url)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Starting ACRONYM on %s\n", url)
	_, _ = fmt.Fprintln(out, "Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// sessionSecret generates a per-process cookie signing key.
func sessionSecret() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
