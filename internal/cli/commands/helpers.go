package commands

import (
	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/cli/config"
	"github.com/spf13/cobra"
)

// renderer returns the output renderer for cmd's configured format.
func renderer(cmd *cobra.Command) *Renderer {
	return NewRenderer(cmd.OutOrStdout(), config.GetConfig(cmd.Context()).OutputFormat)
}

// loadCatalog reads the configured catalog, or the demo data.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	return catalog.Load(config.GetConfig(cmd.Context()).Catalog.Path)
}

// kindCompletion completes record kind arguments.
func kindCompletion(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	kinds := catalog.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
