package commands

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/ui/features/deals"
	"github.com/leapstack-labs/acronym/internal/viewstate"
	"github.com/spf13/cobra"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Variant string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export dashboard views as Markdown",
	}
	cmd.AddCommand(newExportDealCommand())
	return cmd
}

func newExportDealCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "deal <dealId>",
		Short: "Export a deal brief as Markdown",
		Long: `Render a deal the way the side panel shows it and convert it to Markdown,
ready to paste into notes or a CRM.`,
		Example: `  acronym export deal d1
  acronym export deal d2 --variant v2 > globex.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			md, err := ExportDeal(cmd, c, args[0], opts.Variant)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), md)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Variant, "variant", viewstate.DealDetailVariants.Default,
		"Detail variant ("+strings.Join(viewstate.DealDetailVariants.Values, "|")+")")
	_ = cmd.RegisterFlagCompletionFunc("variant", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return viewstate.DealDetailVariants.Values, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// ExportDeal renders deal id as Markdown.
func ExportDeal(cmd *cobra.Command, c *catalog.Catalog, id, variant string) (string, error) {
	if !viewstate.DealDetailVariants.Has(variant) {
		return "", fmt.Errorf("%w: %q", viewstate.ErrUnknownVariant, variant)
	}
	sel := viewstate.Select(id, c.DealDetail)
	if !sel.Found {
		return "", fmt.Errorf("%w: deal %q", catalog.ErrNotFound, id)
	}

	body, err := common.HTML(cmd.Context(), deals.Detail(c, sel, deals.DetailOptions{
		Mode:    viewstate.Embedded,
		Variant: variant,
	}))
	if err != nil {
		return "", fmt.Errorf("failed to render deal: %w", err)
	}

	md, err := htmltomarkdown.ConvertString("<h1>" + sel.Value.Name + "</h1>" + string(body))
	if err != nil {
		return "", fmt.Errorf("failed to convert deal: %w", err)
	}
	return strings.TrimSpace(md), nil
}
