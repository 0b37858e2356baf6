package commands

import (
	"fmt"

	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/spf13/cobra"
)

// NewCatalogCommand creates the catalog command and its subcommands.
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the dashboard data",
		Long: `Inspect the catalog the dashboard serves: the embedded demo data, or the
YAML file set with --catalog.`,
	}

	cmd.AddCommand(newCatalogListCommand())
	cmd.AddCommand(newCatalogShowCommand())
	cmd.AddCommand(newCatalogCheckCommand())

	return cmd
}

func newCatalogListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [kind]",
		Short: "List records of a kind, or record counts per kind",
		Example: `  acronym catalog list
  acronym catalog list deals -o json`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: kindCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			r := renderer(cmd)

			if len(args) == 0 {
				counts := c.Counts()
				var rows [][]string
				for _, k := range catalog.Kinds() {
					rows = append(rows, []string{string(k), fmt.Sprint(counts[k])})
				}
				return r.Table([]string{"Kind", "Count"}, rows)
			}

			kind, err := catalog.ParseKind(args[0])
			if err != nil {
				return err
			}
			var rows [][]string
			for _, row := range c.Rows(kind) {
				rows = append(rows, []string{row.ID, row.Title, row.Category})
			}
			return r.Table([]string{"ID", "Title", "Category"}, rows)
		},
	}
}

func newCatalogShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "show <kind> <id>",
		Short:             "Show one record",
		Example:           `  acronym catalog show deal d1`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: kindCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			kind, err := catalog.ParseKind(args[0])
			if err != nil {
				return err
			}
			rec, ok := c.Lookup(kind, args[1])
			if !ok {
				return fmt.Errorf("%w: %s %q", catalog.ErrNotFound, kind, args[1])
			}
			return renderer(cmd).Record(rec)
		},
	}
}

func newCatalogCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report references to records that do not exist",
		Long: `Report references to records that do not exist. The dashboard renders
them as "not found"; check lists them so they can be fixed at the source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			issues := c.Check()
			if len(issues) == 0 {
				renderer(cmd).Println("No issues found.")
				return nil
			}
			rows := make([][]string, len(issues))
			for i, is := range issues {
				rows[i] = []string{string(is.Kind), is.ID, is.Message}
			}
			if err := renderer(cmd).Table([]string{"Kind", "ID", "Issue"}, rows); err != nil {
				return err
			}
			return fmt.Errorf("%d catalog issue(s)", len(issues))
		},
	}
}
