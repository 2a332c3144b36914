package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/minho-song/kitdex/internal/catalog"
	"github.com/minho-song/kitdex/internal/config"
	"github.com/minho-song/kitdex/internal/output"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the filterable categories",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	tax, err := catalog.LoadTaxonomy(cfg.Data.TaxonomyPath)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	if outputFmt == "json" {
		return output.JSON(tax.Categories)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tVALUES")
	fmt.Fprintln(tw, "--\t----\t------")

	for _, cat := range tax.Categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", cat.ID, cat.Type, categoryValues(cat))
	}

	return tw.Flush()
}

func categoryValues(cat catalog.Category) string {
	switch cat.Type {
	case catalog.TypeRange:
		return formatFloat(cat.Min) + " to " + formatFloat(cat.Max)
	case catalog.TypeBoolean:
		return "true / false"
	default:
		s := ""
		for i, opt := range cat.Options {
			if i > 0 {
				s += ", "
			}
			s += opt.Value
		}
		return s
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
