package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minho-song/kitdex/internal/catalog"
	"github.com/minho-song/kitdex/internal/config"
	"github.com/minho-song/kitdex/internal/filter"
	"github.com/minho-song/kitdex/internal/output"
	"github.com/minho-song/kitdex/internal/store"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Manage the compare list",
	Long: fmt.Sprintf(`Manage the side-by-side compare list (up to %d kits).

Examples:
  kitdex compare add hg-rx-78-2
  kitdex compare add mg-zaku-ii
  kitdex compare show`, store.MaxCompareItems),
}

var compareAddCmd = &cobra.Command{
	Use:   "add <kit-id>",
	Short: "Add a kit to the compare list",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompareAdd,
}

var compareRemoveCmd = &cobra.Command{
	Use:     "rm <kit-id>",
	Aliases: []string{"remove"},
	Short:   "Remove a kit from the compare list",
	Args:    cobra.ExactArgs(1),
	RunE:    runCompareRemove,
}

var compareShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the compare matrix",
	RunE:  runCompareShow,
}

var compareClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the compare list",
	RunE:  runCompareClear,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.AddCommand(compareAddCmd)
	compareCmd.AddCommand(compareRemoveCmd)
	compareCmd.AddCommand(compareShowCmd)
	compareCmd.AddCommand(compareClearCmd)
}

func runCompareAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	kitID := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	_, products, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	if catalog.FindProduct(products, kitID) == nil {
		return fmt.Errorf("kit not found: %s", kitID)
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	if err := db.AddCompareItem(ctx, kitID); err != nil {
		return err
	}

	fmt.Printf("Added %s to compare list\n", kitID)
	return nil
}

func runCompareRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	if err := db.RemoveCompareItem(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to remove compare item: %w", err)
	}

	fmt.Printf("Removed %s from compare list\n", args[0])
	return nil
}

func runCompareClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	if err := db.ClearCompareItems(ctx); err != nil {
		return fmt.Errorf("failed to clear compare list: %w", err)
	}

	fmt.Println("Compare list cleared")
	return nil
}

func runCompareShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	tax, products, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	items, err := db.ListCompareItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to list compare items: %w", err)
	}

	var kits []*catalog.Product
	for _, item := range items {
		if p := catalog.FindProduct(products, item.ProductID); p != nil {
			kits = append(kits, p)
		}
	}

	return output.Output(outputFmt, buildCompareView(tax, kits, cfg.Catalog.Locale))
}

// buildCompareView lays kits out as columns and attributes as rows
func buildCompareView(tax *catalog.Taxonomy, kits []*catalog.Product, locale string) *output.CompareView {
	view := &output.CompareView{Headers: []string{"ATTRIBUTE"}}
	for _, p := range kits {
		view.Headers = append(view.Headers, p.Name(locale))
	}

	fixed := []struct {
		label string
		value func(*catalog.Product) string
	}{
		{"ID", func(p *catalog.Product) string { return p.ID }},
		{"Model", func(p *catalog.Product) string { return p.ModelNumber }},
		{"Price", func(p *catalog.Product) string {
			if p.Price == nil {
				return "-"
			}
			return fmt.Sprintf("%.2f", *p.Price)
		}},
		{"Released", func(p *catalog.Product) string {
			if p.ReleaseYear == nil {
				return "-"
			}
			return strconv.Itoa(*p.ReleaseYear)
		}},
	}

	for _, f := range fixed {
		row := []string{f.label}
		for _, p := range kits {
			row = append(row, f.value(p))
		}
		view.Rows = append(view.Rows, row)
	}

	for _, cat := range tax.Categories {
		row := []string{cat.ID}
		for _, p := range kits {
			row = append(row, formatAttr(filter.ResolveField(p, cat.ID)))
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}

func formatAttr(v catalog.AttrValue) string {
	if v.IsZero() {
		return "-"
	}
	if n, ok := v.Number(); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	if b, ok := v.Bool(); ok {
		return strconv.FormatBool(b)
	}
	if vs, ok := v.Strings(); ok {
		return strings.Join(vs, ", ")
	}
	return "-"
}
