package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/minho-song/kitdex/internal/catalog"
	"github.com/minho-song/kitdex/internal/config"
	"github.com/minho-song/kitdex/internal/session"
)

var (
	// Version info set from main
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	// Global flags
	configPath string
	outputFmt  string
)

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kitdex",
	Short: "Browse and filter a hobby-kit catalog from the terminal",
	Long: `kitdex is a local catalog browser for hobby model kits.

It provides:
  - Multi-category filtering (grade, difficulty, mobility, ...)
  - Name and model-number search, including Korean consonant search
  - Weighted match scoring for ranking filtered results
  - Favorites and a side-by-side compare list
  - MCP server for AI assistant integration`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default: ~/.config/kitdex/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table",
		"output format (table, json)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(home, ".config", "kitdex", "config.toml")
	}
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kitdex %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", buildTime)
	},
}

// loadCatalog reads the taxonomy and product index named by the config
func loadCatalog(cfg *config.Config) (*catalog.Taxonomy, []catalog.Product, error) {
	tax, err := catalog.LoadTaxonomy(cfg.Data.TaxonomyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}

	products, err := catalog.LoadProducts(cfg.Data.ProductsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load products: %w", err)
	}

	return tax, products, nil
}

// newSession builds a filter session over the configured catalog
func newSession(cfg *config.Config) (*session.Session, error) {
	tax, products, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	return session.New(tax, products, cfg.Catalog.Locale, cfg.Weights, cfg.Search.Debounce()), nil
}
