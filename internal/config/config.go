package config

import "time"

// Config represents the application configuration
type Config struct {
	Data    DataConfig         `toml:"data"`
	Catalog CatalogConfig      `toml:"catalog"`
	Store   StoreConfig        `toml:"store"`
	Search  SearchConfig       `toml:"search"`
	Weights map[string]float64 `toml:"weights"`
}

// DataConfig locates the catalog documents on disk
type DataConfig struct {
	TaxonomyPath string `toml:"taxonomy_path"`
	ProductsPath string `toml:"products_path"`
	DetailsDir   string `toml:"details_dir"`
}

// CatalogConfig contains display settings
type CatalogConfig struct {
	Locale   string `toml:"locale"`
	PageSize int    `toml:"page_size"`
}

// StoreConfig contains the favorites database settings
type StoreConfig struct {
	Path string `toml:"path"`
}

// SearchConfig contains search behavior settings
type SearchConfig struct {
	DebounceMillis int `toml:"debounce_ms"`
	SuggestLimit   int `toml:"suggest_limit"`
}

// Debounce returns the re-filter debounce interval
func (s SearchConfig) Debounce() time.Duration {
	return time.Duration(s.DebounceMillis) * time.Millisecond
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Data: DataConfig{
			TaxonomyPath: "~/.local/share/kitdex/taxonomy.json",
			ProductsPath: "~/.local/share/kitdex/products.json",
			DetailsDir:   "~/.local/share/kitdex/details",
		},
		Catalog: CatalogConfig{
			Locale:   "en",
			PageSize: 12,
		},
		Store: StoreConfig{
			Path: "~/.local/share/kitdex/kitdex.db",
		},
		Search: SearchConfig{
			DebounceMillis: 150,
			SuggestLimit:   8,
		},
		Weights: map[string]float64{},
	}
}
