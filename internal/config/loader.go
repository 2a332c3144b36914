package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'kitdex config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Data.TaxonomyPath, err = expandPath(c.Data.TaxonomyPath)
	if err != nil {
		return err
	}

	c.Data.ProductsPath, err = expandPath(c.Data.ProductsPath)
	if err != nil {
		return err
	}

	c.Data.DetailsDir, err = expandPath(c.Data.DetailsDir)
	if err != nil {
		return err
	}

	c.Store.Path, err = expandPath(c.Store.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Data.TaxonomyPath == "" {
		errs = append(errs, errors.New("data.taxonomy_path is required"))
	}
	if c.Data.ProductsPath == "" {
		errs = append(errs, errors.New("data.products_path is required"))
	}

	if c.Catalog.Locale == "" {
		errs = append(errs, errors.New("catalog.locale is required"))
	}
	if c.Catalog.PageSize < 1 || c.Catalog.PageSize > 200 {
		errs = append(errs, errors.New("catalog.page_size must be between 1 and 200"))
	}

	if c.Store.Path == "" {
		errs = append(errs, errors.New("store.path is required"))
	}

	if c.Search.DebounceMillis < 0 || c.Search.DebounceMillis > 5000 {
		errs = append(errs, errors.New("search.debounce_ms must be between 0 and 5000"))
	}
	if c.Search.SuggestLimit < 1 || c.Search.SuggestLimit > 50 {
		errs = append(errs, errors.New("search.suggest_limit must be between 1 and 50"))
	}

	for id, w := range c.Weights {
		if w < 0 {
			errs = append(errs, fmt.Errorf("weights.%s must not be negative", id))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates necessary directories for the store and data
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Store.Path),
		filepath.Dir(c.Data.TaxonomyPath),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
