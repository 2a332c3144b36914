package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Catalog.Locale != "en" {
		t.Errorf("Locale = %q, want en", cfg.Catalog.Locale)
	}
	if cfg.Catalog.PageSize != 12 {
		t.Errorf("PageSize = %d, want 12", cfg.Catalog.PageSize)
	}
	if cfg.Search.Debounce() != 150*time.Millisecond {
		t.Errorf("Debounce = %v, want 150ms", cfg.Search.Debounce())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[data]
taxonomy_path = "/data/taxonomy.json"
products_path = "/data/products.json"
details_dir = "/data/details"

[catalog]
locale = "ko"
page_size = 24

[store]
path = "/data/kitdex.db"

[search]
debounce_ms = 300
suggest_limit = 5

[weights]
difficulty = 4.0
mobility = 2.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Catalog.Locale != "ko" {
		t.Errorf("Locale = %q, want ko", cfg.Catalog.Locale)
	}
	if cfg.Catalog.PageSize != 24 {
		t.Errorf("PageSize = %d, want 24", cfg.Catalog.PageSize)
	}
	if cfg.Data.TaxonomyPath != "/data/taxonomy.json" {
		t.Errorf("TaxonomyPath = %q", cfg.Data.TaxonomyPath)
	}
	if cfg.Weights["difficulty"] != 4.0 {
		t.Errorf("weights.difficulty = %g, want 4.0", cfg.Weights["difficulty"])
	}
	if cfg.Search.Debounce() != 300*time.Millisecond {
		t.Errorf("Debounce = %v, want 300ms", cfg.Search.Debounce())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "kitdex config init") {
		t.Errorf("error should hint at config init, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "empty taxonomy path",
			mutate:  func(c *Config) { c.Data.TaxonomyPath = "" },
			wantErr: "taxonomy_path",
		},
		{
			name:    "page size out of range",
			mutate:  func(c *Config) { c.Catalog.PageSize = 0 },
			wantErr: "page_size",
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Weights = map[string]float64{"grade": -1} },
			wantErr: "weights.grade",
		},
		{
			name:    "debounce too large",
			mutate:  func(c *Config) { c.Search.DebounceMillis = 60000 },
			wantErr: "debounce_ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}
