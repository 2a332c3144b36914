package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// taxonomyDoc is the on-disk shape of the taxonomy document
type taxonomyDoc struct {
	Categories []Category `json:"categories"`
}

// indexDoc is the on-disk shape of the product index document
type indexDoc struct {
	Products []Product `json:"products"`
}

// LoadTaxonomy reads and validates the taxonomy document
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy: %w", err)
	}

	var doc taxonomyDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}

	tax := &Taxonomy{Categories: doc.Categories}
	if err := tax.Validate(); err != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", err)
	}

	return tax, nil
}

// LoadProducts reads the product index document
func LoadProducts(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product index: %w", err)
	}

	var doc indexDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse product index: %w", err)
	}

	return doc.Products, nil
}

// LoadDetail reads the per-product detail document for the given product.
// The detail document is a superset of the index entry; when it is missing
// or malformed the index entry is returned unchanged, so a broken detail
// file never hides a product that the index knows about.
func LoadDetail(detailsDir string, indexEntry *Product) *Product {
	if detailsDir == "" || indexEntry == nil {
		return indexEntry
	}

	path := filepath.Join(detailsDir, indexEntry.ID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return indexEntry
	}

	var detail Product
	if err := json.Unmarshal(data, &detail); err != nil {
		return indexEntry
	}
	if detail.ID == "" {
		return indexEntry
	}

	return &detail
}

// FindProduct returns the index entry with the given id, or nil
func FindProduct(products []Product, id string) *Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
