package store

import "time"

// MaxCompareItems caps the compare list; the compare view renders side
// by side and more than four columns stops being readable.
const MaxCompareItems = 4

// Favorite is one saved product
type Favorite struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CompareItem is one slot of the compare list
type CompareItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
