package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AddFavorite saves a product. Adding an already-saved product is a no-op.
func (db *DB) AddFavorite(ctx context.Context, productID string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO favorites (id, product_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(product_id) DO NOTHING
	`, uuid.New().String(), productID, time.Now())
	return err
}

// RemoveFavorite deletes a saved product
func (db *DB) RemoveFavorite(ctx context.Context, productID string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM favorites WHERE product_id = ?`, productID)
	return err
}

// IsFavorite reports whether the product is saved
func (db *DB) IsFavorite(ctx context.Context, productID string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM favorites WHERE product_id = ?
	`, productID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFavorites returns all saved products, oldest first
func (db *DB) ListFavorites(ctx context.Context) ([]Favorite, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, product_id, created_at FROM favorites
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.ProductID, &f.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// AddCompareItem appends a product to the compare list. The list is
// capped at MaxCompareItems; adding beyond the cap fails, adding a
// product already on the list is a no-op.
func (db *DB) AddCompareItem(ctx context.Context, productID string) error {
	var exists int
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM compare_items WHERE product_id = ?
	`, productID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM compare_items`).Scan(&count); err != nil {
		return err
	}
	if count >= MaxCompareItems {
		return fmt.Errorf("compare list is full (max %d items)", MaxCompareItems)
	}

	var maxPos int
	if err := db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position), 0) FROM compare_items
	`).Scan(&maxPos); err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO compare_items (id, product_id, position, created_at)
		VALUES (?, ?, ?, ?)
	`, uuid.New().String(), productID, maxPos+1, time.Now())
	return err
}

// RemoveCompareItem drops a product from the compare list
func (db *DB) RemoveCompareItem(ctx context.Context, productID string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM compare_items WHERE product_id = ?`, productID)
	return err
}

// ListCompareItems returns the compare list in position order
func (db *DB) ListCompareItems(ctx context.Context) ([]CompareItem, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, product_id, position, created_at FROM compare_items
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CompareItem
	for rows.Next() {
		var item CompareItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Position, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ClearCompareItems empties the compare list
func (db *DB) ClearCompareItems(ctx context.Context) error {
	_, err := db.ExecContext(ctx, `DELETE FROM compare_items`)
	return err
}
