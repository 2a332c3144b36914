package store

import (
	"context"
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "kitdex.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestFavorites_AddListRemove(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := db.AddFavorite(ctx, "hg-rx-78-2"); err != nil {
		t.Fatal(err)
	}
	if err := db.AddFavorite(ctx, "mg-zaku-ii"); err != nil {
		t.Fatal(err)
	}
	// Duplicate add is a no-op.
	if err := db.AddFavorite(ctx, "hg-rx-78-2"); err != nil {
		t.Fatal(err)
	}

	favorites, err := db.ListFavorites(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(favorites) != 2 {
		t.Fatalf("favorites = %d, want 2", len(favorites))
	}

	isFav, err := db.IsFavorite(ctx, "hg-rx-78-2")
	if err != nil {
		t.Fatal(err)
	}
	if !isFav {
		t.Error("IsFavorite = false, want true")
	}

	if err := db.RemoveFavorite(ctx, "hg-rx-78-2"); err != nil {
		t.Fatal(err)
	}

	isFav, err = db.IsFavorite(ctx, "hg-rx-78-2")
	if err != nil {
		t.Fatal(err)
	}
	if isFav {
		t.Error("IsFavorite = true after remove, want false")
	}
}

func TestCompare_CapAndOrder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		if err := db.AddCompareItem(ctx, id); err != nil {
			t.Fatalf("AddCompareItem(%s): %v", id, err)
		}
	}

	// Fifth item exceeds the cap.
	if err := db.AddCompareItem(ctx, "e"); err == nil {
		t.Error("expected error adding beyond the compare cap")
	}

	// Re-adding an existing item is a no-op, not a cap violation.
	if err := db.AddCompareItem(ctx, "a"); err != nil {
		t.Errorf("re-adding existing item should be a no-op, got %v", err)
	}

	items, err := db.ListCompareItems(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != MaxCompareItems {
		t.Fatalf("items = %d, want %d", len(items), MaxCompareItems)
	}
	for i, item := range items {
		if item.ProductID != ids[i] {
			t.Errorf("position %d = %s, want %s", i, item.ProductID, ids[i])
		}
	}
}

func TestCompare_RemoveAndClear(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if err := db.AddCompareItem(ctx, id); err != nil {
			t.Fatal(err)
		}
	}

	if err := db.RemoveCompareItem(ctx, "a"); err != nil {
		t.Fatal(err)
	}

	items, err := db.ListCompareItems(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ProductID != "b" {
		t.Fatalf("after remove: %+v", items)
	}

	if err := db.ClearCompareItems(ctx); err != nil {
		t.Fatal(err)
	}
	items, err = db.ListCompareItems(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("after clear: %d items, want 0", len(items))
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "kitdex.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open should create missing directories: %v", err)
	}
	defer db.Close()

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health: %v", err)
	}
}
