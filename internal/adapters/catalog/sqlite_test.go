package catalog

import (
	"context"
	"os"
	"testing"

	"github.com/finquery/finquery-go/internal/domain/entities"
	"github.com/finquery/finquery-go/internal/domain/ports"
)

func stockRows() []ports.CatalogRow {
	return []ports.CatalogRow{
		{ID: "r1", Category: entities.CategoryStock, Identifier: "AAPL", Alias: "Apple", Embedding: []float32{1, 0, 0}},
		{ID: "r2", Category: entities.CategoryStock, Identifier: "MSFT", Alias: "Microsoft", Embedding: []float32{0, 1, 0}},
	}
}

func TestSQLiteIndex_StoreAndNearest(t *testing.T) {
	dir, _ := os.MkdirTemp("", "catalog-test-*")
	defer os.RemoveAll(dir)

	index, err := NewSQLiteIndex(dir)
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}
	defer index.Close()

	ctx := context.Background()
	if err := index.Store(ctx, stockRows()); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	match, err := index.Nearest(ctx, entities.CategoryStock, []float32{0.9, 0.1, 0})
	if err != nil {
		t.Fatalf("nearest failed: %v", err)
	}
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.Identifier != "AAPL" {
		t.Errorf("AAPL should be the nearest, got %s", match.Identifier)
	}
}

func TestSQLiteIndex_CategoriesAreIsolated(t *testing.T) {
	dir, _ := os.MkdirTemp("", "catalog-test-*")
	defer os.RemoveAll(dir)

	index, _ := NewSQLiteIndex(dir)
	defer index.Close()

	ctx := context.Background()
	index.Store(ctx, stockRows())

	// The crypto catalog is empty even though the stock catalog is not.
	match, err := index.Nearest(ctx, entities.CategoryCrypto, []float32{1, 0, 0})
	if err != nil {
		t.Fatalf("nearest failed: %v", err)
	}
	if match != nil {
		t.Errorf("expected no match for empty category, got %+v", match)
	}
}

func TestSQLiteIndex_Clear(t *testing.T) {
	dir, _ := os.MkdirTemp("", "catalog-test-*")
	defer os.RemoveAll(dir)

	index, _ := NewSQLiteIndex(dir)
	defer index.Close()

	ctx := context.Background()
	index.Store(ctx, stockRows())

	if err := index.Clear(ctx, entities.CategoryStock); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	count, err := index.RowCount(ctx, entities.CategoryStock)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 rows after clear, got %d", count)
	}
}

func TestSQLiteIndex_ReplaceOnSameID(t *testing.T) {
	dir, _ := os.MkdirTemp("", "catalog-test-*")
	defer os.RemoveAll(dir)

	index, _ := NewSQLiteIndex(dir)
	defer index.Close()

	ctx := context.Background()
	row := ports.CatalogRow{ID: "r1", Category: entities.CategoryStock, Identifier: "AAPL", Alias: "Apple", Embedding: []float32{1, 0}}
	index.Store(ctx, []ports.CatalogRow{row})
	index.Store(ctx, []ports.CatalogRow{row})

	count, _ := index.RowCount(ctx, entities.CategoryStock)
	if count != 1 {
		t.Errorf("same-ID store must replace, got %d rows", count)
	}
}
