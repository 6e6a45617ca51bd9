package catalog

import (
	"context"
	"testing"

	"github.com/finquery/finquery-go/internal/domain/entities"
	"github.com/finquery/finquery-go/internal/domain/ports"
)

func TestInMemoryIndex_Nearest(t *testing.T) {
	index := NewInMemoryIndex()
	ctx := context.Background()

	index.Store(ctx, []ports.CatalogRow{
		{ID: "r1", Category: entities.CategoryCrypto, Identifier: "BTC", Alias: "Bitcoin", Embedding: []float32{1, 0}},
		{ID: "r2", Category: entities.CategoryCrypto, Identifier: "ETH", Alias: "Ethereum", Embedding: []float32{0, 1}},
	})

	match, err := index.Nearest(ctx, entities.CategoryCrypto, []float32{0.1, 0.95})
	if err != nil {
		t.Fatalf("nearest failed: %v", err)
	}
	if match == nil || match.Identifier != "ETH" {
		t.Errorf("expected ETH, got %+v", match)
	}
}

func TestInMemoryIndex_EmptyCategory(t *testing.T) {
	index := NewInMemoryIndex()

	match, err := index.Nearest(context.Background(), entities.CategoryWeather, []float32{1, 0})
	if err != nil {
		t.Fatalf("nearest failed: %v", err)
	}
	if match != nil {
		t.Error("empty category must yield nil")
	}
}

func TestInMemoryIndex_Clear(t *testing.T) {
	index := NewInMemoryIndex()
	ctx := context.Background()

	index.Store(ctx, []ports.CatalogRow{
		{ID: "r1", Category: entities.CategoryStock, Identifier: "AAPL", Alias: "Apple", Embedding: []float32{1}},
	})
	index.Clear(ctx, entities.CategoryStock)

	match, _ := index.Nearest(ctx, entities.CategoryStock, []float32{1})
	if match != nil {
		t.Error("cleared category must yield nil")
	}
}
