package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finquery/finquery-go/internal/domain/entities"
)

func TestIndexUseCase_EmbedsNamesAndAliases(t *testing.T) {
	index := &mockIndex{}
	uc := NewIndexUseCase(&mockEmbedder{}, index, nil)

	entries := []entities.CatalogEntry{
		{ID: "AAPL", Name: "Apple Inc.", Aliases: []string{"Apple", "AAPL"}},
		{ID: "MSFT", Name: "Microsoft Corporation", Aliases: []string{"Microsoft"}},
	}
	err := uc.Index(context.Background(), entities.CategoryStock, entries)

	require.NoError(t, err)
	require.Len(t, index.stored, 5)
	assert.Equal(t, []entities.Category{entities.CategoryStock}, index.cleared)
	for _, row := range index.stored {
		assert.NotEmpty(t, row.ID)
		assert.NotEmpty(t, row.Embedding, "every row must carry an embedding")
		assert.Equal(t, entities.CategoryStock, row.Category)
	}
	assert.Equal(t, "AAPL", index.stored[0].Identifier)
	assert.Equal(t, "Apple Inc.", index.stored[0].Alias)
}

func TestIndexUseCase_DeduplicatesAliases(t *testing.T) {
	index := &mockIndex{}
	uc := NewIndexUseCase(&mockEmbedder{}, index, nil)

	entries := []entities.CatalogEntry{
		{ID: "BTC", Name: "Bitcoin", Aliases: []string{"bitcoin", "BTC", "Bitcoin"}},
	}
	err := uc.Index(context.Background(), entities.CategoryCrypto, entries)

	require.NoError(t, err)
	// "Bitcoin"/"bitcoin" collapse; BTC stays.
	assert.Len(t, index.stored, 2)
}

func TestIndexUseCase_EmptyEntriesIsNoop(t *testing.T) {
	index := &mockIndex{}
	uc := NewIndexUseCase(&mockEmbedder{}, index, nil)

	err := uc.Index(context.Background(), entities.CategoryWeather, nil)

	require.NoError(t, err)
	assert.Empty(t, index.stored)
	assert.Empty(t, index.cleared, "nothing to clear when there is nothing to index")
}

func TestIndexUseCase_EmbeddingFailure(t *testing.T) {
	index := &mockIndex{}
	uc := NewIndexUseCase(&mockEmbedder{err: errors.New("model offline")}, index, nil)

	err := uc.Index(context.Background(), entities.CategoryStock, []entities.CatalogEntry{
		{ID: "AAPL", Name: "Apple Inc."},
	})

	require.Error(t, err)
	assert.Empty(t, index.stored, "failed batch must not be partially stored")
}
