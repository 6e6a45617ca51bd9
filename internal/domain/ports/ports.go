// Package ports defines interfaces for external capabilities.
// Usecases depend on these abstractions, not concrete implementations;
// adapters implement them. The pipeline stays testable with mock capabilities.
package ports

import (
	"context"

	"github.com/finquery/finquery-go/internal/domain/entities"
)

// RankedLabel is one candidate label with its classifier confidence.
type RankedLabel struct {
	Label string
	Score float64
}

// Classifier ranks candidate labels for a piece of text (zero-shot).
type Classifier interface {
	// Classify returns the candidate labels ordered by descending confidence.
	Classify(ctx context.Context, text string, candidates []string) ([]RankedLabel, error)
}

// EmbeddingService generates vector embeddings for text.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// CatalogRow is one embedded alias pointing at a canonical identifier.
type CatalogRow struct {
	ID         string
	Category   entities.Category
	Identifier string
	Alias      string
	Embedding  []float32
}

// CatalogMatch is the nearest catalog row found for a query embedding.
type CatalogMatch struct {
	Identifier string
	Alias      string
	Score      float64
}

// CatalogIndex persists and queries per-category catalog embeddings.
type CatalogIndex interface {
	// Store saves embedded catalog rows.
	Store(ctx context.Context, rows []CatalogRow) error

	// Nearest returns the single closest row in the category's catalog,
	// or nil when the catalog holds no rows.
	Nearest(ctx context.Context, category entities.Category, embedding []float32) (*CatalogMatch, error)

	// Clear removes all rows for a category.
	Clear(ctx context.Context, category entities.Category) error
}

// QuoteProvider fetches a current price for a ticker symbol.
type QuoteProvider interface {
	// Quote returns a price payload for the symbol. Crypto symbols are
	// normalized to a BASE/USD pairing before the provider call.
	Quote(ctx context.Context, symbol string, crypto bool) (*entities.FetchedData, error)
}

// WeatherProvider fetches current conditions for a location name.
type WeatherProvider interface {
	// Current returns a temp/weather/wind_speed payload for the location.
	Current(ctx context.Context, location string) (*entities.FetchedData, error)
}

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SeedEvent represents a change to a catalog seed file.
type SeedEvent struct {
	Path string
}

// SeedWatcher monitors catalog seed files for changes.
type SeedWatcher interface {
	// Watch starts monitoring the directory and emits events.
	Watch(ctx context.Context, dir string) (<-chan SeedEvent, error)

	// Stop stops the watcher.
	Stop() error
}
