package catalog

import (
	"context"
	"sync"

	"github.com/finquery/finquery-go/internal/domain/entities"
	"github.com/finquery/finquery-go/internal/domain/ports"
)

// InMemoryIndex is a simple in-memory catalog index, mainly for tests and
// ephemeral runs. Same search semantics as SQLiteIndex.
type InMemoryIndex struct {
	mu   sync.RWMutex
	rows map[entities.Category][]ports.CatalogRow
}

// NewInMemoryIndex creates a new in-memory catalog index.
func NewInMemoryIndex() *InMemoryIndex {
	return &InMemoryIndex{
		rows: make(map[entities.Category][]ports.CatalogRow),
	}
}

// Store saves embedded catalog rows.
func (s *InMemoryIndex) Store(ctx context.Context, rows []ports.CatalogRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range rows {
		s.rows[row.Category] = append(s.rows[row.Category], row)
	}
	return nil
}

// Nearest returns the single closest row in the category's catalog, or nil
// when the catalog is empty.
func (s *InMemoryIndex) Nearest(ctx context.Context, category entities.Category, embedding []float32) (*ports.CatalogMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *ports.CatalogMatch
	for _, row := range s.rows[category] {
		score := cosineSimilarity(embedding, row.Embedding)
		if best == nil || score > best.Score {
			best = &ports.CatalogMatch{Identifier: row.Identifier, Alias: row.Alias, Score: score}
		}
	}
	return best, nil
}

// Clear removes all rows for a category.
func (s *InMemoryIndex) Clear(ctx context.Context, category entities.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rows, category)
	return nil
}
