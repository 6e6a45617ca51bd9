// index.go handles catalog indexing: embedding curated entries into the
// per-category nearest-neighbor index.
package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"github.com/finquery/finquery-go/internal/domain/entities"
	"github.com/finquery/finquery-go/internal/domain/ports"
)

// IndexUseCase builds the catalog index consumed by ResolveUseCase.
// It runs at startup or from the indexer command, never per request.
type IndexUseCase struct {
	embedder ports.EmbeddingService
	index    ports.CatalogIndex
	log      *zap.Logger
}

// NewIndexUseCase creates an IndexUseCase with injected dependencies.
func NewIndexUseCase(embedder ports.EmbeddingService, index ports.CatalogIndex, log *zap.Logger) *IndexUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &IndexUseCase{embedder: embedder, index: index, log: log}
}

// Index embeds every entry name and alias for a category and replaces the
// stored rows for that category.
func (uc *IndexUseCase) Index(ctx context.Context, category entities.Category, entries []entities.CatalogEntry) error {
	var (
		rows  []ports.CatalogRow
		texts []string
	)
	for _, entry := range entries {
		for _, alias := range entry.EmbedTexts() {
			rows = append(rows, ports.CatalogRow{
				ID:         rowID(category, entry.ID, alias),
				Category:   category,
				Identifier: entry.ID,
				Alias:      alias,
			})
			texts = append(texts, alias)
		}
	}
	if len(rows) == 0 {
		return nil
	}

	embeddings, err := uc.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding %s catalog: %w", category, err)
	}
	for i := range rows {
		rows[i].Embedding = embeddings[i]
	}

	if err := uc.index.Clear(ctx, category); err != nil {
		return fmt.Errorf("clearing %s catalog: %w", category, err)
	}
	if err := uc.index.Store(ctx, rows); err != nil {
		return fmt.Errorf("storing %s catalog: %w", category, err)
	}

	uc.log.Info("catalog indexed",
		zap.String("category", string(category)),
		zap.Int("entries", len(entries)),
		zap.Int("rows", len(rows)))
	return nil
}

// rowID creates a deterministic ID for a catalog row.
func rowID(category entities.Category, identifier, alias string) string {
	hash := sha256.Sum256([]byte(string(category) + "|" + identifier + "|" + alias))
	return hex.EncodeToString(hash[:8])
}
