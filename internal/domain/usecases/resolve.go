package usecases

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/finquery/finquery-go/internal/domain/entities"
	"github.com/finquery/finquery-go/internal/domain/ports"
)

// ResolveUseCase maps free text to a canonical identifier by embedding it
// and taking the single nearest neighbor in the category's catalog.
//
// There is deliberately no similarity threshold: a non-empty catalog always
// yields a match, tolerating typos and partial names, and an unresolvable
// identifier simply fails at the fetch stage. The cost is that nonsense
// input can resolve to a semantically wrong entry.
type ResolveUseCase struct {
	embedder ports.EmbeddingService
	index    ports.CatalogIndex
	log      *zap.Logger
}

// NewResolveUseCase creates a ResolveUseCase with injected dependencies.
func NewResolveUseCase(embedder ports.EmbeddingService, index ports.CatalogIndex, log *zap.Logger) *ResolveUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResolveUseCase{embedder: embedder, index: index, log: log}
}

// Resolve returns the canonical identifier for text under the category, or
// nil when the catalog is empty.
func (uc *ResolveUseCase) Resolve(ctx context.Context, text string, category entities.Category) (*entities.ResolvedEntity, error) {
	embedding, err := uc.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding %q: %w", text, err)
	}

	match, err := uc.index.Nearest(ctx, category, embedding)
	if err != nil {
		return nil, fmt.Errorf("searching %s catalog: %w", category, err)
	}
	if match == nil {
		return nil, nil
	}

	uc.log.Debug("resolved entity",
		zap.String("text", text),
		zap.String("category", string(category)),
		zap.String("identifier", match.Identifier),
		zap.String("alias", match.Alias),
		zap.Float64("score", match.Score))

	return &entities.ResolvedEntity{ID: match.Identifier, Category: category}, nil
}
