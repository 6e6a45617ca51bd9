// Package catalog provides the vector-indexed catalog adapters.
// Implements ports.CatalogIndex over SQLite with brute-force cosine
// similarity; catalogs are small curated sets, not document corpora.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/finquery/finquery-go/internal/domain/entities"
	"github.com/finquery/finquery-go/internal/domain/ports"
)

// SQLiteIndex is the persistent catalog index shared by the indexer command
// and the serving pipeline (which only reads it).
type SQLiteIndex struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteIndex opens (or creates) the catalog index at dataPath.
func NewSQLiteIndex(dataPath string) (*SQLiteIndex, error) {
	if dataPath == "" {
		dataPath = "./data"
	}

	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataPath, "catalogs.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	idx := &SQLiteIndex{db: db}
	if err := idx.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return idx, nil
}

func (s *SQLiteIndex) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS catalog_vectors (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		identifier TEXT NOT NULL,
		alias TEXT NOT NULL,
		embedding BLOB NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_catalog_category ON catalog_vectors(category);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Store saves embedded catalog rows.
func (s *SQLiteIndex) Store(ctx context.Context, rows []ports.CatalogRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO catalog_vectors (id, category, identifier, alias, embedding)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		embeddingJSON, err := json.Marshal(row.Embedding)
		if err != nil {
			return fmt.Errorf("encoding embedding: %w", err)
		}

		_, err = stmt.ExecContext(ctx,
			row.ID,
			string(row.Category),
			row.Identifier,
			row.Alias,
			embeddingJSON,
		)
		if err != nil {
			return fmt.Errorf("inserting row: %w", err)
		}
	}

	return tx.Commit()
}

// Nearest returns the single closest row in the category's catalog, or nil
// when the catalog is empty.
func (s *SQLiteIndex) Nearest(ctx context.Context, category entities.Category, embedding []float32) (*ports.CatalogMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT identifier, alias, embedding
		FROM catalog_vectors
		WHERE category = ?
	`, string(category))
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var best *ports.CatalogMatch
	for rows.Next() {
		var (
			identifier    string
			alias         string
			embeddingJSON []byte
		)
		if err := rows.Scan(&identifier, &alias, &embeddingJSON); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		var rowEmbedding []float32
		if err := json.Unmarshal(embeddingJSON, &rowEmbedding); err != nil {
			continue // Skip corrupted embeddings
		}

		score := cosineSimilarity(embedding, rowEmbedding)
		if best == nil || score > best.Score {
			best = &ports.CatalogMatch{Identifier: identifier, Alias: alias, Score: score}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return best, nil
}

// Clear removes all rows for a category.
func (s *SQLiteIndex) Clear(ctx context.Context, category entities.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM catalog_vectors WHERE category = ?", string(category))
	return err
}

// RowCount returns the number of stored rows for a category.
func (s *SQLiteIndex) RowCount(ctx context.Context, category entities.Category) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM catalog_vectors WHERE category = ?", string(category)).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteIndex) Close() error {
	return s.db.Close()
}

// cosineSimilarity calculates cosine similarity between two vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
