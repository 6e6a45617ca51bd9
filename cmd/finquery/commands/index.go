package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finquery/finquery-go/internal/adapters/catalog"
	"github.com/finquery/finquery-go/internal/adapters/catalogwatch"
	"github.com/finquery/finquery-go/internal/adapters/embedding"
	"github.com/finquery/finquery-go/internal/domain/usecases"
)

// index [--watch]: embed the catalog seed files into the nearest-neighbor
// index. Watch mode rebuilds whenever a seed file changes, so the serving
// process itself never mutates the catalogs.
func indexCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the catalog index from seed files",
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := catalog.NewSQLiteIndex(cfg.Catalog.DataDir)
			if err != nil {
				return err
			}
			defer index.Close()

			embedder := embedding.NewOllamaAdapter(cfg.Ollama.BaseURL, cfg.Ollama.EmbedModel, log)
			indexer := usecases.NewIndexUseCase(embedder, index, log)

			if err := indexAll(cmd.Context(), indexer); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			return watchSeeds(cmd.Context(), indexer)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "rebuild on seed file changes")
	return cmd
}

func indexAll(ctx context.Context, indexer *usecases.IndexUseCase) error {
	catalogs, err := catalog.LoadSeedDir(cfg.Catalog.SeedDir)
	if err != nil {
		return err
	}
	for category, entries := range catalogs {
		if err := indexer.Index(ctx, category, entries); err != nil {
			return err
		}
	}
	return nil
}

func watchSeeds(ctx context.Context, indexer *usecases.IndexUseCase) error {
	watcher, err := catalogwatch.NewFSNotifyWatcher()
	if err != nil {
		return err
	}
	defer watcher.Stop()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	events, err := watcher.Watch(ctx, cfg.Catalog.SeedDir)
	if err != nil {
		return err
	}

	log.Info("watching seed files", zap.String("dir", cfg.Catalog.SeedDir))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			category, known := catalog.CategoryForSeedFile(event.Path)
			if !known {
				continue
			}
			entries, err := catalog.LoadSeedFile(event.Path)
			if err != nil {
				log.Warn("skipping changed seed file", zap.String("path", event.Path), zap.Error(err))
				continue
			}
			if err := indexer.Index(ctx, category, entries); err != nil {
				log.Error("reindex failed", zap.String("path", event.Path), zap.Error(err))
			}
		}
	}
}
