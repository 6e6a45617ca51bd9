// Package commands wires the CLI front ends to the query pipeline.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finquery/finquery-go/internal/adapters/catalog"
	"github.com/finquery/finquery-go/internal/adapters/classifier"
	"github.com/finquery/finquery-go/internal/adapters/embedding"
	"github.com/finquery/finquery-go/internal/adapters/llm"
	"github.com/finquery/finquery-go/internal/adapters/quotes"
	"github.com/finquery/finquery-go/internal/adapters/weather"
	"github.com/finquery/finquery-go/internal/config"
	"github.com/finquery/finquery-go/internal/domain/usecases"
	"github.com/finquery/finquery-go/internal/logger"
)

var (
	cfg *config.Config
	log *zap.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "finquery",
		Short: "Natural-language questions about stock prices, crypto prices and weather",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			log = logger.New(cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}

	root.AddCommand(askCmd(), serveCmd(), indexCmd())
	return root.Execute()
}

// buildResponder assembles the pipeline from the long-lived handles; shared
// state is initialization-once and read-only during requests.
func buildResponder() (*usecases.RespondUseCase, *catalog.SQLiteIndex, error) {
	index, err := catalog.NewSQLiteIndex(cfg.Catalog.DataDir)
	if err != nil {
		return nil, nil, err
	}

	embedder := embedding.NewOllamaAdapter(cfg.Ollama.BaseURL, cfg.Ollama.EmbedModel, log)
	generator := llm.NewOllamaAdapter(cfg.Ollama.BaseURL, cfg.Ollama.GenerateModel)
	zeroShot := classifier.NewHuggingFaceAdapter(cfg.HuggingFace.BaseURL, cfg.HuggingFace.Model, cfg.HuggingFace.APIKey, log)
	quoteProvider := quotes.NewTwelveDataAdapter(cfg.Providers.TwelveData.BaseURL, cfg.Providers.TwelveData.APIKey, log)
	weatherProvider := weather.NewOpenWeatherAdapter(cfg.Providers.OpenWeather.BaseURL, cfg.Providers.OpenWeather.APIKey, log)

	responder := usecases.NewRespondUseCase(
		usecases.NewClassifyUseCase(zeroShot, log),
		usecases.NewResolveUseCase(embedder, index, log),
		usecases.NewFetchUseCase(quoteProvider, weatherProvider, log),
		generator,
		log,
	)
	return responder, index, nil
}
