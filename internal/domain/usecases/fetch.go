package usecases

import (
	"context"

	"go.uber.org/zap"

	"github.com/finquery/finquery-go/internal/domain/entities"
	"github.com/finquery/finquery-go/internal/domain/ports"
)

// FetchUseCase retrieves current data for a resolved entity from the
// category's external provider. Providers are unreliable I/O: transport
// errors, malformed payloads and not-found responses all collapse to a nil
// payload here and are logged for diagnostics. Nothing escapes this stage.
type FetchUseCase struct {
	quotes  ports.QuoteProvider
	weather ports.WeatherProvider
	log     *zap.Logger
}

// NewFetchUseCase creates a FetchUseCase with injected dependencies.
func NewFetchUseCase(quotes ports.QuoteProvider, weather ports.WeatherProvider, log *zap.Logger) *FetchUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &FetchUseCase{quotes: quotes, weather: weather, log: log}
}

// Fetch returns the provider payload for the entity, or nil. A nil entity
// returns nil immediately with no provider call.
func (uc *FetchUseCase) Fetch(ctx context.Context, entity *entities.ResolvedEntity) *entities.FetchedData {
	if entity == nil {
		return nil
	}

	var (
		data *entities.FetchedData
		err  error
	)
	switch entity.Category {
	case entities.CategoryWeather:
		data, err = uc.weather.Current(ctx, entity.ID)
	default:
		data, err = uc.quotes.Quote(ctx, entity.ID, entity.Category == entities.CategoryCrypto)
	}

	if err != nil {
		uc.log.Warn("fetch failed",
			zap.String("entity", entity.ID),
			zap.String("category", string(entity.Category)),
			zap.Error(err))
		return nil
	}
	return data
}
