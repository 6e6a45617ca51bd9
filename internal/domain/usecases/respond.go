// respond.go sequences the pipeline for one request/response cycle.
package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/finquery/finquery-go/internal/domain/entities"
	"github.com/finquery/finquery-go/internal/domain/ports"
)

// User-safe failure messages. Every stage boundary short-circuits to one of
// these; raw error payloads never reach the user.
const (
	msgUnresolved  = "Could not retrieve data for your request."
	msgFetchFailed = "Could not retrieve data for %s."
)

// RespondUseCase runs classify -> extract/resolve -> fetch -> compose for a
// single query. All shared handles are read-only after construction, so one
// instance serves concurrent queries.
type RespondUseCase struct {
	classify  *ClassifyUseCase
	resolve   *ResolveUseCase
	fetch     *FetchUseCase
	generator ports.Generator
	log       *zap.Logger
}

// NewRespondUseCase creates a RespondUseCase with injected stage usecases.
func NewRespondUseCase(
	classify *ClassifyUseCase,
	resolve *ResolveUseCase,
	fetch *FetchUseCase,
	generator ports.Generator,
	log *zap.Logger,
) *RespondUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &RespondUseCase{
		classify:  classify,
		resolve:   resolve,
		fetch:     fetch,
		generator: generator,
		log:       log,
	}
}

// Respond answers a free-text query. The returned error is non-nil only for
// classification capability violations and generation failures; every other
// failure is recovered into a plain sentence.
func (uc *RespondUseCase) Respond(ctx context.Context, query string) (string, error) {
	category, err := uc.classify.Classify(ctx, query)
	if err != nil {
		return "", err
	}

	text := query
	if raw := Extract(query, category); raw != nil {
		text = raw.Text
	}

	entity, err := uc.resolve.Resolve(ctx, text, category)
	if err != nil {
		uc.log.Warn("resolution failed", zap.String("text", text), zap.Error(err))
		return msgUnresolved, nil
	}
	if entity == nil {
		return msgUnresolved, nil
	}

	data := uc.fetch.Fetch(ctx, entity)
	if data == nil {
		return fmt.Sprintf(msgFetchFailed, entity.ID), nil
	}

	return uc.compose(ctx, query, entity, data)
}

// compose prefers the deterministic template; anything that cannot be
// phrased as a bare price falls through to the generator.
func (uc *RespondUseCase) compose(ctx context.Context, query string, entity *entities.ResolvedEntity, data *entities.FetchedData) (string, error) {
	if entity.Category != entities.CategoryWeather {
		if answer, ok := composeTemplate(entity.ID, data); ok {
			return answer, nil
		}
	}

	answer, err := uc.generator.Generate(ctx, buildPrompt(query, data))
	if err != nil {
		return "", fmt.Errorf("generating response: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

// composeTemplate formats a bare price payload without any model call.
// A missing or unparseable price is not an error; it defers to generation.
func composeTemplate(entityID string, data *entities.FetchedData) (string, bool) {
	raw, ok := data.Get("price")
	if !ok {
		return "", false
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("The current price of %s is %.2f USD.", entityID, price), true
}

// buildPrompt packs the original query and the structured payload into the
// fixed instruction | values format the generator expects.
func buildPrompt(query string, data *entities.FetchedData) string {
	return query + " | Values: " + data.Encode()
}
