package usecases

import (
	"context"

	"github.com/finquery/finquery-go/internal/domain/entities"
	"github.com/finquery/finquery-go/internal/domain/ports"
)

// mockClassifier implements ports.Classifier.
type mockClassifier struct {
	ranked []ports.RankedLabel
	err    error
}

func (m *mockClassifier) Classify(ctx context.Context, text string, candidates []string) ([]ports.RankedLabel, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.ranked != nil {
		return m.ranked, nil
	}
	ranked := make([]ports.RankedLabel, len(candidates))
	for i, c := range candidates {
		ranked[i] = ports.RankedLabel{Label: c, Score: 1 - float64(i)*0.1}
	}
	return ranked, nil
}

// mockEmbedder implements ports.EmbeddingService.
type mockEmbedder struct {
	embedding []float32
	err       error
	calls     int
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.embedding != nil {
		return m.embedding, nil
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		emb, err := m.Embed(ctx, texts[i])
		if err != nil {
			return nil, err
		}
		out[i] = emb
	}
	return out, nil
}

// mockIndex implements ports.CatalogIndex.
type mockIndex struct {
	match   *ports.CatalogMatch
	stored  []ports.CatalogRow
	cleared []entities.Category
	err     error
}

func (m *mockIndex) Store(ctx context.Context, rows []ports.CatalogRow) error {
	if m.err != nil {
		return m.err
	}
	m.stored = append(m.stored, rows...)
	return nil
}

func (m *mockIndex) Nearest(ctx context.Context, category entities.Category, embedding []float32) (*ports.CatalogMatch, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.match, nil
}

func (m *mockIndex) Clear(ctx context.Context, category entities.Category) error {
	m.cleared = append(m.cleared, category)
	return nil
}

// mockQuotes implements ports.QuoteProvider.
type mockQuotes struct {
	data       *entities.FetchedData
	err        error
	calls      int
	lastSymbol string
	lastCrypto bool
}

func (m *mockQuotes) Quote(ctx context.Context, symbol string, crypto bool) (*entities.FetchedData, error) {
	m.calls++
	m.lastSymbol = symbol
	m.lastCrypto = crypto
	return m.data, m.err
}

// mockWeather implements ports.WeatherProvider.
type mockWeather struct {
	data         *entities.FetchedData
	err          error
	calls        int
	lastLocation string
}

func (m *mockWeather) Current(ctx context.Context, location string) (*entities.FetchedData, error) {
	m.calls++
	m.lastLocation = location
	return m.data, m.err
}

// mockGenerator implements ports.Generator.
type mockGenerator struct {
	out     string
	err     error
	prompts []string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.out, nil
}

func priceData(value string) *entities.FetchedData {
	data := &entities.FetchedData{}
	data.Add("price", value)
	return data
}

func weatherData(temp, cond, wind string) *entities.FetchedData {
	data := &entities.FetchedData{}
	data.Add("temp", temp)
	data.Add("weather", cond)
	data.Add("wind_speed", wind)
	return data
}
