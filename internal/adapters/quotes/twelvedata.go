// Package quotes provides the financial-quote provider adapter.
// Implements ports.QuoteProvider against the Twelve Data price endpoint.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/finquery/finquery-go/internal/domain/entities"
)

// TwelveDataAdapter fetches current prices for stocks and crypto pairs.
type TwelveDataAdapter struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *zap.Logger
}

// NewTwelveDataAdapter creates a new quote adapter.
func NewTwelveDataAdapter(baseURL, apiKey string, log *zap.Logger) *TwelveDataAdapter {
	if baseURL == "" {
		baseURL = "https://api.twelvedata.com"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TwelveDataAdapter{
		baseURL: baseURL,
		apiKey:  apiKey,
		log:     log,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// priceResponse is the /price endpoint payload. On errors the provider
// returns a message instead of a price.
type priceResponse struct {
	Price   string `json:"price"`
	Message string `json:"message"`
}

// Quote returns a price payload for the symbol, rounded to 2 decimals.
// The provider expects bare symbols for stocks ("AAPL") and BASE/USD
// pairings for crypto ("BTC/USD").
func (a *TwelveDataAdapter) Quote(ctx context.Context, symbol string, crypto bool) (*entities.FetchedData, error) {
	tdSymbol := symbol
	if crypto {
		tdSymbol = PairSymbol(symbol)
	}

	params := url.Values{}
	params.Set("symbol", tdSymbol)
	params.Set("apikey", a.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", a.baseURL+"/price?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling quote provider: %w", err)
	}
	defer resp.Body.Close()

	var priceResp priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&priceResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if priceResp.Price == "" {
		msg := priceResp.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("no price for %s: %s", tdSymbol, msg)
	}

	price, err := strconv.ParseFloat(priceResp.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing price %q: %w", priceResp.Price, err)
	}

	a.log.Debug("fetched quote", zap.String("symbol", tdSymbol), zap.Float64("price", price))

	data := &entities.FetchedData{}
	data.Add("price", fmt.Sprintf("%.2f", price))
	return data, nil
}

// PairSymbol normalizes a crypto symbol to the BASE/USD pairing convention,
// accepting "BTC", "BTC-USD" and "BTC/USD" forms.
func PairSymbol(symbol string) string {
	base := symbol
	if i := strings.IndexAny(symbol, "-/"); i >= 0 {
		base = symbol[:i]
	}
	return base + "/USD"
}
