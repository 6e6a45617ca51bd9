// Package weather provides the weather provider adapter.
// Implements ports.WeatherProvider against the OpenWeatherMap current
// weather endpoint.
package weather

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

// OpenWeatherAdapter fetches current conditions by location name.
type OpenWeatherAdapter struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *zap.Logger
}

// NewOpenWeatherAdapter creates a new weather adapter.
func NewOpenWeatherAdapter(baseURL, apiKey string, log *zap.Logger) *OpenWeatherAdapter {
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OpenWeatherAdapter{
		baseURL: baseURL,
		apiKey:  apiKey,
		log:     log,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// weatherResponse is the subset of the current-weather payload we consume.
type weatherResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns a temp/weather/wind_speed payload for the location.
// Temperature is metric, rounded to 1 decimal; the condition label is
// lowercased.
func (a *OpenWeatherAdapter) Current(ctx context.Context, location string) (*entities.FetchedData, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", a.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, "GET", a.baseURL+"/data/2.5/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling weather provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("location not found: %s", location)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var wResp weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&wResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(wResp.Weather) == 0 {
		return nil, fmt.Errorf("malformed weather payload for %s", location)
	}

	a.log.Debug("fetched weather",
		zap.String("location", location),
		zap.Float64("temp", wResp.Main.Temp))

	data := &entities.FetchedData{}
	data.Add("temp", fmt.Sprintf("%.1f", wResp.Main.Temp))
	data.Add("weather", strings.ToLower(wResp.Weather[0].Main))
	data.Add("wind_speed", strconv.FormatFloat(wResp.Wind.Speed, 'f', -1, 64))
	return data, nil
}
