// Package classifier provides the zero-shot classification adapter.
// Implements ports.Classifier against the HuggingFace inference API.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/finquery/finquery-go/internal/domain/ports"
)

// HuggingFaceAdapter calls a hosted zero-shot classification model.
type HuggingFaceAdapter struct {
	baseURL string
	model   string
	token   string
	client  *http.Client
	log     *zap.Logger
}

// NewHuggingFaceAdapter creates a new zero-shot classification adapter.
func NewHuggingFaceAdapter(baseURL, model, token string, log *zap.Logger) *HuggingFaceAdapter {
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}
	if model == "" {
		model = "facebook/bart-large-mnli"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HuggingFaceAdapter{
		baseURL: baseURL,
		model:   model,
		token:   token,
		log:     log,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// zeroShotRequest is the inference API request format.
type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

// zeroShotResponse is the inference API response format: labels and scores
// are parallel slices ordered by descending confidence.
type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Classify returns the candidate labels ranked by confidence.
func (a *HuggingFaceAdapter) Classify(ctx context.Context, text string, candidates []string) ([]ports.RankedLabel, error) {
	reqBody := zeroShotRequest{
		Inputs:     text,
		Parameters: zeroShotParameters{CandidateLabels: candidates},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.baseURL+"/models/"+a.model, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling inference API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference API returned status %d", resp.StatusCode)
	}

	var zsResp zeroShotResponse
	if err := json.NewDecoder(resp.Body).Decode(&zsResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(zsResp.Labels) == 0 || len(zsResp.Labels) != len(zsResp.Scores) {
		return nil, fmt.Errorf("inference API returned %d labels and %d scores", len(zsResp.Labels), len(zsResp.Scores))
	}

	ranked := make([]ports.RankedLabel, len(zsResp.Labels))
	for i := range zsResp.Labels {
		ranked[i] = ports.RankedLabel{Label: zsResp.Labels[i], Score: zsResp.Scores[i]}
	}

	a.log.Debug("classified text",
		zap.String("model", a.model),
		zap.String("top", ranked[0].Label),
		zap.Float64("score", ranked[0].Score))
	return ranked, nil
}
