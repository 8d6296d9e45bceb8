package modelserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"bassMate/business/recommend"
)

type ModelConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ModelServerRepository talks to the model-serving process that hosts the
// trained scoring artifact. The feature schema lives next to the model on the
// server and is versioned with it, so both always come from the same place.
type ModelServerRepository struct {
	cfg    ModelConfig
	client *http.Client
}

var _ recommend.Scorer = (*ModelServerRepository)(nil)

func NewModelServerRepository(cfg ModelConfig) *ModelServerRepository {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	return &ModelServerRepository{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Schema returns the ordered feature column names the model expects.
func (r *ModelServerRepository) Schema(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL+"/schema", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build schema request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schema request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model server returned status %d for schema", resp.StatusCode)
	}

	var payload struct {
		Columns []string `json:"columns"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode schema response: %w", err)
	}

	if len(payload.Columns) == 0 {
		return nil, fmt.Errorf("model server returned empty schema")
	}

	return payload.Columns, nil
}

// Score sends one schema-ordered feature vector and returns the model's
// predicted score. NaN entries mark missing values and are sent as JSON null
// so the model's own missing-value handling applies.
func (r *ModelServerRepository) Score(ctx context.Context, vector []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	features := make([]*float64, len(vector))
	for i := range vector {
		if math.IsNaN(vector[i]) {
			continue
		}
		v := vector[i]
		features[i] = &v
	}

	body, err := json.Marshal(map[string]interface{}{
		"features": features,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode feature vector: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("predict request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("model server returned status %d for predict", resp.StatusCode)
	}

	var payload struct {
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode predict response: %w", err)
	}

	return payload.Score, nil
}
