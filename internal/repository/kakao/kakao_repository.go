package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bassMate/business/ingest"

	"github.com/sony/gobreaker"
)

type KakaoConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// KakaoRepository resolves free-text spot names to coordinates through the
// Kakao local keyword-search API. It always takes the first match and does
// no caching.
type KakaoRepository struct {
	cfg     KakaoConfig
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

var _ ingest.GeoResolver = (*KakaoRepository)(nil)

func NewKakaoRepository(cfg KakaoConfig) *KakaoRepository {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kakao",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &KakaoRepository{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		circuit: cb,
	}
}

// Resolve geocodes the query text. It returns nil when the place cannot be
// resolved for any reason (transport failure, non-200 status, empty result
// list) — the caller must skip downstream processing for that record.
func (r *KakaoRepository) Resolve(ctx context.Context, query string) (*ingest.ResolvedPlace, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	values := url.Values{}
	values.Set("query", query)

	u := fmt.Sprintf("%s/v2/local/search/keyword.json?%s", r.cfg.BaseURL, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build kakao request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+r.cfg.APIKey)

	result, err := r.circuit.Execute(func() (interface{}, error) {
		resp, err := r.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("kakao returned status %d", resp.StatusCode)
		}

		var payload struct {
			Documents []struct {
				AddressName string `json:"address_name"`
				X           string `json:"x"` // longitude
				Y           string `json:"y"` // latitude
			} `json:"documents"`
		}

		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("failed to decode kakao response: %w", err)
		}

		if len(payload.Documents) == 0 {
			return (*ingest.ResolvedPlace)(nil), nil
		}

		first := payload.Documents[0]

		lat, err := strconv.ParseFloat(first.Y, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude %q: %w", first.Y, err)
		}
		lon, err := strconv.ParseFloat(first.X, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude %q: %w", first.X, err)
		}

		return &ingest.ResolvedPlace{
			Address:   first.AddressName,
			Latitude:  lat,
			Longitude: lon,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("kakao keyword search failed: %w", err)
	}

	place, _ := result.(*ingest.ResolvedPlace)
	return place, nil
}
