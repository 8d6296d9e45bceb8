package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"bassMate/business/ingest"

	"github.com/sony/gobreaker"
)

type OpenMeteoConfig struct {
	BaseURL string
	Timeout time.Duration
}

// weatherConditions maps Open-Meteo weather codes to the condition labels
// the training data uses. Codes outside the table map to "기타".
var weatherConditions = map[int]string{
	0:  "맑음",
	1:  "대체로 맑음",
	2:  "부분 흐림",
	3:  "흐림",
	45: "안개",
	48: "서리 안개",
	51: "약한 이슬비",
	53: "중간 이슬비",
	55: "강한 이슬비",
	61: "약한 비",
	63: "중간 비",
	65: "강한 비",
	71: "약한 눈",
	73: "중간 눈",
	75: "강한 눈",
	80: "소나기",
	81: "강한 소나기",
	82: "매우 강한 소나기",
}

const conditionOther = "기타"

// OpenMeteoRepository fetches historical daily weather from the Open-Meteo
// archive API, used to backfill records whose source omitted weather data.
type OpenMeteoRepository struct {
	cfg     OpenMeteoConfig
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

var _ ingest.WeatherBackfiller = (*OpenMeteoRepository)(nil)

func NewOpenMeteoRepository(cfg OpenMeteoConfig) *OpenMeteoRepository {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo-archive",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoRepository{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		circuit: cb,
	}
}

// Fetch returns the daily weather at (lat, lon) for the given date
// (YYYY-MM-DD), or nil when the archive has no data or the call fails.
// A nil result means "could not backfill": the caller must skip the record
// rather than insert partial data.
func (r *OpenMeteoRepository) Fetch(ctx context.Context, lat, lon float64, date string) (*ingest.BackfilledWeather, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("start_date", date)
	values.Set("end_date", date)
	values.Set("daily", "temperature_2m_mean,windspeed_10m_max,weathercode")
	values.Set("timezone", "Asia/Seoul")

	u := fmt.Sprintf("%s/v1/archive?%s", r.cfg.BaseURL, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build archive request: %w", err)
	}

	result, err := r.circuit.Execute(func() (interface{}, error) {
		resp, err := r.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("archive returned status %d", resp.StatusCode)
		}

		var payload struct {
			Daily struct {
				TemperatureMean []float64 `json:"temperature_2m_mean"`
				WindSpeedMax    []float64 `json:"windspeed_10m_max"`
				WeatherCode     []int     `json:"weathercode"`
			} `json:"daily"`
		}

		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("failed to decode archive response: %w", err)
		}

		daily := payload.Daily
		if len(daily.TemperatureMean) == 0 || len(daily.WindSpeedMax) == 0 || len(daily.WeatherCode) == 0 {
			return (*ingest.BackfilledWeather)(nil), nil
		}

		return &ingest.BackfilledWeather{
			Temperature: daily.TemperatureMean[0],
			Wind:        daily.WindSpeedMax[0],
			Condition:   mapCondition(daily.WeatherCode[0]),
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("archive fetch failed: %w", err)
	}

	weather, _ := result.(*ingest.BackfilledWeather)
	return weather, nil
}

func mapCondition(code int) string {
	if label, ok := weatherConditions[code]; ok {
		return label
	}
	return conditionOther
}
