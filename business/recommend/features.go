package recommend

import (
	"math"

	"bassMate/domain"
)

// BuildFeatureVector assembles a model-compatible feature row from request
// context and a candidate spot's static attributes, aligned to the given
// schema. Categorical fields are one-hot encoded with pandas-style
// "<field>_<value>" column names. Schema columns we cannot produce are
// filled with NaN — never zero — so the model's own missing-value handling
// applies. Generated columns not in the schema are dropped. The schema
// order is binding: the scoring function is position-sensitive.
func BuildFeatureVector(req domain.RecommendationRequest, candidate domain.TrainingRecord, schema []string) []float64 {
	generated := map[string]float64{}

	if candidate.Latitude != nil {
		generated["latitude"] = *candidate.Latitude
	}
	if candidate.Longitude != nil {
		generated["longitude"] = *candidate.Longitude
	}
	if req.Temperature != nil {
		generated["temperature"] = *req.Temperature
	}
	if req.Wind != nil {
		generated["wind"] = *req.Wind
	}

	if req.Weather != "" {
		generated["weather_"+req.Weather] = 1
	}
	if req.TimeOfDay != "" {
		generated["time_period_"+req.TimeOfDay] = 1
	}
	if req.Season != "" {
		generated["season_"+req.Season] = 1
	}

	vector := make([]float64, len(schema))
	for i, column := range schema {
		if value, ok := generated[column]; ok {
			vector[i] = value
		} else {
			vector[i] = math.NaN()
		}
	}

	return vector
}
