package recommend

import "context"

// Scorer is the trained scoring artifact together with its feature schema.
// The schema is the ordered list of column names the model expects; it is
// versioned with the model and must never be edited independently of
// retraining. Implementations are swappable so tests can score without a
// real model.
type Scorer interface {
	Schema(ctx context.Context) ([]string, error)
	Score(ctx context.Context, vector []float64) (float64, error)
}
