package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"bassMate/domain"
	"bassMate/pkg/logger"
	"bassMate/pkg/metrics"

	"gorm.io/datatypes"
)

const (
	// DefaultMaxDistanceKm bounds the candidate search radius when the
	// request does not set one.
	DefaultMaxDistanceKm = 60.0

	// topK is how many of the best-scoring spots the final pick is sampled
	// from.
	topK = 10
)

// ---- Repository interfaces ----

type CandidateRepository interface {
	FindCandidates(ctx context.Context) ([]domain.TrainingRecord, error)
}

type LogRepository interface {
	Save(ctx context.Context, log *domain.RecommendationLog) error
}

// ---- Usecase / Service ----

type Service struct {
	candidateRepo CandidateRepository
	logRepo       LogRepository
	scorer        Scorer
	rng           *rand.Rand
}

// NewService builds the recommender. logRepo may be nil to disable audit
// logging. rng may be nil, in which case a time-seeded source is used; tests
// pass a fixed seed for deterministic picks.
func NewService(candidateRepo CandidateRepository, logRepo LogRepository, scorer Scorer, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Service{
		candidateRepo: candidateRepo,
		logRepo:       logRepo,
		scorer:        scorer,
		rng:           rng,
	}
}

type scoredCandidate struct {
	record     domain.TrainingRecord
	distanceKm float64
	score      float64
}

// Recommend scores every candidate spot within the request radius and
// returns one of the top ten by model score, sampled uniformly. Sampling
// instead of taking the argmax keeps repeated identical requests from
// always landing on the same spot. A nil result with nil error means no
// candidate was within range — a legitimate outcome, not an error.
//
// Distance is computed and returned but does not enter the ranking; the
// final score equals the raw model score.
func (s *Service) Recommend(ctx context.Context, req domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	maxDistance := req.MaxDistanceKm
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistanceKm
	}

	candidates, err := s.candidateRepo.FindCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidate spots: %w", err)
	}

	inRange := make([]scoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.Usable() {
			continue
		}

		distance := HaversineKm(req.Latitude, req.Longitude, *c.Latitude, *c.Longitude)
		if distance > maxDistance {
			continue
		}

		inRange = append(inRange, scoredCandidate{record: c, distanceKm: distance})
	}

	if len(inRange) == 0 {
		metrics.RecommendRequests.WithLabelValues("empty").Inc()
		return nil, nil
	}

	schema, err := s.scorer.Schema(ctx)
	if err != nil {
		return nil, fmt.Errorf("load feature schema: %w", err)
	}

	for i := range inRange {
		vector := BuildFeatureVector(req, inRange[i].record, schema)

		score, err := s.scorer.Score(ctx, vector)
		if err != nil {
			return nil, fmt.Errorf("score spot %q: %w", inRange[i].record.SpotName, err)
		}

		inRange[i].score = score
	}

	sort.Slice(inRange, func(i, j int) bool {
		return inRange[i].score > inRange[j].score
	})

	limit := topK
	if len(inRange) < limit {
		limit = len(inRange)
	}

	picked := inRange[s.rng.Intn(limit)]

	result := &domain.RecommendationResult{
		SpotName:   picked.record.SpotName,
		Address:    *picked.record.Address,
		Latitude:   *picked.record.Latitude,
		Longitude:  *picked.record.Longitude,
		DistanceKm: picked.distanceKm,
		Score:      picked.score,
		FinalScore: picked.score,
	}

	s.logRecommendation(ctx, req, result, len(inRange))

	metrics.RecommendRequests.WithLabelValues("served").Inc()
	return result, nil
}

// logRecommendation persists an audit row. Best effort: a logging failure
// never fails the request.
func (s *Service) logRecommendation(ctx context.Context, req domain.RecommendationRequest, result *domain.RecommendationResult, candidateCount int) {
	if s.logRepo == nil {
		return
	}

	entry := &domain.RecommendationLog{
		SpotName: result.SpotName,
		Score:    result.Score,
		Context: datatypes.JSONMap{
			"weather":         req.Weather,
			"season":          req.Season,
			"time_of_day":     req.TimeOfDay,
			"distance_km":     result.DistanceKm,
			"candidate_count": candidateCount,
		},
	}

	if err := s.logRepo.Save(ctx, entry); err != nil {
		logger.Warn("failed to save recommendation log", "spot_name", result.SpotName, "error", err)
	}
}
