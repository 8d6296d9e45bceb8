package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"bassMate/domain"
)

// ---- fakes ----

type fakeCandidateRepo struct {
	candidates []domain.TrainingRecord
	err        error
}

func (f *fakeCandidateRepo) FindCandidates(ctx context.Context) ([]domain.TrainingRecord, error) {
	return f.candidates, f.err
}

type fakeLogRepo struct {
	saved []domain.RecommendationLog
}

func (f *fakeLogRepo) Save(ctx context.Context, log *domain.RecommendationLog) error {
	f.saved = append(f.saved, *log)
	return nil
}

// latitudeScorer scores each spot by its latitude column, so candidates get
// distinct, predictable scores.
type latitudeScorer struct {
	schemaErr error
	scoreErr  error
}

func (s *latitudeScorer) Schema(ctx context.Context) ([]string, error) {
	if s.schemaErr != nil {
		return nil, s.schemaErr
	}
	return []string{"latitude", "longitude"}, nil
}

func (s *latitudeScorer) Score(ctx context.Context, features []float64) (float64, error) {
	if s.scoreErr != nil {
		return 0, s.scoreErr
	}
	return features[0], nil
}

func strPtr(s string) *string { return &s }

// spotNear builds a usable candidate offset due north of the base point by
// the given distance.
func spotNear(name string, baseLat, baseLon, km float64) domain.TrainingRecord {
	lat := northOffset(baseLat, km)
	return domain.TrainingRecord{
		SpotName:  name,
		Address:   strPtr(name + " 주소"),
		Latitude:  &lat,
		Longitude: &baseLon,
	}
}

// ---- tests ----

func TestRecommend_NoCandidatesInRange(t *testing.T) {
	repo := &fakeCandidateRepo{candidates: []domain.TrainingRecord{
		spotNear("너무 먼 곳", 37.5, 127.0, 200),
	}}
	svc := NewService(repo, nil, &latitudeScorer{}, rand.New(rand.NewSource(1)))

	result, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		Latitude:  37.5,
		Longitude: 127.0,
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result for empty radius, got %+v", result)
	}
}

func TestRecommend_RadiusBoundary(t *testing.T) {
	inside := spotNear("radius-inside", 37.5, 127.0, 59.9)
	outside := spotNear("radius-outside", 37.5, 127.0, 60.1)
	repo := &fakeCandidateRepo{candidates: []domain.TrainingRecord{inside, outside}}
	svc := NewService(repo, nil, &latitudeScorer{}, rand.New(rand.NewSource(1)))

	result, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		Latitude:  37.5,
		Longitude: 127.0,
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if result == nil {
		t.Fatal("expected a result, got nil")
	}
	if result.SpotName != "radius-inside" {
		t.Errorf("expected the in-radius spot, got %q", result.SpotName)
	}
}

func TestRecommend_SkipsUnusableCandidates(t *testing.T) {
	noAddress := spotNear("주소 없음", 37.5, 127.0, 1)
	noAddress.Address = nil
	repo := &fakeCandidateRepo{candidates: []domain.TrainingRecord{noAddress}}
	svc := NewService(repo, nil, &latitudeScorer{}, rand.New(rand.NewSource(1)))

	result, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		Latitude:  37.5,
		Longitude: 127.0,
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if result != nil {
		t.Errorf("candidate without address must not be recommended, got %+v", result)
	}
}

func TestRecommend_PickStaysInTopTen(t *testing.T) {
	// 15 candidates, 1..15 km north; the latitude scorer ranks the
	// farthest north highest, so the top ten are spots 6..15 km out.
	var candidates []domain.TrainingRecord
	for km := 1; km <= 15; km++ {
		candidates = append(candidates, spotNear(fmt.Sprintf("spot-%02d", km), 37.5, 127.0, float64(km)))
	}
	topTen := map[string]bool{}
	for km := 6; km <= 15; km++ {
		topTen[fmt.Sprintf("spot-%02d", km)] = true
	}

	repo := &fakeCandidateRepo{candidates: candidates}
	svc := NewService(repo, nil, &latitudeScorer{}, rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		result, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
			Latitude:  37.5,
			Longitude: 127.0,
		})
		if err != nil {
			t.Fatalf("Recommend failed: %v", err)
		}
		if result == nil {
			t.Fatal("expected a result, got nil")
		}
		if !topTen[result.SpotName] {
			t.Fatalf("pick %q is outside the top ten by score", result.SpotName)
		}
	}
}

func TestRecommend_FinalScoreEqualsModelScore(t *testing.T) {
	repo := &fakeCandidateRepo{candidates: []domain.TrainingRecord{
		spotNear("단일 후보", 37.5, 127.0, 5),
	}}
	svc := NewService(repo, nil, &latitudeScorer{}, rand.New(rand.NewSource(1)))

	result, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		Latitude:  37.5,
		Longitude: 127.0,
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if result == nil {
		t.Fatal("expected a result, got nil")
	}
	if result.FinalScore != result.Score {
		t.Errorf("final score %v != model score %v", result.FinalScore, result.Score)
	}
	if result.DistanceKm < 4.9 || result.DistanceKm > 5.1 {
		t.Errorf("expected distance near 5 km, got %v", result.DistanceKm)
	}
}

func TestRecommend_ScoringErrorFailsRequest(t *testing.T) {
	repo := &fakeCandidateRepo{candidates: []domain.TrainingRecord{
		spotNear("후보", 37.5, 127.0, 5),
	}}
	scorer := &latitudeScorer{scoreErr: fmt.Errorf("model server unavailable")}
	svc := NewService(repo, nil, scorer, rand.New(rand.NewSource(1)))

	if _, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		Latitude:  37.5,
		Longitude: 127.0,
	}); err == nil {
		t.Fatal("expected scoring failure to fail the request")
	}
}

func TestRecommend_SavesAuditLog(t *testing.T) {
	repo := &fakeCandidateRepo{candidates: []domain.TrainingRecord{
		spotNear("감사 로그 후보", 37.5, 127.0, 5),
	}}
	logRepo := &fakeLogRepo{}
	svc := NewService(repo, logRepo, &latitudeScorer{}, rand.New(rand.NewSource(1)))

	result, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		Latitude:  37.5,
		Longitude: 127.0,
		Weather:   "맑음",
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(logRepo.saved) != 1 {
		t.Fatalf("expected 1 audit log entry, got %d", len(logRepo.saved))
	}
	entry := logRepo.saved[0]
	if entry.SpotName != result.SpotName || entry.Score != result.Score {
		t.Errorf("audit log mismatch: %+v vs %+v", entry, result)
	}
	if entry.Context["weather"] != "맑음" {
		t.Errorf("expected request weather in log context, got %v", entry.Context["weather"])
	}
}

func TestRecommend_CustomRadius(t *testing.T) {
	near := spotNear("5km", 37.5, 127.0, 5)
	far := spotNear("20km", 37.5, 127.0, 20)
	repo := &fakeCandidateRepo{candidates: []domain.TrainingRecord{near, far}}
	svc := NewService(repo, nil, &latitudeScorer{}, rand.New(rand.NewSource(1)))

	result, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		Latitude:      37.5,
		Longitude:     127.0,
		MaxDistanceKm: 10,
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if result == nil || result.SpotName != "5km" {
		t.Errorf("expected only the 5km spot within a 10km radius, got %+v", result)
	}
}
