package catches

import (
	"context"
	"strings"
	"testing"
	"time"

	"bassMate/domain"
)

type fakeCatchRepo struct {
	created []domain.FishingCatch
	nextID  uint
}

func (f *fakeCatchRepo) Create(ctx context.Context, catch *domain.FishingCatch) error {
	f.nextID++
	catch.ID = f.nextID
	f.created = append(f.created, *catch)
	return nil
}

func TestSubmit_StoresRawCatch(t *testing.T) {
	repo := &fakeCatchRepo{}
	svc := NewService(repo)

	when := time.Date(2025, 4, 12, 5, 30, 0, 0, time.UTC)
	temp := 18.5

	catch, err := svc.Submit(context.Background(), SubmittedCatch{
		SpotName:    "고삼저수지",
		Latitude:    37.06,
		Longitude:   127.31,
		Timestamp:   when,
		Temperature: &temp,
		Condition:   "맑음",
		Rig:         "프리리그",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 stored catch, got %d", len(repo.created))
	}
	stored := repo.created[0]

	if stored.SpotName != "고삼저수지" {
		t.Errorf("unexpected spot name %q", stored.SpotName)
	}
	if stored.Result != 1 {
		t.Errorf("app submissions must be successful catches, got result %d", stored.Result)
	}
	if stored.PostedAt == nil || !stored.PostedAt.Equal(when) {
		t.Errorf("timestamp not stored: %v", stored.PostedAt)
	}
	if stored.Weather == nil || *stored.Weather != "맑음" {
		t.Errorf("condition not stored: %v", stored.Weather)
	}
	if stored.BaitType == nil || *stored.BaitType != "프리리그" {
		t.Errorf("rig not stored: %v", stored.BaitType)
	}
	if stored.Temperature == nil || *stored.Temperature != "18.5" {
		t.Errorf("temperature not stored: %v", stored.Temperature)
	}
	if catch.ID != stored.ID {
		t.Errorf("returned catch ID %d != stored %d", catch.ID, stored.ID)
	}
}

func TestSubmit_SourceTokensAreUnique(t *testing.T) {
	repo := &fakeCatchRepo{}
	svc := NewService(repo)

	sub := SubmittedCatch{SpotName: "청평호", Timestamp: time.Now()}

	a, err := svc.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}
	b, err := svc.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("second Submit failed: %v", err)
	}

	if !strings.HasPrefix(a.SourceURL, "app-upload:") {
		t.Errorf("unexpected source token %q", a.SourceURL)
	}
	if a.SourceURL == b.SourceURL {
		t.Errorf("two submissions share the source token %q", a.SourceURL)
	}
}

func TestSubmit_OmitsEmptyOptionalFields(t *testing.T) {
	repo := &fakeCatchRepo{}
	svc := NewService(repo)

	_, err := svc.Submit(context.Background(), SubmittedCatch{
		SpotName:  "대청호",
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	stored := repo.created[0]
	if stored.Weather != nil || stored.BaitType != nil || stored.Temperature != nil {
		t.Errorf("empty optional fields must stay null: %+v", stored)
	}
}
