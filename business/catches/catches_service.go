package catches

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bassMate/domain"

	"github.com/google/uuid"
)

type CatchRepository interface {
	Create(ctx context.Context, catch *domain.FishingCatch) error
}

// Service records catches submitted from the mobile app. Each submission
// gets a synthetic source token so it deduplicates against the training
// dataset the same way scraped blog posts do.
type Service struct {
	catchRepo CatchRepository
}

func NewService(catchRepo CatchRepository) *Service {
	return &Service{
		catchRepo: catchRepo,
	}
}

// SubmittedCatch is the app-side payload of a catch report.
type SubmittedCatch struct {
	SpotName    string
	Address     string
	Latitude    float64
	Longitude   float64
	Timestamp   time.Time
	Temperature *float64
	Condition   string
	Rig         string
}

// Submit stores a user-submitted catch as a raw record for the next
// ingestion pass. App submissions are always successful catches.
func (s *Service) Submit(ctx context.Context, sub SubmittedCatch) (domain.FishingCatch, error) {
	if err := ctx.Err(); err != nil {
		return domain.FishingCatch{}, fmt.Errorf("context error: %w", err)
	}

	catch := domain.FishingCatch{
		SpotName:  sub.SpotName,
		SourceURL: "app-upload:" + uuid.NewString(),
		PostedAt:  &sub.Timestamp,
		Result:    1,
	}

	if sub.Condition != "" {
		condition := sub.Condition
		catch.Weather = &condition
	}
	if sub.Rig != "" {
		rig := sub.Rig
		catch.BaitType = &rig
	}
	if sub.Temperature != nil {
		temp := strconv.FormatFloat(*sub.Temperature, 'f', -1, 64)
		catch.Temperature = &temp
	}

	if err := s.catchRepo.Create(ctx, &catch); err != nil {
		return domain.FishingCatch{}, fmt.Errorf("store submitted catch: %w", err)
	}

	return catch, nil
}
