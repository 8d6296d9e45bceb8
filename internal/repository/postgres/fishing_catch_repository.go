package postgres

import (
	"context"
	"fmt"

	"bassMate/business/catches"
	"bassMate/business/ingest"
	"bassMate/domain"

	"gorm.io/gorm"
)

type FishingCatchRepository struct {
	DB *gorm.DB
}

var (
	_ ingest.CatchRepository  = (*FishingCatchRepository)(nil)
	_ catches.CatchRepository = (*FishingCatchRepository)(nil)
)

func NewFishingCatchRepository(db *gorm.DB) *FishingCatchRepository {
	return &FishingCatchRepository{
		DB: db,
	}
}

func (r *FishingCatchRepository) Create(ctx context.Context, catch *domain.FishingCatch) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(catch).Error; err != nil {
		return fmt.Errorf("failed to create fishing catch: %w", err)
	}

	return nil
}

// FindAll returns every raw catch, oldest first, for a full ingestion pass.
func (r *FishingCatchRepository) FindAll(ctx context.Context) ([]domain.FishingCatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var catches []domain.FishingCatch

	err := r.DB.WithContext(ctx).Order("id asc").Find(&catches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find fishing catches: %w", err)
	}

	return catches, nil
}
