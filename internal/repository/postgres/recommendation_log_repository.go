package postgres

import (
	"context"
	"fmt"

	"bassMate/business/recommend"
	"bassMate/domain"

	"gorm.io/gorm"
)

type RecommendationLogRepository struct {
	DB *gorm.DB
}

var _ recommend.LogRepository = (*RecommendationLogRepository)(nil)

func NewRecommendationLogRepository(db *gorm.DB) *RecommendationLogRepository {
	return &RecommendationLogRepository{
		DB: db,
	}
}

func (r *RecommendationLogRepository) Save(ctx context.Context, log *domain.RecommendationLog) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to save recommendation log: %w", err)
	}

	return nil
}
