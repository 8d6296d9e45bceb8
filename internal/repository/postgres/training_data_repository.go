package postgres

import (
	"context"
	"errors"
	"fmt"

	"bassMate/business/ingest"
	"bassMate/business/recommend"
	"bassMate/domain"

	"gorm.io/gorm"
)

type TrainingDataRepository struct {
	DB *gorm.DB
}

var (
	_ ingest.TrainingDataRepository = (*TrainingDataRepository)(nil)
	_ recommend.CandidateRepository = (*TrainingDataRepository)(nil)
)

func NewTrainingDataRepository(db *gorm.DB) *TrainingDataRepository {
	return &TrainingDataRepository{
		DB: db,
	}
}

// FindBySourceURL returns the record with the given dedup key, or nil when
// none exists.
func (r *TrainingDataRepository) FindBySourceURL(ctx context.Context, sourceURL string) (*domain.TrainingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var record domain.TrainingRecord

	err := r.DB.WithContext(ctx).Where("blog_url = ?", sourceURL).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find training record: %w", err)
	}

	return &record, nil
}

func (r *TrainingDataRepository) Create(ctx context.Context, record *domain.TrainingRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create training record: %w", err)
	}

	return nil
}

// UpdateFields updates only the given columns. The merge logic upstream
// guarantees a staged column was null before, so this never overwrites a
// present value.
func (r *TrainingDataRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(fields) == 0 {
		return nil
	}

	result := r.DB.WithContext(ctx).Model(&domain.TrainingRecord{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update training record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("training record not found")
	}

	return nil
}

// FindCandidates returns the distinct spots eligible for recommendation:
// latitude, longitude and address all present.
func (r *TrainingDataRepository) FindCandidates(ctx context.Context) ([]domain.TrainingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []domain.TrainingRecord

	err := r.DB.WithContext(ctx).
		Distinct("spot_name", "address", "latitude", "longitude").
		Where("latitude IS NOT NULL AND longitude IS NOT NULL AND address IS NOT NULL").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find candidate spots: %w", err)
	}

	return records, nil
}
