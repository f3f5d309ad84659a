//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"bible_read_keep/internal/middleware"
	"bible_read_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressRepository 는 완료 기록(reading_progress) 인터페이스입니다
type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.ReadingProgress) error
	Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, planID int) error
	FindByUserAndPlan(ctx context.Context, db *gorm.DB, userID uuid.UUID, planID int) (*model.ReadingProgress, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.ReadingProgress, error)
	FindDatesByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error)
	CountByUserAndYear(ctx context.Context, db *gorm.DB, userID uuid.UUID, year int) (int64, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.ReadingProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		logger.Error("Error creating progress in DB",
			"error", result.Error,
			"user_id", progress.UserID.String(),
			"plan_id", progress.PlanID,
		)
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID, planID int) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		Delete(&model.ReadingProgress{})
	if result.Error != nil {
		logger.Error("Error deleting progress in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"plan_id", planID,
		)
		return fmt.Errorf("gormProgressRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProgressRepository) FindByUserAndPlan(ctx context.Context, db *gorm.DB, userID uuid.UUID, planID int) (*model.ReadingProgress, error) {
	var progress model.ReadingProgress
	result := db.WithContext(ctx).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndPlan: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.ReadingProgress, error) {
	logger := middleware.GetLogger(ctx)
	var records []*model.ReadingProgress
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at ASC").
		Find(&records)
	if result.Error != nil {
		logger.Error("Error finding progress by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByUser: %w", result.Error)
	}
	return records, nil
}

// FindDatesByUser 는 스트릭 계산에 쓰는 완료 날짜 목록만 가져옵니다
func (r *gormProgressRepository) FindDatesByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var dates []string
	result := db.WithContext(ctx).Model(&model.ReadingProgress{}).
		Where("user_id = ?", userID).
		Order("completed_at ASC").
		Pluck("completed_at", &dates)
	if result.Error != nil {
		logger.Error("Error finding progress dates by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindDatesByUser: %w", result.Error)
	}
	return dates, nil
}

func (r *gormProgressRepository) CountByUserAndYear(ctx context.Context, db *gorm.DB, userID uuid.UUID, year int) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.ReadingProgress{}).
		Where("user_id = ? AND completed_at LIKE ?", userID, fmt.Sprintf("%04d-%%", year)).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting progress by user and year in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"year", year,
		)
		return 0, fmt.Errorf("gormProgressRepository.CountByUserAndYear: %w", result.Error)
	}
	return count, nil
}
