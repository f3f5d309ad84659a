//go:generate mockery --name PlanRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"bible_read_keep/internal/middleware"
	"bible_read_keep/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanRepository 는 읽기표(reading_plans) 조회/시드용 인터페이스입니다
type PlanRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, planID int) (*model.ReadingPlan, error)
	FindByDate(ctx context.Context, db *gorm.DB, date string) (*model.ReadingPlan, error)
	FindByDay(ctx context.Context, db *gorm.DB, dayOfYear int) (*model.ReadingPlan, error)
	CountByYear(ctx context.Context, db *gorm.DB, year int) (int64, error)
	Upsert(ctx context.Context, tx *gorm.DB, plan *model.ReadingPlan) error
}

type gormPlanRepository struct{}

func NewGormPlanRepository() PlanRepository {
	return &gormPlanRepository{}
}

func (r *gormPlanRepository) FindByID(ctx context.Context, db *gorm.DB, planID int) (*model.ReadingPlan, error) {
	logger := middleware.GetLogger(ctx)
	var plan model.ReadingPlan
	result := db.WithContext(ctx).Where("plan_id = ?", planID).First(&plan)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding plan by ID in DB",
			"error", result.Error,
			"plan_id", planID,
		)
		return nil, fmt.Errorf("gormPlanRepository.FindByID: %w", result.Error)
	}
	return &plan, nil
}

func (r *gormPlanRepository) FindByDate(ctx context.Context, db *gorm.DB, date string) (*model.ReadingPlan, error) {
	logger := middleware.GetLogger(ctx)
	var plan model.ReadingPlan
	result := db.WithContext(ctx).Where("date = ?", date).First(&plan)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding plan by date in DB",
			"error", result.Error,
			"date", date,
		)
		return nil, fmt.Errorf("gormPlanRepository.FindByDate: %w", result.Error)
	}
	return &plan, nil
}

func (r *gormPlanRepository) FindByDay(ctx context.Context, db *gorm.DB, dayOfYear int) (*model.ReadingPlan, error) {
	logger := middleware.GetLogger(ctx)
	var plan model.ReadingPlan
	result := db.WithContext(ctx).Where("day_of_year = ?", dayOfYear).First(&plan)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding plan by day in DB",
			"error", result.Error,
			"day_of_year", dayOfYear,
		)
		return nil, fmt.Errorf("gormPlanRepository.FindByDay: %w", result.Error)
	}
	return &plan, nil
}

func (r *gormPlanRepository) CountByYear(ctx context.Context, db *gorm.DB, year int) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.ReadingPlan{}).
		Where("date LIKE ?", fmt.Sprintf("%04d-%%", year)).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting plans by year in DB",
			"error", result.Error,
			"year", year,
		)
		return 0, fmt.Errorf("gormPlanRepository.CountByYear: %w", result.Error)
	}
	return count, nil
}

// Upsert 는 시드용입니다. plan_id 충돌 시 내용을 덮어씁니다.
func (r *gormPlanRepository) Upsert(ctx context.Context, tx *gorm.DB, plan *model.ReadingPlan) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "plan_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"date", "title", "verses", "day_of_year", "category", "summary", "reading_time"}),
	}).Create(plan)
	if result.Error != nil {
		logger.Error("Error upserting plan in DB",
			"error", result.Error,
			"plan_id", plan.PlanID,
		)
		return fmt.Errorf("gormPlanRepository.Upsert: %w", result.Error)
	}
	return nil
}
