// internal/service/progress_service.go
package service

import (
	"context"
	"errors"
	"time"

	"bible_read_keep/internal/middleware"
	"bible_read_keep/internal/model"
	"bible_read_keep/internal/repository"
	"bible_read_keep/internal/streak"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService 는 완료 체크 토글과 스트릭/진행률 통계를 담당합니다
type ProgressService interface {
	ToggleProgress(ctx context.Context, userID uuid.UUID, planID int, completed bool) error
	ListProgress(ctx context.Context, userID uuid.UUID) ([]*model.ReadingProgress, error)
	GetStreaks(ctx context.Context, userID uuid.UUID) (*streak.Result, error)
	GetYearlyProgress(ctx context.Context, userID uuid.UUID, year int) (*model.YearlyProgressResponse, error)
}

type progressService struct {
	db       *gorm.DB
	planRepo repository.PlanRepository
	progRepo repository.ProgressRepository
	now      func() time.Time // 테스트에서 "오늘"을 고정하기 위한 훅
}

func NewProgressService(db *gorm.DB, planRepo repository.PlanRepository, progRepo repository.ProgressRepository) ProgressService {
	return &progressService{
		db:       db,
		planRepo: planRepo,
		progRepo: progRepo,
		now:      time.Now,
	}
}

// ToggleProgress 는 완료 체크를 켜거나 끕니다. 양방향 모두 멱등입니다.
// 완료 날짜는 체크한 시각이 아니라 읽기표의 날짜를 기록합니다.
// 지난 날짜를 나중에 체크해도 그 날 읽은 것으로 집계됩니다.
func (s *progressService) ToggleProgress(ctx context.Context, userID uuid.UUID, planID int, completed bool) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "plan_id", planID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := s.planRepo.FindByID(ctx, tx, planID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("PLAN_NOT_FOUND", "존재하지 않는 읽기표입니다.", "plan_id", model.ErrNotFound)
			}
			logger.Error("Failed to find plan in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "읽기표 확인 중 오류가 발생했습니다.", "", err)
		}

		_, err = s.progRepo.FindByUserAndPlan(ctx, tx, userID, planID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to find existing progress in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "완료 기록 확인 중 오류가 발생했습니다.", "", err)
		}
		exists := err == nil

		if completed {
			if exists {
				return nil // 이미 완료 상태
			}
			progress := &model.ReadingProgress{
				ProgressID:  uuid.New(),
				UserID:      userID,
				PlanID:      planID,
				CompletedAt: plan.Date,
			}
			if createErr := s.progRepo.Create(ctx, tx, progress); createErr != nil {
				logger.Error("Failed to create progress", "error", createErr)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "완료 기록 저장에 실패했습니다.", "", createErr)
			}
			logger.Info("Progress marked complete", "completed_at", progress.CompletedAt)
			return nil
		}

		if !exists {
			return nil // 이미 미완료 상태
		}
		if delErr := s.progRepo.Delete(ctx, tx, userID, planID); delErr != nil && !errors.Is(delErr, model.ErrNotFound) {
			logger.Error("Failed to delete progress", "error", delErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "완료 기록 삭제에 실패했습니다.", "", delErr)
		}
		logger.Info("Progress unmarked")
		return nil
	})
}

func (s *progressService) ListProgress(ctx context.Context, userID uuid.UUID) ([]*model.ReadingProgress, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	records, err := s.progRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "완료 기록 조회에 실패했습니다.", "", err)
	}
	return records, nil
}

func (s *progressService) GetStreaks(ctx context.Context, userID uuid.UUID) (*streak.Result, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	dates, err := s.progRepo.FindDatesByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load completion dates", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "완료 날짜 조회에 실패했습니다.", "", err)
	}

	result := streak.Calculate(dates, s.now())
	return &result, nil
}

func (s *progressService) GetYearlyProgress(ctx context.Context, userID uuid.UUID, year int) (*model.YearlyProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "year", year)

	completed, err := s.progRepo.CountByUserAndYear(ctx, s.db, userID, year)
	if err != nil {
		logger.Error("Failed to count completed plans", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "연간 진행률 조회에 실패했습니다.", "", err)
	}
	total, err := s.planRepo.CountByYear(ctx, s.db, year)
	if err != nil {
		logger.Error("Failed to count plans for year", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "연간 진행률 조회에 실패했습니다.", "", err)
	}

	percent := 0.0
	if total > 0 {
		percent = float64(completed) / float64(total) * 100
	}

	return &model.YearlyProgressResponse{
		Year:           year,
		CompletedCount: int(completed),
		TotalCount:     int(total),
		Percent:        percent,
	}, nil
}
