// internal/service/plan_service.go
package service

import (
	"context"
	"errors"
	"time"

	"bible_read_keep/internal/bible"
	"bible_read_keep/internal/middleware"
	"bible_read_keep/internal/model"
	"bible_read_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// PlanService 는 대시보드 조립을 담당합니다:
// 읽기표 조회 → 시편 119편 보정 → 분류/요약/소요 시간 재계산 → 영상/완료 여부 첨부.
type PlanService interface {
	GetDashboard(ctx context.Context, userID *uuid.UUID, date string) (*model.DashboardResponse, error)
	GetPlanByDay(ctx context.Context, dayOfYear int) (*model.ReadingPlan, error)
}

type planService struct {
	db       *gorm.DB
	planRepo repository.PlanRepository
	progRepo repository.ProgressRepository
	videos   VideoService
}

func NewPlanService(db *gorm.DB, planRepo repository.PlanRepository, progRepo repository.ProgressRepository, videos VideoService) PlanService {
	return &planService{
		db:       db,
		planRepo: planRepo,
		progRepo: progRepo,
		videos:   videos,
	}
}

func (s *planService) GetDashboard(ctx context.Context, userID *uuid.UUID, date string) (*model.DashboardResponse, error) {
	logger := middleware.GetLogger(ctx).With("date", date)

	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, model.NewAppError("INVALID_DATE", "날짜는 YYYY-MM-DD 형식이어야 합니다.", "date", model.ErrInvalidInput)
	}

	plan, err := s.planRepo.FindByDate(ctx, s.db, date)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PLAN_NOT_FOUND", "해당 날짜의 읽기표가 없습니다.", "date", model.ErrNotFound)
		}
		logger.Error("Failed to find plan by date", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "읽기표 조회에 실패했습니다.", "", err)
	}

	// 시드 데이터 보정은 분류/요약 계산보다 먼저 적용해야 합니다
	title, verses := bible.ApplyOverlay(plan.DayOfYear, plan.Title, plan.Verses)

	resp := &model.DashboardResponse{
		PlanID:      plan.PlanID,
		Date:        plan.Date,
		Title:       title,
		Verses:      verses,
		DayOfYear:   plan.DayOfYear,
		Category:    bible.Category(verses),
		Summary:     bible.Keywords(verses),
		ReadingTime: bible.ReadingTime(verses),
	}

	if userID != nil {
		_, err := s.progRepo.FindByUserAndPlan(ctx, s.db, *userID, plan.PlanID)
		switch {
		case err == nil:
			resp.Completed = true
		case errors.Is(err, model.ErrNotFound):
			// 미완료
		default:
			logger.Error("Failed to check completion state", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "완료 여부 조회에 실패했습니다.", "", err)
		}
	}

	// 영상 조회 실패는 대시보드 전체 실패가 아니라 영상 없음으로 강등합니다
	video, err := s.videos.GetVideoForDay(ctx, plan.DayOfYear)
	if err != nil {
		logger.Warn("Video lookup failed, serving dashboard without video", "error", err)
	} else {
		resp.Video = video
	}

	return resp, nil
}

func (s *planService) GetPlanByDay(ctx context.Context, dayOfYear int) (*model.ReadingPlan, error) {
	plan, err := s.planRepo.FindByDay(ctx, s.db, dayOfYear)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PLAN_NOT_FOUND", "해당 일차의 읽기표가 없습니다.", "day_of_year", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "읽기표 조회에 실패했습니다.", "", err)
	}
	return plan, nil
}
