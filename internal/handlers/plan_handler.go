// internal/handlers/plan_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bible_read_keep/internal/middleware"
	"bible_read_keep/internal/model"
	"bible_read_keep/internal/service"
	"bible_read_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PlanHandler struct {
	service service.PlanService
}

func NewPlanHandler(s service.PlanService) *PlanHandler {
	return &PlanHandler{service: s}
}

// GetDashboard 는 지정한 날짜(기본값: 오늘)의 대시보드를 반환합니다.
// 인증된 요청이면 완료 여부가 함께 계산됩니다.
func (h *PlanHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var userID *uuid.UUID
	if id, err := middleware.GetUserIDFromContext(r.Context()); err == nil {
		userID = &id
	}

	dashboard, err := h.service.GetDashboard(r.Context(), userID, date)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, dashboard, logger)
}

// GetTodayDashboard 는 항상 서버 기준 오늘 날짜의 대시보드를 반환합니다.
// date 쿼리 파라미터는 무시합니다.
func (h *PlanHandler) GetTodayDashboard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var userID *uuid.UUID
	if id, err := middleware.GetUserIDFromContext(r.Context()); err == nil {
		userID = &id
	}

	dashboard, err := h.service.GetDashboard(r.Context(), userID, time.Now().Format("2006-01-02"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, dashboard, logger)
}

// GetPlanByDay 는 연중 일차(1~366)로 읽기표 한 건을 반환합니다
func (h *PlanHandler) GetPlanByDay(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	dayStr := chi.URLParam(r, "day_of_year")
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 366 {
		logger.Warn("Invalid day_of_year in URL", "day_of_year", dayStr)
		appErr := model.NewAppError("INVALID_DAY", "일차는 1~366 사이의 숫자여야 합니다.", "day_of_year", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	plan, err := h.service.GetPlanByDay(r.Context(), day)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, plan, logger)
}
