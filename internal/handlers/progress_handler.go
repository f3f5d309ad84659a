// internal/handlers/progress_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"bible_read_keep/internal/middleware"
	"bible_read_keep/internal/model"
	"bible_read_keep/internal/service"
	"bible_read_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// ToggleProgress 는 읽기표 한 건의 완료 체크를 켜거나 끕니다
func (h *ProgressHandler) ToggleProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Error("Failed to get UserID from context", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	planIDStr := chi.URLParam(r, "plan_id")
	planID, err := strconv.Atoi(planIDStr)
	if err != nil {
		logger.Warn("Invalid plan_id in URL", "plan_id", planIDStr)
		appErr := model.NewAppError("INVALID_PLAN_ID", "읽기표 ID 형식이 올바르지 않습니다.", "plan_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.ToggleProgressRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "요청 본문의 형식이 올바르지 않습니다.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for progress toggle", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for progress toggle", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	if err := h.service.ToggleProgress(r.Context(), userID, planID, *req.Completed); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]bool{"completed": *req.Completed}, logger)
}

// ListProgress 는 사용자의 완료 기록 전체를 반환합니다
func (h *ProgressHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Error("Failed to get UserID from context", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	records, err := h.service.ListProgress(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, records, logger)
}

// GetStreaks 는 완료 날짜에서 파생한 스트릭 통계를 반환합니다
func (h *ProgressHandler) GetStreaks(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Error("Failed to get UserID from context", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.GetStreaks(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetYearlyProgress 는 지정한 연도(기본값: 올해)의 완료율을 반환합니다
func (h *ProgressHandler) GetYearlyProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Error("Failed to get UserID from context", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 2000 || parsed > 2100 {
			logger.Warn("Invalid year in query", "year", yearStr)
			appErr := model.NewAppError("INVALID_YEAR", "연도 형식이 올바르지 않습니다.", "year", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		year = parsed
	}

	result, err := h.service.GetYearlyProgress(r.Context(), userID, year)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
