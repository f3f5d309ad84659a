// internal/handlers/video_handler.go
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
)

type VideoHandler struct {
	service service.VideoService
}

func NewVideoHandler(s service.VideoService) *VideoHandler {
	return &VideoHandler{service: s}
}

// GetTodayVideo 는 오늘 날짜에 대응하는 통독 영상을 반환합니다.
// 영상이 없는 날(예: 246일차)은 404 를 반환합니다.
func (h *VideoHandler) GetTodayVideo(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	video, err := h.service.GetVideoForDate(r.Context(), time.Now())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if video == nil {
		appErr := model.NewAppError("VIDEO_NOT_FOUND", "오늘은 해당하는 영상이 없습니다.", "", model.ErrNotFound)
		webutil.HandleError(w, logger, appErr)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, video, logger)
}

// GetVideoByDay 는 연중 일차로 통독 영상을 찾아 반환합니다
func (h *VideoHandler) GetVideoByDay(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	dayStr := chi.URLParam(r, "day")
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 {
		logger.Warn("Invalid day in URL", "day", dayStr)
		appErr := model.NewAppError("INVALID_DAY", "일차는 1 이상의 숫자여야 합니다.", "day", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	video, err := h.service.GetVideoForDay(r.Context(), day)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if video == nil {
		appErr := model.NewAppError("VIDEO_NOT_FOUND", "해당 일차에 대응하는 영상이 없습니다.", "day", model.ErrNotFound)
		webutil.HandleError(w, logger, appErr)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, video, logger)
}
