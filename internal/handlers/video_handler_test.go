// internal/handlers/video_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bible_read_keep/internal/handlers"
	"bible_read_keep/internal/model"
	"bible_read_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVideoRouter(svc *mocks.VideoService) *chi.Mux {
	h := handlers.NewVideoHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/v1/videos/today", h.GetTodayVideo)
	r.Get("/api/v1/videos/{day}", h.GetVideoByDay)
	return r
}

func TestVideoHandler_GetTodayVideo(t *testing.T) {
	t.Run("정상계: 오늘의 영상 반환", func(t *testing.T) {
		svc := new(mocks.VideoService)
		svc.On("GetVideoForDate", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(&model.VideoInfo{VideoID: "abc123", Title: "성경 통독 42회차", DayNumber: 42, Minutes: 15}, nil).Once()

		router := newVideoRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/today", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got model.VideoInfo
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "abc123", got.VideoID)
		assert.Equal(t, 42, got.DayNumber)
		svc.AssertExpectations(t)
	})

	t.Run("이상계: 영상이 없는 날은 404", func(t *testing.T) {
		svc := new(mocks.VideoService)
		svc.On("GetVideoForDate", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(nil, nil).Once()

		router := newVideoRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/today", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		svc.AssertExpectations(t)
	})
}

func TestVideoHandler_GetVideoByDay(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMock      func(svc *mocks.VideoService)
		expectedStatus int
	}{
		{
			name: "정상계: 일차로 영상 조회",
			url:  "/api/v1/videos/245",
			setupMock: func(svc *mocks.VideoService) {
				svc.On("GetVideoForDay", mock.Anything, 245).
					Return(&model.VideoInfo{VideoID: "v245", DayNumber: 245}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "이상계: 영상 공백 일차는 404",
			url:  "/api/v1/videos/246",
			setupMock: func(svc *mocks.VideoService) {
				svc.On("GetVideoForDay", mock.Anything, 246).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "이상계: 숫자가 아닌 일차",
			url:            "/api/v1/videos/abc",
			setupMock:      func(svc *mocks.VideoService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "이상계: 0 이하의 일차",
			url:            "/api/v1/videos/0",
			setupMock:      func(svc *mocks.VideoService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "이상계: 재생목록 장애는 500",
			url:  "/api/v1/videos/10",
			setupMock: func(svc *mocks.VideoService) {
				svc.On("GetVideoForDay", mock.Anything, 10).
					Return(nil, model.NewAppError("PLAYLIST_UNAVAILABLE", "영상 목록을 가져오지 못했습니다.", "", assert.AnError)).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.VideoService)
			tc.setupMock(svc)
			router := newVideoRouter(svc)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			svc.AssertExpectations(t)
		})
	}
}
