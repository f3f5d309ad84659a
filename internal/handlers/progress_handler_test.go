// internal/handlers/progress_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bible_read_keep/internal/handlers"
	"bible_read_keep/internal/model"
	"bible_read_keep/internal/service/mocks"
	"bible_read_keep/internal/streak"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testAuthMiddleware 는 인증 미들웨어 대신 사용자 ID 를 컨텍스트에 심습니다
func testAuthMiddleware(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newProgressRouter(userID uuid.UUID, svc *mocks.ProgressService) *chi.Mux {
	h := handlers.NewProgressHandler(svc)
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(testAuthMiddleware(userID))
		r.Get("/api/v1/progress", h.ListProgress)
		r.Get("/api/v1/progress/streaks", h.GetStreaks)
		r.Get("/api/v1/progress/yearly", h.GetYearlyProgress)
		r.Put("/api/v1/progress/{plan_id}", h.ToggleProgress)
	})
	return r
}

func TestProgressHandler_ToggleProgress(t *testing.T) {
	userID := uuid.New()
	completedTrue := true

	tests := []struct {
		name           string
		url            string
		body           interface{}
		setupMock      func(svc *mocks.ProgressService)
		expectedStatus int
	}{
		{
			name: "정상계: 완료 체크",
			url:  "/api/v1/progress/10",
			body: model.ToggleProgressRequest{Completed: &completedTrue},
			setupMock: func(svc *mocks.ProgressService) {
				svc.On("ToggleProgress", mock.Anything, userID, 10, true).
					Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "이상계: plan_id 가 숫자가 아님",
			url:            "/api/v1/progress/abc",
			body:           model.ToggleProgressRequest{Completed: &completedTrue},
			setupMock:      func(svc *mocks.ProgressService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "이상계: completed 필드 누락",
			url:            "/api/v1/progress/10",
			body:           map[string]interface{}{},
			setupMock:      func(svc *mocks.ProgressService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "이상계: 존재하지 않는 읽기표",
			url:  "/api/v1/progress/999",
			body: model.ToggleProgressRequest{Completed: &completedTrue},
			setupMock: func(svc *mocks.ProgressService) {
				svc.On("ToggleProgress", mock.Anything, userID, 999, true).
					Return(model.NewAppError("PLAN_NOT_FOUND", "존재하지 않는 읽기표입니다.", "plan_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.ProgressService)
			tc.setupMock(svc)
			router := newProgressRouter(userID, svc)

			payload, err := json.Marshal(tc.body)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPut, tc.url, bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestProgressHandler_GetStreaks(t *testing.T) {
	userID := uuid.New()

	t.Run("정상계: 스트릭 통계 반환", func(t *testing.T) {
		svc := new(mocks.ProgressService)
		svc.On("GetStreaks", mock.Anything, userID).
			Return(&streak.Result{
				Periods: []streak.Period{
					{Type: streak.TypeStreak, StartDate: "2026-01-01", EndDate: "2026-01-03", Days: 3},
				},
				Current: 3,
				Best:    3,
				Total:   3,
				Average: 3,
			}, nil).Once()

		router := newProgressRouter(userID, svc)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/progress/streaks", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got streak.Result
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 3, got.Current)
		assert.Len(t, got.Periods, 1)
		svc.AssertExpectations(t)
	})

	t.Run("이상계: 서비스 오류는 500", func(t *testing.T) {
		svc := new(mocks.ProgressService)
		svc.On("GetStreaks", mock.Anything, userID).
			Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "완료 날짜 조회에 실패했습니다.", "", errors.New("db down"))).Once()

		router := newProgressRouter(userID, svc)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/progress/streaks", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		svc.AssertExpectations(t)
	})
}

func TestProgressHandler_GetYearlyProgress(t *testing.T) {
	userID := uuid.New()

	t.Run("정상계: 연도 지정", func(t *testing.T) {
		svc := new(mocks.ProgressService)
		svc.On("GetYearlyProgress", mock.Anything, userID, 2026).
			Return(&model.YearlyProgressResponse{Year: 2026, CompletedCount: 73, TotalCount: 365, Percent: 20}, nil).Once()

		router := newProgressRouter(userID, svc)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/progress/yearly?year=2026", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got model.YearlyProgressResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 73, got.CompletedCount)
		svc.AssertExpectations(t)
	})

	t.Run("이상계: 연도 형식 오류는 400", func(t *testing.T) {
		svc := new(mocks.ProgressService)
		router := newProgressRouter(userID, svc)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/progress/yearly?year=abcd", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertExpectations(t)
	})
}
