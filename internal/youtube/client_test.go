// internal/youtube/client_test.go
package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchPlaylist(t *testing.T) {
	ctx := context.Background()

	t.Run("정상계: 페이지 이어받기와 길이 조회를 합침", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/playlistItems":
				assert.Equal(t, "test-key", r.URL.Query().Get("key"))
				assert.Equal(t, "test-playlist", r.URL.Query().Get("playlistId"))

				if r.URL.Query().Get("pageToken") == "" {
					fmt.Fprint(w, `{
						"nextPageToken": "page2",
						"items": [
							{"snippet": {"title": "성경 통독 1회차", "publishedAt": "2026-01-01T00:00:00Z",
								"resourceId": {"videoId": "vid-1"},
								"thumbnails": {"high": {"url": "http://img/1-high.jpg"}, "default": {"url": "http://img/1.jpg"}}}}
						]
					}`)
					return
				}
				assert.Equal(t, "page2", r.URL.Query().Get("pageToken"))
				fmt.Fprint(w, `{
					"items": [
						{"snippet": {"title": "제목에 일차 없음",
							"resourceId": {"videoId": "vid-2"},
							"thumbnails": {"default": {"url": "http://img/2.jpg"}}}}
					]
				}`)
			case "/videos":
				fmt.Fprint(w, `{
					"items": [
						{"id": "vid-1", "contentDetails": {"duration": "PT12M45S"}},
						{"id": "vid-2", "contentDetails": {"duration": "PT9M"}}
					]
				}`)
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", "test-playlist", server.URL)
		videos, err := client.FetchPlaylist(ctx)
		require.NoError(t, err)
		require.Len(t, videos, 2)

		assert.Equal(t, "vid-1", videos[0].VideoID)
		assert.Equal(t, 1, videos[0].DayNumber)
		assert.Equal(t, "http://img/1-high.jpg", videos[0].ThumbnailURL)
		assert.Equal(t, "PT12M45S", videos[0].Duration)

		// 제목에 일차가 없으면 재생목록 순번을 사용
		assert.Equal(t, "vid-2", videos[1].VideoID)
		assert.Equal(t, 2, videos[1].DayNumber)
		assert.Equal(t, "http://img/2.jpg", videos[1].ThumbnailURL)
		assert.Equal(t, "PT9M", videos[1].Duration)
	})

	t.Run("이상계: API 에러 응답", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"error": {"code": 403, "message": "quotaExceeded"}}`)
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", "test-playlist", server.URL)
		_, err := client.FetchPlaylist(ctx)
		assert.ErrorContains(t, err, "quotaExceeded")
	})

	t.Run("이상계: HTTP 에러 상태", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", "test-playlist", server.URL)
		_, err := client.FetchPlaylist(ctx)
		assert.ErrorContains(t, err, "unexpected status 500")
	})
}
