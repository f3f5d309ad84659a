// internal/service/video_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bible_read_keep/internal/model"
	"bible_read_keep/internal/youtube"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlaylist 는 고정된 목록을 돌려주는 PlaylistFetcher 입니다
type fakePlaylist struct {
	videos []youtube.Video
	err    error
}

func (f *fakePlaylist) FetchPlaylist(ctx context.Context) ([]youtube.Video, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.videos, nil
}

func fakeVideos(n int) []youtube.Video {
	videos := make([]youtube.Video, n)
	for i := range videos {
		videos[i] = youtube.Video{
			VideoID:   fmt.Sprintf("video-%d", i),
			Title:     fmt.Sprintf("성경 통독 %d회차", i+1),
			DayNumber: i + 1,
			Duration:  "PT12M45S",
		}
	}
	return videos
}

func Test_videoService_GetVideoForDay(t *testing.T) {
	ctx := context.Background()

	t.Run("정상계: 일차에 맞는 영상과 분 단위 길이", func(t *testing.T) {
		svc := NewVideoService(&fakePlaylist{videos: fakeVideos(366)})

		got, err := svc.GetVideoForDay(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "video-2", got.VideoID)
		assert.Equal(t, 3, got.DayNumber)
		assert.Equal(t, "PT12M45S", got.Duration)
		assert.Equal(t, 13, got.Minutes)
	})

	t.Run("정상계: 246일차는 영상 없음이 정상", func(t *testing.T) {
		svc := NewVideoService(&fakePlaylist{videos: fakeVideos(366)})

		got, err := svc.GetVideoForDay(ctx, 246)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("정상계: 플레이어가 설정되지 않으면 항상 영상 없음", func(t *testing.T) {
		svc := NewVideoService(nil)

		got, err := svc.GetVideoForDay(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("이상계: 재생목록 조회 실패", func(t *testing.T) {
		svc := NewVideoService(&fakePlaylist{err: errors.New("quota exceeded")})

		_, err := svc.GetVideoForDay(ctx, 1)
		require.Error(t, err)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "PLAYLIST_UNAVAILABLE", appErr.Detail.Code)
	})
}
