// internal/service/video_service.go
package service

import (
	"context"
	"time"

	"bible_read_keep/internal/middleware"
	"bible_read_keep/internal/model"
	"bible_read_keep/internal/youtube"
)

// VideoService 는 일차/날짜에 해당하는 통독 영상을 찾아줍니다
type VideoService interface {
	GetVideoForDay(ctx context.Context, dayNumber int) (*model.VideoInfo, error)
	GetVideoForDate(ctx context.Context, date time.Time) (*model.VideoInfo, error)
}

type videoService struct {
	playlist youtube.PlaylistFetcher
}

// NewVideoService 는 VideoService 를 생성합니다.
// playlist 가 nil 이면 (API 키 미설정) 항상 영상 없음으로 동작합니다.
func NewVideoService(playlist youtube.PlaylistFetcher) VideoService {
	return &videoService{playlist: playlist}
}

func (s *videoService) GetVideoForDay(ctx context.Context, dayNumber int) (*model.VideoInfo, error) {
	if s.playlist == nil {
		return nil, nil
	}
	logger := middleware.GetLogger(ctx)

	videos, err := s.playlist.FetchPlaylist(ctx)
	if err != nil {
		logger.Error("Failed to fetch playlist", "error", err)
		return nil, model.NewAppError("PLAYLIST_UNAVAILABLE", "영상 목록을 가져오지 못했습니다.", "", err)
	}

	v := youtube.ResolveVideoForDay(videos, dayNumber)
	if v == nil {
		// 246일차 누락 등 재생목록의 알려진 공백. 에러가 아닙니다.
		return nil, nil
	}

	return &model.VideoInfo{
		VideoID:      v.VideoID,
		Title:        v.Title,
		DayNumber:    v.DayNumber,
		ThumbnailURL: v.ThumbnailURL,
		Duration:     v.Duration,
		Minutes:      youtube.ParseDurationMinutes(v.Duration),
	}, nil
}

func (s *videoService) GetVideoForDate(ctx context.Context, date time.Time) (*model.VideoInfo, error) {
	return s.GetVideoForDay(ctx, youtube.DayOfYear(date))
}
