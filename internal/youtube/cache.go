// internal/youtube/cache.go
package youtube

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CachedPlaylist 는 재생목록 조회 결과를 TTL 동안 메모리에 보관하는
// PlaylistFetcher 데코레이터입니다. 만료 시 다음 조회에서 갱신하며,
// 갱신에 실패하면 만료된 캐시라도 있으면 그것을 돌려줍니다.
type CachedPlaylist struct {
	fetcher PlaylistFetcher
	ttl     time.Duration
	logger  *slog.Logger

	mu        sync.RWMutex
	videos    []Video
	fetchedAt time.Time
}

func NewCachedPlaylist(fetcher PlaylistFetcher, ttl time.Duration, logger *slog.Logger) *CachedPlaylist {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedPlaylist{
		fetcher: fetcher,
		ttl:     ttl,
		logger:  logger,
	}
}

func (c *CachedPlaylist) FetchPlaylist(ctx context.Context) ([]Video, error) {
	c.mu.RLock()
	if c.videos != nil && time.Since(c.fetchedAt) < c.ttl {
		videos := c.videos
		c.mu.RUnlock()
		return videos, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// 락 대기 중 다른 고루틴이 갱신했을 수 있음
	if c.videos != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.videos, nil
	}

	videos, err := c.fetcher.FetchPlaylist(ctx)
	if err != nil {
		if c.videos != nil {
			c.logger.Warn("Playlist refresh failed, serving stale cache",
				slog.Any("error", err),
				slog.Time("fetched_at", c.fetchedAt),
			)
			return c.videos, nil
		}
		return nil, err
	}

	c.videos = videos
	c.fetchedAt = time.Now()
	c.logger.Info("Playlist cache refreshed", slog.Int("count", len(videos)))
	return videos, nil
}
