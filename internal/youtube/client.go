// internal/youtube/client.go
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// PlaylistFetcher 는 재생목록 전체를 가져오는 클라이언트 인터페이스입니다.
// 캐시와 테스트 더블이 이 인터페이스를 구현합니다.
type PlaylistFetcher interface {
	FetchPlaylist(ctx context.Context) ([]Video, error)
}

// Client 는 YouTube Data API v3 를 사용하는 PlaylistFetcher 구현입니다
type Client struct {
	apiKey     string
	playlistID string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, playlistID string) *Client {
	return &Client{
		apiKey:     apiKey,
		playlistID: playlistID,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL 은 테스트 서버를 향하도록 베이스 URL 을 바꾼 클라이언트를 만듭니다
func NewClientWithBaseURL(apiKey, playlistID, baseURL string) *Client {
	c := NewClient(apiKey, playlistID)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// --- API 응답 구조 (필요한 필드만) ---

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title       string `json:"title"`
			PublishedAt string `json:"publishedAt"`
			ResourceID  struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
			Thumbnails struct {
				High    thumbnail `json:"high"`
				Default thumbnail `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
	Error *apiError `json:"error"`
}

type thumbnail struct {
	URL string `json:"url"`
}

type videosResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FetchPlaylist 는 재생목록의 모든 영상을 페이지 단위로 가져온 뒤
// 영상 길이(duration) 정보를 추가 조회해서 합칩니다.
func (c *Client) FetchPlaylist(ctx context.Context) ([]Video, error) {
	var all []Video
	pageToken := ""

	for {
		page, err := c.fetchPage(ctx, pageToken)
		if err != nil {
			return nil, err
		}

		ids := make([]string, 0, len(page.Items))
		for _, item := range page.Items {
			ids = append(ids, item.Snippet.ResourceID.VideoID)
		}
		durations, err := c.fetchDurations(ctx, ids)
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			sn := item.Snippet
			thumb := sn.Thumbnails.High.URL
			if thumb == "" {
				thumb = sn.Thumbnails.Default.URL
			}
			all = append(all, Video{
				VideoID:      sn.ResourceID.VideoID,
				Title:        sn.Title,
				DayNumber:    dayNumberFromTitle(sn.Title, len(all)+1),
				ThumbnailURL: thumb,
				PublishedAt:  sn.PublishedAt,
				Duration:     durations[sn.ResourceID.VideoID],
			})
		}

		if page.NextPageToken == "" {
			return all, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *Client) fetchPage(ctx context.Context, pageToken string) (*playlistItemsResponse, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("maxResults", "50")
	q.Set("playlistId", c.playlistID)
	q.Set("key", c.apiKey)
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}

	var resp playlistItemsResponse
	if err := c.getJSON(ctx, "/playlistItems?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("youtube.Client.fetchPage: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("youtube.Client.fetchPage: api error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	return &resp, nil
}

func (c *Client) fetchDurations(ctx context.Context, videoIDs []string) (map[string]string, error) {
	durations := make(map[string]string, len(videoIDs))
	if len(videoIDs) == 0 {
		return durations, nil
	}

	q := url.Values{}
	q.Set("part", "contentDetails")
	q.Set("id", strings.Join(videoIDs, ","))
	q.Set("key", c.apiKey)

	var resp videosResponse
	if err := c.getJSON(ctx, "/videos?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("youtube.Client.fetchDurations: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("youtube.Client.fetchDurations: api error %d: %s", resp.Error.Code, resp.Error.Message)
	}

	for _, item := range resp.Items {
		durations[item.ID] = item.ContentDetails.Duration
	}
	return durations, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(dst)
}
