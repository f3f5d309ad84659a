// internal/youtube/video.go
package youtube

import (
	"regexp"
	"strconv"
	"time"
)

// Video 는 재생목록 항목 하나의 메타데이터입니다
type Video struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	DayNumber    int    `json:"day_number"` // 제목에서 파싱, 신뢰도 낮음
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
	Duration     string `json:"duration,omitempty"` // ISO 8601 (예: PT15M30S)
}

// ResolveVideoForDay 는 일차에 해당하는 영상을 반환합니다 (재생목록 예외 처리 포함).
//   - 1~245일차: 순차 매칭 (index = day-1)
//   - 246일차: 영상 없음 (알려진 누락)
//   - 247~354일차: 한 개 밀린 순번 (index = day-2)
//   - 355일차: 재생목록 364번째(index 363) 영상, 짧으면 마지막 영상
//   - 356~365일차: 두 개 밀린 순번 (index = day-3)
//
// 경계값(245/246/247, 354/355/356)은 실제 재생목록에서 관측된 규칙이므로
// 단순화하지 말고 그대로 유지해야 합니다.
// 인덱스가 범위를 벗어나면 에러가 아니라 nil 을 반환합니다.
func ResolveVideoForDay(videos []Video, dayNumber int) *Video {
	if len(videos) == 0 {
		return nil
	}

	day := dayNumber
	if day > 365 {
		day = 365
	}

	switch {
	case day <= 245:
		return videoAt(videos, day-1)
	case day == 246:
		return nil
	case day <= 354:
		return videoAt(videos, day-2)
	case day == 355:
		if v := videoAt(videos, 363); v != nil {
			return v
		}
		return videoAt(videos, len(videos)-1)
	default:
		return videoAt(videos, day-3)
	}
}

func videoAt(videos []Video, index int) *Video {
	if index < 0 || index >= len(videos) {
		return nil
	}
	return &videos[index]
}

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDurationMinutes 는 ISO 8601 기간(PT15M30S)을 분 단위로 변환합니다.
// 30초 이상은 올림하며 최소 1분입니다. 파싱 실패 시 0.
func ParseDurationMinutes(duration string) int {
	m := durationPattern.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}

	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[3]))

	total := hours*60 + minutes
	if seconds >= 30 {
		total++
	}
	if total == 0 {
		return 1
	}
	return total
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// DayOfYear 는 해당 날짜가 1월 1일부터 몇 번째 날인지 반환합니다 (1~366)
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

var dayNumberPattern = regexp.MustCompile(`(\d+)회차`)

// dayNumberFromTitle 은 "NNN회차" 형식의 제목에서 일차를 추출합니다.
// 없으면 fallback (재생목록상의 순번) 을 사용합니다.
func dayNumberFromTitle(title string, fallback int) int {
	m := dayNumberPattern.FindStringSubmatch(title)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	return n
}
