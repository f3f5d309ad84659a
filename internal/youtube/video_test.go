// internal/youtube/video_test.go
package youtube

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePlaylist(n int) []Video {
	videos := make([]Video, n)
	for i := range videos {
		videos[i] = Video{
			VideoID:   fmt.Sprintf("video-%d", i),
			Title:     fmt.Sprintf("성경 통독 %d회차", i+1),
			DayNumber: i + 1,
		}
	}
	return videos
}

func TestResolveVideoForDay(t *testing.T) {
	videos := makePlaylist(366)

	tests := []struct {
		name      string
		day       int
		wantIndex int // -1 이면 영상 없음
	}{
		{name: "정상계: 1일차는 첫 영상", day: 1, wantIndex: 0},
		{name: "정상계: 245일차까지 순차 매칭", day: 245, wantIndex: 244},
		{name: "경계: 246일차는 누락", day: 246, wantIndex: -1},
		{name: "경계: 247일차부터 한 개 밀림", day: 247, wantIndex: 245},
		{name: "정상계: 354일차", day: 354, wantIndex: 352},
		{name: "경계: 355일차는 고정 인덱스 363", day: 355, wantIndex: 363},
		{name: "경계: 356일차부터 두 개 밀림", day: 356, wantIndex: 353},
		{name: "정상계: 365일차", day: 365, wantIndex: 362},
		{name: "경계: 365 초과는 365로 클램프", day: 400, wantIndex: 362},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveVideoForDay(videos, tt.day)
			if tt.wantIndex < 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, videos[tt.wantIndex].VideoID, got.VideoID)
		})
	}
}

func TestResolveVideoForDay_ShortPlaylist(t *testing.T) {
	t.Run("355일차는 재생목록이 짧으면 마지막 영상으로 폴백", func(t *testing.T) {
		videos := makePlaylist(360)
		got := ResolveVideoForDay(videos, 355)
		require.NotNil(t, got)
		assert.Equal(t, videos[359].VideoID, got.VideoID)
	})

	t.Run("범위를 벗어난 인덱스는 영상 없음", func(t *testing.T) {
		videos := makePlaylist(100)
		assert.Nil(t, ResolveVideoForDay(videos, 200))
	})

	t.Run("빈 재생목록", func(t *testing.T) {
		assert.Nil(t, ResolveVideoForDay(nil, 1))
	})
}

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     int
	}{
		{name: "분과 초", duration: "PT15M30S", want: 16},
		{name: "30초 미만은 버림", duration: "PT15M29S", want: 15},
		{name: "시간 포함", duration: "PT1H2M", want: 62},
		{name: "분만", duration: "PT10M", want: 10},
		{name: "초만 있어도 최소 1분", duration: "PT45S", want: 1},
		{name: "아주 짧은 영상도 최소 1분", duration: "PT5S", want: 1},
		{name: "파싱 실패는 0", duration: "invalid", want: 0},
		{name: "빈 문자열은 0", duration: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDurationMinutes(tt.duration))
		})
	}
}

func TestDayOfYear(t *testing.T) {
	assert.Equal(t, 1, DayOfYear(time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, 32, DayOfYear(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 365, DayOfYear(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)))
	// 윤년
	assert.Equal(t, 366, DayOfYear(time.Date(2028, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestDayNumberFromTitle(t *testing.T) {
	assert.Equal(t, 123, dayNumberFromTitle("[성경 통독] 123회차 사무엘상", 7))
	assert.Equal(t, 7, dayNumberFromTitle("제목에 일차 없음", 7))
	assert.Equal(t, 1, dayNumberFromTitle("1회차", 99))
}
