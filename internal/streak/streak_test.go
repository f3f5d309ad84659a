// internal/streak/streak_test.go
package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		dates       []string
		today       string
		wantPeriods []Period
		wantCurrent int
		wantBest    int
		wantTotal   int
		wantAverage int
	}{
		{
			name:  "정상계: 오늘까지 이어진 3일 연속",
			dates: []string{"2026-01-01", "2026-01-02", "2026-01-03"},
			today: "2026-01-03",
			wantPeriods: []Period{
				{Type: TypeStreak, StartDate: "2026-01-01", EndDate: "2026-01-03", Days: 3},
			},
			wantCurrent: 3,
			wantBest:    3,
			wantTotal:   3,
			wantAverage: 3,
		},
		{
			name:  "정상계: 연속-공백-연속",
			dates: []string{"2026-01-01", "2026-01-05"},
			today: "2026-01-05",
			wantPeriods: []Period{
				{Type: TypeStreak, StartDate: "2026-01-01", EndDate: "2026-01-01", Days: 1},
				{Type: TypeGap, StartDate: "2026-01-02", EndDate: "2026-01-04", Days: 3},
				{Type: TypeStreak, StartDate: "2026-01-05", EndDate: "2026-01-05", Days: 1},
			},
			wantCurrent: 1,
			wantBest:    1,
			wantTotal:   2,
			wantAverage: 1,
		},
		{
			name:  "정상계: 하루 지난 연속도 현재 스트릭으로 인정",
			dates: []string{"2026-02-01", "2026-02-02"},
			today: "2026-02-03",
			wantPeriods: []Period{
				{Type: TypeStreak, StartDate: "2026-02-01", EndDate: "2026-02-02", Days: 2},
			},
			wantCurrent: 2,
			wantBest:    2,
			wantTotal:   2,
			wantAverage: 2,
		},
		{
			name:  "이상계: 오래된 기록은 현재 스트릭이 아님",
			dates: []string{"2026-01-01"},
			today: "2026-01-10",
			wantPeriods: []Period{
				{Type: TypeStreak, StartDate: "2026-01-01", EndDate: "2026-01-01", Days: 1},
			},
			wantCurrent: 0,
			wantBest:    1,
			wantTotal:   1,
			wantAverage: 1,
		},
		{
			name:  "정상계: 비정렬/중복 입력도 동일한 결과",
			dates: []string{"2026-01-03", "2026-01-01", "2026-01-02", "2026-01-03"},
			today: "2026-01-03",
			wantPeriods: []Period{
				{Type: TypeStreak, StartDate: "2026-01-01", EndDate: "2026-01-03", Days: 3},
			},
			wantCurrent: 3,
			wantBest:    3,
			wantTotal:   3,
			wantAverage: 3,
		},
		{
			// (3 + 1) / 2 = 2
			name:  "정상계: 평균은 반올림",
			dates: []string{"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-07"},
			today: "2026-03-07",
			wantPeriods: []Period{
				{Type: TypeStreak, StartDate: "2026-03-01", EndDate: "2026-03-03", Days: 3},
				{Type: TypeGap, StartDate: "2026-03-04", EndDate: "2026-03-06", Days: 3},
				{Type: TypeStreak, StartDate: "2026-03-07", EndDate: "2026-03-07", Days: 1},
			},
			wantCurrent: 1,
			wantBest:    3,
			wantTotal:   4,
			wantAverage: 2,
		},
		{
			name:        "경계: 빈 입력은 전부 0",
			dates:       nil,
			today:       "2026-01-01",
			wantPeriods: []Period{},
			wantCurrent: 0,
			wantBest:    0,
			wantTotal:   0,
			wantAverage: 0,
		},
		{
			name:  "이상계: 파싱 불가 날짜는 건너뜀",
			dates: []string{"2026-01-01", "not-a-date", "2026-01-02"},
			today: "2026-01-02",
			wantPeriods: []Period{
				{Type: TypeStreak, StartDate: "2026-01-01", EndDate: "2026-01-02", Days: 2},
			},
			wantCurrent: 2,
			wantBest:    2,
			wantTotal:   2,
			wantAverage: 2,
		},
		{
			name:  "경계: 월 경계를 넘는 연속",
			dates: []string{"2026-01-31", "2026-02-01"},
			today: "2026-02-01",
			wantPeriods: []Period{
				{Type: TypeStreak, StartDate: "2026-01-31", EndDate: "2026-02-01", Days: 2},
			},
			wantCurrent: 2,
			wantBest:    2,
			wantTotal:   2,
			wantAverage: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.dates, mustDate(t, tt.today))
			assert.Equal(t, tt.wantPeriods, got.Periods)
			assert.Equal(t, tt.wantCurrent, got.Current, "current")
			assert.Equal(t, tt.wantBest, got.Best, "best")
			assert.Equal(t, tt.wantTotal, got.Total, "total")
			assert.Equal(t, tt.wantAverage, got.Average, "average")
		})
	}
}
