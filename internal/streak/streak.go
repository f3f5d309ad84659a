// internal/streak/streak.go
package streak

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

const (
	TypeStreak = "streak"
	TypeGap    = "gap"
)

// Period 는 연속 완료 구간(streak) 또는 공백 구간(gap)입니다
type Period struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// Result 는 완료 날짜 집합에서 파생한 스트릭 통계입니다
type Result struct {
	Periods []Period `json:"periods"`
	Current int      `json:"current"`
	Best    int      `json:"best"`
	Total   int      `json:"total"`
	Average int      `json:"average"`
}

// Calculate 는 완료 날짜(YYYY-MM-DD, 중복/비정렬 허용) 목록을
// 스트릭/공백 구간과 통계로 변환합니다.
// 날짜는 이미 한 시간대로 정규화되어 있다고 가정하고 캘린더 기준으로만 비교합니다.
// 파싱할 수 없는 항목은 건너뛰며, 빈 입력이면 전부 0 을 반환합니다.
func Calculate(completedDates []string, today time.Time) Result {
	dates := normalize(completedDates)
	if len(dates) == 0 {
		return Result{Periods: []Period{}}
	}

	periods := buildPeriods(dates)

	var streaks []Period
	for _, p := range periods {
		if p.Type == TypeStreak {
			streaks = append(streaks, p)
		}
	}

	best := 0
	sum := 0
	for _, p := range streaks {
		sum += p.Days
		if p.Days > best {
			best = p.Days
		}
	}
	average := 0
	if len(streaks) > 0 {
		average = int(float64(sum)/float64(len(streaks)) + 0.5)
	}

	// 현재 스트릭: 마지막 구간이 스트릭이면서 오늘 또는 어제에 끝난 경우에만 유효.
	// 하루 이상 지난 스트릭은 과거 기록이 있어도 끊긴 것으로 봅니다.
	todayStr := today.Format(dateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(dateLayout)
	current := 0
	last := periods[len(periods)-1]
	if last.Type == TypeStreak && (last.EndDate == todayStr || last.EndDate == yesterdayStr) {
		current = last.Days
	}

	return Result{
		Periods: periods,
		Current: current,
		Best:    best,
		Total:   len(dates),
		Average: average,
	}
}

// normalize 는 중복 제거 후 오름차순 정렬된 캘린더 날짜 목록을 만듭니다
func normalize(raw []string) []time.Time {
	seen := make(map[string]bool, len(raw))
	var dates []time.Time
	for _, s := range raw {
		if seen[s] {
			continue
		}
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			continue
		}
		seen[s] = true
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// buildPeriods 는 정렬된 날짜를 훑으며 정확히 하루 간격이면 스트릭을 잇고,
// 그 외의 간격은 스트릭을 닫은 뒤 사이를 gap 구간으로 기록합니다.
func buildPeriods(dates []time.Time) []Period {
	var periods []Period
	start := dates[0]
	prev := dates[0]

	closeStreak := func(from, to time.Time) {
		periods = append(periods, Period{
			Type:      TypeStreak,
			StartDate: from.Format(dateLayout),
			EndDate:   to.Format(dateLayout),
			Days:      diffDays(from, to) + 1,
		})
	}

	for _, d := range dates[1:] {
		gap := diffDays(prev, d)
		if gap == 1 {
			prev = d
			continue
		}
		closeStreak(start, prev)
		if gap > 1 {
			periods = append(periods, Period{
				Type:      TypeGap,
				StartDate: prev.AddDate(0, 0, 1).Format(dateLayout),
				EndDate:   d.AddDate(0, 0, -1).Format(dateLayout),
				Days:      gap - 1,
			})
		}
		start = d
		prev = d
	}
	closeStreak(start, prev)

	return periods
}

func diffDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
