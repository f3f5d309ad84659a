// internal/model/plan.go
package model

import (
	"time"
)

// ReadingPlan 은 하루치 성경 읽기 분량을 나타냅니다.
// day_of_year 를 기본 키로 사용하며, 시드 이후에는 불변 데이터입니다.
// category/summary/reading_time 은 파생 값이므로 시드 시점의 캐시일 뿐이고
// 응답 시에는 bible 패키지로 재계산합니다.
type ReadingPlan struct {
	PlanID    int       `gorm:"primaryKey;autoIncrement:false" json:"plan_id"`
	Date      string    `gorm:"size:10;not null;uniqueIndex" json:"date"` // YYYY-MM-DD
	Title     string    `gorm:"not null" json:"title"`
	Verses    []string  `gorm:"serializer:json;not null" json:"verses"`
	DayOfYear int       `gorm:"not null;uniqueIndex" json:"day_of_year"`
	Category  string    `json:"category,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	ReadTime  string    `gorm:"column:reading_time" json:"reading_time,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (ReadingPlan) TableName() string {
	return "reading_plans"
}

// VideoInfo 는 대시보드에 포함되는 동영상 정보 DTO
type VideoInfo struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	DayNumber    int    `json:"day_number"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Duration     string `json:"duration,omitempty"` // ISO 8601 (예: PT15M30S)
	Minutes      int    `json:"minutes,omitempty"`  // 분 단위 (반올림)
}

// DashboardResponse 는 하루치 대시보드 응답 DTO.
// 계획 + 재계산한 파생 값 + 완료 여부 + 해당 일차의 영상으로 구성됩니다.
type DashboardResponse struct {
	PlanID      int        `json:"plan_id"`
	Date        string     `json:"date"`
	Title       string     `json:"title"`
	Verses      []string   `json:"verses"`
	DayOfYear   int        `json:"day_of_year"`
	Category    string     `json:"category"`
	Summary     string     `json:"summary"`
	ReadingTime string     `json:"reading_time"`
	Completed   bool       `json:"completed"`
	Video       *VideoInfo `json:"video,omitempty"`
}
