// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReadingProgress 는 사용자의 하루치 읽기 완료 기록입니다.
// (user_id, plan_id) 당 최대 한 건만 존재합니다.
type ReadingProgress struct {
	ProgressID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"progress_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_user_plan,unique" json:"-"`
	PlanID      int       `gorm:"not null;index:idx_user_plan,unique" json:"plan_id"`
	CompletedAt string    `gorm:"size:10;not null;index" json:"completed_at"` // YYYY-MM-DD (캘린더 기준 비교)
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`

	// 관계 (Preload용)
	Plan *ReadingPlan `gorm:"foreignKey:PlanID;references:PlanID" json:"-"`
}

func (ReadingProgress) TableName() string {
	return "reading_progress"
}

// ToggleProgressRequest 는 완료 체크/해제 요청 DTO
type ToggleProgressRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// YearlyProgressResponse 는 연간 진행률 응답 DTO
type YearlyProgressResponse struct {
	Year           int     `json:"year"`
	CompletedCount int     `json:"completed_count"`
	TotalCount     int     `json:"total_count"`
	Percent        float64 `json:"percent"`
}
