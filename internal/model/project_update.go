package model

import (
	"time"
)

// ProjectUpdate 项目动态
type ProjectUpdate struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID int64  `json:"project_id" gorm:"not null;index"`
	Date      string `json:"date"` // YYYY-MM-DD
	Title     string `json:"title" gorm:"not null"`
	Content   string `json:"content" gorm:"type:text"`
}

// TableName 自定义表名
func (ProjectUpdate) TableName() string {
	return "project_update"
}
