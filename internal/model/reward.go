package model

import (
	"time"
)

// Reward 回报档位
type Reward struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID   int64   `json:"project_id" gorm:"not null;index"`
	Amount      float64 `json:"amount" gorm:"not null"`
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Available   int     `json:"available" gorm:"default:0"`
}

// TableName 自定义表名
func (Reward) TableName() string {
	return "reward"
}
