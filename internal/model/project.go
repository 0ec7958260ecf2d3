package model

import (
	"time"

	"gorm.io/gorm"
)

// Project 众筹项目模型
type Project struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	// 基本信息
	Title        string `json:"title" gorm:"not null" binding:"required"`
	Description  string `json:"description" gorm:"type:text"`
	Category     string `json:"category" gorm:"index"`
	ThumbnailURL string `json:"thumbnail_url"`
	CoverURL     string `json:"cover_url"`
	Story        string `json:"story" gorm:"type:text"`

	// 众筹信息
	GoalAmount   float64 `json:"goal_amount" gorm:"not null" binding:"required,min=0"`
	RaisedAmount float64 `json:"raised_amount" gorm:"default:0"`
	Supporters   int64   `json:"supporters" gorm:"default:0"`
	DaysLeft     int     `json:"days_left" gorm:"default:0"`

	// 状态由后台独立维护，不从金额或剩余天数推导
	Status ProjectStatus `json:"status" gorm:"default:'live';index"`

	// 创建者信息
	CreatorAddress      string `json:"creator_address" gorm:"not null;index"`
	CreatorVerified     bool   `json:"creator_verified" gorm:"default:false"`
	CreatorPastProjects int    `json:"creator_past_projects" gorm:"default:0"`

	// 关联
	Updates  []ProjectUpdate `json:"updates,omitempty" gorm:"foreignKey:ProjectID"`
	Rewards  []Reward        `json:"rewards,omitempty" gorm:"foreignKey:ProjectID"`
	Fundings []FundingRecord `json:"fundings,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName 自定义表名
func (Project) TableName() string {
	return "project"
}

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusLive       ProjectStatus = "live"       // 进行中
	ProjectStatusSuccessful ProjectStatus = "successful" // 成功
	ProjectStatusEnded      ProjectStatus = "ended"      // 已结束
)
