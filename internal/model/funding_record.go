package model

import (
	"time"
)

// FundingRecord 出资记录
type FundingRecord struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID  int64   `json:"project_id" gorm:"not null;index"`
	FromWallet string  `json:"from_wallet" gorm:"not null;index"`
	Amount     float64 `json:"amount" gorm:"not null"`
	Token      string  `json:"token" gorm:"default:'SUI'"`
	Message    string  `json:"message"`

	// 链上交易信息，txHash 可空；有值时由验证任务异步确认
	TxHash   *string `json:"tx_hash" gorm:"uniqueIndex"`
	Verified bool    `json:"verified" gorm:"default:false"`

	// 关联
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName 自定义表名
func (FundingRecord) TableName() string {
	return "funding_record"
}
