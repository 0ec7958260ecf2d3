package api

import (
	"errors"
	"fmt"
	"time"
)

// ProjectStatus 项目状态（后台独立维护，不从金额推导）
type ProjectStatus string

const (
	StatusLive       ProjectStatus = "live"       // 进行中
	StatusSuccessful ProjectStatus = "successful" // 成功
	StatusEnded      ProjectStatus = "ended"      // 已结束
)

// ValidStatus 校验项目状态值
func ValidStatus(s string) bool {
	switch ProjectStatus(s) {
	case StatusLive, StatusSuccessful, StatusEnded:
		return true
	}
	return false
}

// StatusFilter 列表状态筛选值
type StatusFilter string

const (
	StatusFilterAll        StatusFilter = "all"
	StatusFilterLive       StatusFilter = "live"
	StatusFilterSuccessful StatusFilter = "successful"
	StatusFilterEnded      StatusFilter = "ended"
)

// ValidStatusFilter 校验状态筛选值
func ValidStatusFilter(s string) bool {
	return s == string(StatusFilterAll) || ValidStatus(s)
}

// SortOption 列表排序方式
type SortOption string

const (
	SortTrending   SortOption = "trending"    // 按已筹金额降序
	SortNew        SortOption = "new"         // 按项目ID数值降序
	SortEndingSoon SortOption = "ending-soon" // 按剩余天数升序
)

// ValidSortOption 校验排序方式
func ValidSortOption(s string) bool {
	switch SortOption(s) {
	case SortTrending, SortNew, SortEndingSoon:
		return true
	}
	return false
}

// CategoryAll 类目筛选的"全部"哨兵值
const CategoryAll = "All"

// Categories 固定类目集合
var Categories = []string{CategoryAll, "Tech", "Art", "Social", "Game", "Design", "Music"}

// Creator 项目创建者信息
type Creator struct {
	WalletAddress string `json:"walletAddress"`
	Verified      bool   `json:"verified"`
	PastProjects  int    `json:"pastProjects"`
}

// ProjectUpdate 项目动态
type ProjectUpdate struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Reward 回报档位
type Reward struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Available   int     `json:"available"`
}

// Project 众筹项目
type Project struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Status       ProjectStatus   `json:"status"`
	ThumbnailURL string          `json:"thumbnailUrl"`
	CoverURL     string          `json:"coverUrl"`
	Story        string          `json:"story,omitempty"`
	GoalAmount   float64         `json:"goalAmount"`
	RaisedAmount float64         `json:"raisedAmount"`
	Supporters   int64           `json:"supporters"`
	DaysLeft     int             `json:"daysLeft"`
	CreatedAt    time.Time       `json:"createdAt"`
	Creator      Creator         `json:"creator"`
	Updates      []ProjectUpdate `json:"updates,omitempty"`
	Rewards      []Reward        `json:"rewards,omitempty"`
}

// Validate 解码边界校验，响应进入调用方前必须通过
func (p *Project) Validate() error {
	if p.ID == "" {
		return errors.New("project id is empty")
	}
	if p.Title == "" {
		return fmt.Errorf("project %s: title is empty", p.ID)
	}
	if !ValidStatus(string(p.Status)) {
		return fmt.Errorf("project %s: invalid status %q", p.ID, p.Status)
	}
	if p.GoalAmount <= 0 {
		return fmt.Errorf("project %s: goal amount must be positive", p.ID)
	}
	if p.RaisedAmount < 0 {
		return fmt.Errorf("project %s: raised amount is negative", p.ID)
	}
	return nil
}

// PaginationMeta 分页信息
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Paginated 分页响应
type Paginated[T any] struct {
	Items []T            `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}

// FundingItem 出资记录
type FundingItem struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"projectId"`
	FromWallet string    `json:"fromWallet"`
	Amount     float64   `json:"amount"`
	Token      string    `json:"token"`
	Message    string    `json:"message"`
	TxHash     *string   `json:"txHash"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FundingSummary 项目出资汇总
type FundingSummary struct {
	ProjectID    string         `json:"projectId"`
	GoalAmount   float64        `json:"goalAmount"`
	RaisedAmount float64        `json:"raisedAmount"`
	Supporters   int64          `json:"supporters"`
	Items        []FundingItem  `json:"items"`
	Meta         PaginationMeta `json:"meta"`
}

// UserStats 用户统计
type UserStats struct {
	WalletAddress    string  `json:"walletAddress"`
	CreatedCount     int64   `json:"createdCount"`
	FundedCount      int64   `json:"fundedCount"`
	TotalRaised      float64 `json:"totalRaised"`
	TotalContributed float64 `json:"totalContributed"`
}

// TransactionItem 用户交易记录条目
type TransactionItem struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	ProjectID string    `json:"projectId"`
	Amount    float64   `json:"amount"`
	Token     string    `json:"token"`
	TxHash    *string   `json:"txHash"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserTransactions 用户交易历史
type UserTransactions struct {
	WalletAddress string            `json:"walletAddress"`
	Items         []TransactionItem `json:"items"`
}
