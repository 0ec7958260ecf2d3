package logic

import (
	"fmt"
	"strconv"

	"github.com/openfund/ofs/internal/model"
	"github.com/openfund/ofs/pkg/api"
	"gorm.io/gorm"
)

// 用户项目列表类型
const (
	UserProjectsCreated = "created"
	UserProjectsFunded  = "funded"
)

// UserLogic 用户维度业务逻辑，用户以钱包地址标识
type UserLogic struct {
	db *gorm.DB
}

// NewUserLogic 创建用户业务逻辑
func NewUserLogic(db *gorm.DB) *UserLogic {
	return &UserLogic{db: db}
}

// GetUserStats 获取用户统计
func (u *UserLogic) GetUserStats(address string) (*api.UserStats, error) {
	if address == "" {
		return nil, inputErr("用户地址不能为空")
	}

	stats := &api.UserStats{WalletAddress: address}

	if err := u.db.Model(&model.Project{}).
		Where("creator_address = ?", address).
		Count(&stats.CreatedCount).Error; err != nil {
		return nil, fmt.Errorf("统计创建项目数失败: %w", err)
	}

	if err := u.db.Model(&model.FundingRecord{}).
		Where("from_wallet = ?", address).
		Distinct("project_id").
		Count(&stats.FundedCount).Error; err != nil {
		return nil, fmt.Errorf("统计出资项目数失败: %w", err)
	}

	var totalRaised *float64
	if err := u.db.Model(&model.Project{}).
		Where("creator_address = ?", address).
		Select("SUM(raised_amount)").
		Scan(&totalRaised).Error; err != nil {
		return nil, fmt.Errorf("统计已筹总额失败: %w", err)
	}
	if totalRaised != nil {
		stats.TotalRaised = *totalRaised
	}

	var totalContributed *float64
	if err := u.db.Model(&model.FundingRecord{}).
		Where("from_wallet = ?", address).
		Select("SUM(amount)").
		Scan(&totalContributed).Error; err != nil {
		return nil, fmt.Errorf("统计出资总额失败: %w", err)
	}
	if totalContributed != nil {
		stats.TotalContributed = *totalContributed
	}

	return stats, nil
}

// GetUserProjects 获取用户创建或出资过的项目（分页）
func (u *UserLogic) GetUserProjects(address, listType string, page, limit int) ([]api.Project, api.PaginationMeta, error) {
	if address == "" {
		return nil, api.PaginationMeta{}, inputErr("用户地址不能为空")
	}

	page, limit = normalizePage(page, limit)

	query := u.db.Model(&model.Project{})
	switch listType {
	case UserProjectsCreated:
		query = query.Where("creator_address = ?", address)
	case UserProjectsFunded:
		sub := u.db.Model(&model.FundingRecord{}).
			Distinct("project_id").
			Where("from_wallet = ?", address)
		query = query.Where("id IN (?)", sub)
	default:
		return nil, api.PaginationMeta{}, inputErr("无效的列表类型")
	}

	// 复用同一条件链做 Count 与 Find
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, api.PaginationMeta{}, fmt.Errorf("统计用户项目数失败: %w", err)
	}

	var projects []model.Project
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&projects).Error; err != nil {
		return nil, api.PaginationMeta{}, fmt.Errorf("获取用户项目失败: %w", err)
	}

	items := make([]api.Project, 0, len(projects))
	for i := range projects {
		items = append(items, ProjectToAPI(&projects[i]))
	}

	return items, buildMeta(page, limit, total), nil
}

// GetUserTransactions 获取用户出资交易历史
func (u *UserLogic) GetUserTransactions(address string) (*api.UserTransactions, error) {
	if address == "" {
		return nil, inputErr("用户地址不能为空")
	}

	var records []model.FundingRecord
	if err := u.db.Where("from_wallet = ?", address).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("获取用户交易记录失败: %w", err)
	}

	out := &api.UserTransactions{
		WalletAddress: address,
		Items:         make([]api.TransactionItem, 0, len(records)),
	}
	for i := range records {
		r := &records[i]
		out.Items = append(out.Items, api.TransactionItem{
			ID:        strconv.FormatInt(r.ID, 10),
			Type:      "funding",
			ProjectID: strconv.FormatInt(r.ProjectID, 10),
			Amount:    r.Amount,
			Token:     r.Token,
			TxHash:    r.TxHash,
			CreatedAt: r.CreatedAt,
		})
	}

	return out, nil
}
