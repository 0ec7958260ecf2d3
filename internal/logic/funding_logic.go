package logic

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/openfund/ofs/internal/model"
	"github.com/openfund/ofs/pkg/api"
	"gorm.io/gorm"
)

// FundingLogic 出资业务逻辑
type FundingLogic struct {
	db *gorm.DB
}

// NewFundingLogic 创建出资业务逻辑
func NewFundingLogic(db *gorm.DB) *FundingLogic {
	return &FundingLogic{db: db}
}

// GetProjectFunding 获取项目出资汇总与分页出资记录
func (f *FundingLogic) GetProjectFunding(projectID int64, page, limit int) (*api.FundingSummary, error) {
	var project model.Project
	if err := f.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	page, limit = normalizePage(page, limit)

	var total int64
	if err := f.db.Model(&model.FundingRecord{}).
		Where("project_id = ?", projectID).
		Count(&total).Error; err != nil {
		return nil, fmt.Errorf("统计出资记录失败: %w", err)
	}

	var records []model.FundingRecord
	if err := f.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("获取出资记录失败: %w", err)
	}

	items := make([]api.FundingItem, 0, len(records))
	for i := range records {
		items = append(items, FundingToAPI(&records[i]))
	}

	return &api.FundingSummary{
		ProjectID:    strconv.FormatInt(project.ID, 10),
		GoalAmount:   project.GoalAmount,
		RaisedAmount: project.RaisedAmount,
		Supporters:   project.Supporters,
		Items:        items,
		Meta:         buildMeta(page, limit, total),
	}, nil
}

// CreateFunding 创建出资记录
// 事务内：插入记录、累加项目已筹金额、按去重钱包数刷新支持者数量
func (f *FundingLogic) CreateFunding(projectID int64, body *api.CreateFundingBody) (*model.FundingRecord, error) {
	if body.FromWallet == "" {
		return nil, inputErr("出资钱包地址不能为空")
	}
	if body.Amount <= 0 {
		return nil, inputErr("出资金额必须大于0")
	}

	var project model.Project
	if err := f.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if project.Status != model.ProjectStatusLive {
		return nil, inputErr("项目不在进行中，无法接受出资")
	}

	record := &model.FundingRecord{
		ProjectID:  projectID,
		FromWallet: body.FromWallet,
		Amount:     body.Amount,
		Token:      body.Token,
		Message:    body.Message,
		TxHash:     body.TxHash,
	}
	if record.Token == "" {
		record.Token = "SUI"
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("创建出资记录失败: %w", err)
		}

		var supporters int64
		if err := tx.Model(&model.FundingRecord{}).
			Where("project_id = ?", projectID).
			Distinct("from_wallet").
			Count(&supporters).Error; err != nil {
			return fmt.Errorf("统计支持者数量失败: %w", err)
		}

		if err := tx.Model(&model.Project{}).
			Where("id = ?", projectID).
			Updates(map[string]interface{}{
				"raised_amount": gorm.Expr("raised_amount + ?", body.Amount),
				"supporters":    supporters,
			}).Error; err != nil {
			return fmt.Errorf("更新项目筹款状态失败: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}
