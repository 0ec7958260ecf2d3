package logic

import (
	"errors"
	"fmt"

	"github.com/openfund/ofs/internal/catalog"
	"github.com/openfund/ofs/internal/model"
	"github.com/openfund/ofs/pkg/api"
	"gorm.io/gorm"
)

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	db *gorm.DB
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(db *gorm.DB) *ProjectLogic {
	return &ProjectLogic{db: db}
}

// CreateProject 创建项目
func (p *ProjectLogic) CreateProject(body *api.CreateProjectBody, walletAddress string) (*model.Project, error) {
	project := &model.Project{
		Title:        body.Title,
		Description:  body.Description,
		Category:     body.Category,
		ThumbnailURL: body.ThumbnailURL,
		CoverURL:     body.CoverURL,
		Story:        body.Story,
		GoalAmount:   body.GoalAmount,
		RaisedAmount: 0,
		Supporters:   0,
		Status:       model.ProjectStatusLive,
	}
	if body.DaysLeft != nil {
		project.DaysLeft = *body.DaysLeft
	}

	// 创建者信息：请求体优先，缺省时回落到请求头中的钱包地址
	if body.Creator != nil && body.Creator.WalletAddress != "" {
		project.CreatorAddress = body.Creator.WalletAddress
		if body.Creator.Verified != nil {
			project.CreatorVerified = *body.Creator.Verified
		}
		if body.Creator.PastProjects != nil {
			project.CreatorPastProjects = *body.Creator.PastProjects
		}
	} else {
		project.CreatorAddress = walletAddress
	}

	if err := p.validateProject(project); err != nil {
		return nil, err
	}

	if err := p.db.Create(project).Error; err != nil {
		return nil, fmt.Errorf("创建项目失败: %w", err)
	}

	return project, nil
}

// ListProjects 获取项目列表
// 全量加载后交给 catalog 引擎做筛选与排序，再做内存分页
func (p *ProjectLogic) ListProjects(params catalog.Params, page, limit int) ([]api.Project, api.PaginationMeta, error) {
	var projects []model.Project
	if err := p.db.Order("id").Find(&projects).Error; err != nil {
		return nil, api.PaginationMeta{}, fmt.Errorf("获取项目列表失败: %w", err)
	}

	items := make([]api.Project, 0, len(projects))
	for i := range projects {
		items = append(items, ProjectToAPI(&projects[i]))
	}

	out, meta := paginateProjects(catalog.Apply(items, params), page, limit)
	return out, meta, nil
}

// GetProject 获取项目详情（含项目动态与回报档位）
func (p *ProjectLogic) GetProject(id int64) (*model.Project, error) {
	var project model.Project
	err := p.db.Preload("Updates", func(db *gorm.DB) *gorm.DB {
		return db.Order("date")
	}).Preload("Rewards", func(db *gorm.DB) *gorm.DB {
		return db.Order("amount")
	}).First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("获取项目详情失败: %w", err)
	}

	return &project, nil
}

// UpdateProject 更新项目字段（白名单由 handler 构造），返回更新后的项目
func (p *ProjectLogic) UpdateProject(id int64, updates map[string]interface{}) (*model.Project, error) {
	if len(updates) == 0 {
		return nil, inputErr("没有要更新的字段")
	}

	var project model.Project
	if err := p.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if err := p.db.Model(&project).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("更新项目失败: %w", err)
	}

	return p.GetProject(id)
}

// DeleteProject 删除项目（软删除）
func (p *ProjectLogic) DeleteProject(id int64) error {
	var project model.Project
	if err := p.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	if err := p.db.Delete(&project).Error; err != nil {
		return fmt.Errorf("删除项目失败: %w", err)
	}

	return nil
}

// validateProject 验证项目数据
func (p *ProjectLogic) validateProject(project *model.Project) error {
	if project.Title == "" {
		return inputErr("项目标题不能为空")
	}
	if project.GoalAmount <= 0 {
		return inputErr("目标金额必须大于0")
	}
	if project.DaysLeft < 0 {
		return inputErr("剩余天数不能为负数")
	}
	if project.CreatorAddress == "" {
		return inputErr("创建者地址不能为空")
	}
	return nil
}
