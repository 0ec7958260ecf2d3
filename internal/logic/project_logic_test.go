package logic

import (
	"testing"

	"github.com/openfund/ofs/internal/catalog"
	"github.com/openfund/ofs/internal/model"
	"github.com/openfund/ofs/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject(t *testing.T) {
	db := testDB(t)
	p := NewProjectLogic(db)

	project, err := p.CreateProject(&api.CreateProjectBody{
		Title:      "开源硬件",
		GoalAmount: 40000,
		Category:   "Tech",
		Creator:    &api.CreatorInput{WalletAddress: "0xabc"},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, model.ProjectStatusLive, project.Status)
	assert.Equal(t, float64(0), project.RaisedAmount)
	assert.Equal(t, int64(0), project.Supporters)
	assert.Equal(t, "0xabc", project.CreatorAddress)
	assert.NotZero(t, project.ID)
}

func TestCreateProjectWalletFallback(t *testing.T) {
	db := testDB(t)
	p := NewProjectLogic(db)

	// 请求体没有创建者时回落到请求头中的钱包地址
	project, err := p.CreateProject(&api.CreateProjectBody{
		Title:      "社区图书馆",
		GoalAmount: 20000,
	}, "0xheader")
	require.NoError(t, err)
	assert.Equal(t, "0xheader", project.CreatorAddress)
}

func TestCreateProjectValidation(t *testing.T) {
	db := testDB(t)
	p := NewProjectLogic(db)

	tests := []struct {
		name string
		body api.CreateProjectBody
	}{
		{"空标题", api.CreateProjectBody{GoalAmount: 100, Creator: &api.CreatorInput{WalletAddress: "0xabc"}}},
		{"目标金额为0", api.CreateProjectBody{Title: "t", Creator: &api.CreatorInput{WalletAddress: "0xabc"}}},
		{"缺少创建者", api.CreateProjectBody{Title: "t", GoalAmount: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.CreateProject(&tt.body, "")
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetProjectNotFound(t *testing.T) {
	db := testDB(t)
	p := NewProjectLogic(db)

	_, err := p.GetProject(999)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestGetProjectWithAssociations(t *testing.T) {
	db := testDB(t)
	p := NewProjectLogic(db)

	seeded := seedProject(t, db)
	require.NoError(t, db.Create(&model.ProjectUpdate{
		ProjectID: seeded.ID, Date: "2026-01-15", Title: "Beta Testing", Content: "beta begins",
	}).Error)
	require.NoError(t, db.Create(&model.Reward{
		ProjectID: seeded.ID, Amount: 100, Title: "Early Adopter", Available: 50,
	}).Error)

	project, err := p.GetProject(seeded.ID)
	require.NoError(t, err)
	assert.Len(t, project.Updates, 1)
	assert.Len(t, project.Rewards, 1)

	dto := ProjectToAPI(project)
	assert.Equal(t, "Beta Testing", dto.Updates[0].Title)
	assert.Equal(t, float64(100), dto.Rewards[0].Amount)
}

func TestListProjectsFilterAndSort(t *testing.T) {
	db := testDB(t)
	p := NewProjectLogic(db)

	seedProject(t, db, func(m *model.Project) { m.RaisedAmount = 38500 })
	seedProject(t, db, func(m *model.Project) {
		m.Title = "数字艺术展"
		m.Category = "Art"
		m.Status = model.ProjectStatusSuccessful
		m.RaisedAmount = 82000
		m.DaysLeft = 0
	})
	seedProject(t, db, func(m *model.Project) {
		m.Title = "独立游戏"
		m.Category = "Game"
		m.RaisedAmount = 12000
		m.DaysLeft = 3
	})

	// 全量 trending 排序
	items, meta, err := p.ListProjects(catalog.Params{}, 1, 12)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, float64(82000), items[0].RaisedAmount)
	assert.Equal(t, int64(3), meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNext)

	// 类目过滤
	items, _, err = p.ListProjects(catalog.Params{Category: "Art"}, 1, 12)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "数字艺术展", items[0].Title)

	// 状态过滤 + ending-soon 排序
	items, _, err = p.ListProjects(catalog.Params{
		Status: api.StatusFilterLive,
		Sort:   api.SortEndingSoon,
	}, 1, 12)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].DaysLeft)
	assert.Equal(t, 12, items[1].DaysLeft)
}

func TestListProjectsPagination(t *testing.T) {
	db := testDB(t)
	p := NewProjectLogic(db)

	for i := 0; i < 5; i++ {
		seedProject(t, db, func(m *model.Project) { m.RaisedAmount = float64(i * 1000) })
	}

	items, meta, err := p.ListProjects(catalog.Params{}, 2, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	// 超出范围的页码返回空列表
	items, meta, err = p.ListProjects(catalog.Params{}, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, meta.HasNext)
}

func TestUpdateProject(t *testing.T) {
	db := testDB(t)
	p := NewProjectLogic(db)

	seeded := seedProject(t, db)

	// 状态是独立设置的存储值，更新后原样返回
	project, err := p.UpdateProject(seeded.ID, map[string]interface{}{
		"title":  "更新后的标题",
		"status": "ended",
	})
	require.NoError(t, err)
	assert.Equal(t, "更新后的标题", project.Title)
	assert.Equal(t, model.ProjectStatusEnded, project.Status)

	_, err = p.UpdateProject(seeded.ID, map[string]interface{}{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = p.UpdateProject(999, map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDeleteProject(t *testing.T) {
	db := testDB(t)
	p := NewProjectLogic(db)

	seeded := seedProject(t, db)
	require.NoError(t, p.DeleteProject(seeded.ID))

	_, err := p.GetProject(seeded.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	assert.ErrorIs(t, p.DeleteProject(seeded.ID), ErrProjectNotFound)
}
