package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openfund/ofs/internal/catalog"
	"github.com/openfund/ofs/internal/logic"
	"github.com/openfund/ofs/pkg/api"
	"gorm.io/gorm"
)

// WalletAddressKey 钱包中间件写入上下文的键
const WalletAddressKey = "walletAddress"

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projectLogic: logic.NewProjectLogic(db),
	}
}

// ListProjects 获取项目列表
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	category := c.DefaultQuery("category", api.CategoryAll)
	status := c.DefaultQuery("status", string(api.StatusFilterAll))
	sortBy := c.DefaultQuery("sort", string(api.SortTrending))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	if !api.ValidStatusFilter(status) {
		ErrorResponse(c, http.StatusBadRequest, "无效的状态筛选值")
		return
	}
	if !api.ValidSortOption(sortBy) {
		ErrorResponse(c, http.StatusBadRequest, "无效的排序方式")
		return
	}

	params := catalog.Params{
		Category: category,
		Status:   api.StatusFilter(status),
		Sort:     api.SortOption(sortBy),
	}

	items, meta, err := h.projectLogic.ListProjects(params, page, limit)
	if err != nil {
		handleLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.Paginated[api.Project]{
		Items: items,
		Meta:  meta,
	})
}

// GetProject 获取单个项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	project, err := h.projectLogic.GetProject(id)
	if err != nil {
		handleLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, logic.ProjectToAPI(project))
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var body api.CreateProjectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.projectLogic.CreateProject(&body, c.GetString(WalletAddressKey))
	if err != nil {
		handleLogicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, logic.ProjectToAPI(project))
}

// UpdateProject 更新项目
// 只允许更新白名单字段；status 为独立设置的存储值
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var body api.UpdateProjectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updates := make(map[string]interface{})
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.GoalAmount != nil {
		if *body.GoalAmount <= 0 {
			ErrorResponse(c, http.StatusBadRequest, "目标金额必须大于0")
			return
		}
		updates["goal_amount"] = *body.GoalAmount
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Category != nil {
		updates["category"] = *body.Category
	}
	if body.ThumbnailURL != nil {
		updates["thumbnail_url"] = *body.ThumbnailURL
	}
	if body.CoverURL != nil {
		updates["cover_url"] = *body.CoverURL
	}
	if body.Story != nil {
		updates["story"] = *body.Story
	}
	if body.DaysLeft != nil {
		updates["days_left"] = *body.DaysLeft
	}
	if body.Status != nil {
		if !api.ValidStatus(*body.Status) {
			ErrorResponse(c, http.StatusBadRequest, "无效的项目状态")
			return
		}
		updates["status"] = *body.Status
	}

	project, err := h.projectLogic.UpdateProject(id, updates)
	if err != nil {
		handleLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, logic.ProjectToAPI(project))
}

// DeleteProject 删除项目
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	if err := h.projectLogic.DeleteProject(id); err != nil {
		handleLogicError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
