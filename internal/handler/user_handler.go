package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openfund/ofs/internal/logic"
	"github.com/openfund/ofs/pkg/api"
	"gorm.io/gorm"
)

type UserHandler struct {
	userLogic *logic.UserLogic
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		userLogic: logic.NewUserLogic(db),
	}
}

// GetUserStats 获取用户统计
func (h *UserHandler) GetUserStats(c *gin.Context) {
	stats, err := h.userLogic.GetUserStats(c.Param("address"))
	if err != nil {
		handleLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetUserProjects 获取用户创建或出资过的项目
func (h *UserHandler) GetUserProjects(c *gin.Context) {
	listType := c.DefaultQuery("type", logic.UserProjectsCreated)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	items, meta, err := h.userLogic.GetUserProjects(c.Param("address"), listType, page, limit)
	if err != nil {
		handleLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.Paginated[api.Project]{
		Items: items,
		Meta:  meta,
	})
}

// GetUserTransactions 获取用户交易历史
func (h *UserHandler) GetUserTransactions(c *gin.Context) {
	transactions, err := h.userLogic.GetUserTransactions(c.Param("address"))
	if err != nil {
		handleLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}
