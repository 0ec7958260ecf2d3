package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openfund/ofs/internal/logic"
	"github.com/openfund/ofs/internal/pricing"
	"github.com/openfund/ofs/internal/task"
	"github.com/openfund/ofs/pkg/api"
	"gorm.io/gorm"
)

type FundingHandler struct {
	fundingLogic *logic.FundingLogic
	fees         pricing.Fees
	verifyPool   *task.VerifyPool
}

func NewFundingHandler(db *gorm.DB, fees pricing.Fees, verifyPool *task.VerifyPool) *FundingHandler {
	return &FundingHandler{
		fundingLogic: logic.NewFundingLogic(db),
		fees:         fees,
		verifyPool:   verifyPool,
	}
}

// GetProjectFunding 获取项目出资汇总
func (h *FundingHandler) GetProjectFunding(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	summary, err := h.fundingLogic.GetProjectFunding(projectID, page, limit)
	if err != nil {
		handleLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CreateFunding 创建出资记录
// 带 txHash 的记录提交到验证协程池异步确认，不阻塞响应
func (h *FundingHandler) CreateFunding(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var body api.CreateFundingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if body.FromWallet == "" {
		body.FromWallet = c.GetString(WalletAddressKey)
	}

	record, err := h.fundingLogic.CreateFunding(projectID, &body)
	if err != nil {
		handleLogicError(c, err)
		return
	}

	if record.TxHash != nil && *record.TxHash != "" {
		h.verifyPool.Submit(record.ID, *record.TxHash)
	}

	c.JSON(http.StatusCreated, logic.FundingToAPI(record))
}

// QuoteFunding 计算出资金额明细
// amount 为用户原始输入串，空串或非法输入按0计算，不报错
func (h *FundingHandler) QuoteFunding(c *gin.Context) {
	if _, err := strconv.ParseInt(c.Param("id"), 10, 64); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	mode := c.DefaultQuery("mode", string(pricing.ModeFull))
	if !pricing.ValidMode(mode) {
		ErrorResponse(c, http.StatusBadRequest, "无效的计算模式")
		return
	}

	breakdown := pricing.Quote(c.Query("amount"), pricing.Mode(mode), h.fees)
	c.JSON(http.StatusOK, breakdown)
}
