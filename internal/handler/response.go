package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openfund/ofs/internal/logic"
)

// ErrorResponse 错误响应
// 客户端从 message 字段提取展示文案
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// handleLogicError 将业务错误映射为HTTP状态码
func handleLogicError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, logic.ErrProjectNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, logic.ErrInvalidInput):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
