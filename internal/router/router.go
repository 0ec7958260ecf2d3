package router

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openfund/ofs/internal/config"
	"github.com/openfund/ofs/internal/handler"
	"github.com/openfund/ofs/internal/pricing"
	"github.com/openfund/ofs/internal/task"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config, verifyPool *task.VerifyPool) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())
	r.Use(walletMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "openfund-service",
		})
	})

	fees := pricing.Fees{
		NetworkFee:      cfg.Pricing.NetworkFee,
		PlatformFeeRate: cfg.Pricing.PlatformFeeRate,
	}

	api := r.Group("/api")
	{
		// 项目相关路由
		projectHandler := handler.NewProjectHandler(db)
		fundingHandler := handler.NewFundingHandler(db, fees, verifyPool)
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/funding", fundingHandler.GetProjectFunding)
			projects.POST("/:id/funding", fundingHandler.CreateFunding)
			projects.GET("/:id/funding/quote", fundingHandler.QuoteFunding)
		}

		// 用户相关路由
		userHandler := handler.NewUserHandler(db)
		users := api.Group("/users")
		{
			users.GET("/:address/stats", userHandler.GetUserStats)
			users.GET("/:address/projects", userHandler.GetUserProjects)
			users.GET("/:address/transactions", userHandler.GetUserTransactions)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept, Authorization, X-Wallet-Address, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// 请求ID中间件
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// 钱包中间件
// 开发态直接取 x-wallet-address；Authorization 只做透传识别，不做令牌校验
func walletMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.GetHeader("X-Wallet-Address")
		if address == "" {
			auth := c.GetHeader("Authorization")
			if strings.HasPrefix(auth, "Bearer 0x") {
				address = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if address != "" {
			c.Set(handler.WalletAddressKey, address)
		}
		c.Next()
	}
}
