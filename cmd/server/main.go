package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openfund/ofs/internal/config"
	"github.com/openfund/ofs/internal/database"
	"github.com/openfund/ofs/internal/ethereum"
	"github.com/openfund/ofs/internal/logger"
	"github.com/openfund/ofs/internal/router"
	"github.com/openfund/ofs/internal/scheduler"
	"github.com/openfund/ofs/internal/task"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if err := logger.Init(cfg.Log); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化链上客户端（可选）
	ethClient, err := ethereum.Init(cfg.Chain)
	if err != nil {
		logger.Fatal("Failed to initialize chain client: %v", err)
	}
	if ethClient != nil {
		defer ethClient.Close()
	}

	// 初始化出资验证协程池
	verifyPool, err := task.NewVerifyPool(db, ethClient, cfg.Chain.VerifyWorkers)
	if err != nil {
		logger.Fatal("Failed to create verify pool: %v", err)
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, cfg, verifyPool)

	// 启动定时任务
	sched := scheduler.Start(db, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		sched.Stop()
		verifyPool.Release()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("Server exited with error: %v", err)
	}
	logger.Info("Server stopped")
}
