package task

import (
	"context"
	"fmt"
	"time"

	"github.com/openfund/ofs/internal/ethereum"
	"github.com/openfund/ofs/internal/logger"
	"github.com/openfund/ofs/internal/model"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// VerifyPool 出资交易验证协程池
// 出资创建后带 txHash 的记录提交到这里，异步查询链上回执
// 确认失败只记日志不重试
type VerifyPool struct {
	pool      *ants.Pool
	db        *gorm.DB
	ethClient *ethereum.Client
}

// NewVerifyPool 创建验证协程池；ethClient 为 nil 时提交会被忽略
func NewVerifyPool(db *gorm.DB, ethClient *ethereum.Client, size int) (*VerifyPool, error) {
	if size <= 0 {
		size = 4
	}

	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create verify pool: %w", err)
	}

	return &VerifyPool{
		pool:      pool,
		db:        db,
		ethClient: ethClient,
	}, nil
}

// Submit 提交一条出资记录做链上确认
func (p *VerifyPool) Submit(recordID int64, txHash string) {
	if p == nil || p.ethClient == nil {
		logger.Debug("Chain verification disabled, skipping funding record %d", recordID)
		return
	}

	if !ethereum.IsValidTxHash(txHash) {
		logger.Warn("Funding record %d has malformed tx hash %q, skipping verification", recordID, txHash)
		return
	}

	err := p.pool.Submit(func() {
		p.verify(recordID, txHash)
	})
	if err != nil {
		logger.Error("Failed to submit verify task for funding record %d: %v", recordID, err)
	}
}

func (p *VerifyPool) verify(recordID int64, txHash string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	confirmed, err := p.ethClient.IsTransactionConfirmed(ctx, txHash)
	if err != nil {
		logger.Error("Failed to check tx %s for funding record %d: %v", txHash, recordID, err)
		return
	}

	if !confirmed {
		logger.Info("Tx %s for funding record %d not yet confirmed", txHash, recordID)
		return
	}

	result := p.db.Model(&model.FundingRecord{}).
		Where("id = ?", recordID).
		Update("verified", true)
	if result.Error != nil {
		logger.Error("Failed to mark funding record %d verified: %v", recordID, result.Error)
		return
	}

	logger.Info("Funding record %d verified via tx %s", recordID, txHash)
}

// Release 释放协程池
func (p *VerifyPool) Release() {
	if p != nil && p.pool != nil {
		p.pool.Release()
	}
}
