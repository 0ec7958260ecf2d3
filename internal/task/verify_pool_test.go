package task

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/openfund/ofs/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewVerifyPoolDefaultSize(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.FundingRecord{}))

	pool, err := NewVerifyPool(db, nil, 0)
	require.NoError(t, err)
	defer pool.Release()

	// 链上客户端为 nil 时提交是空操作，不会 panic
	pool.Submit(1, "0x"+strings.Repeat("ab", 32))
	pool.Submit(2, "not-a-hash")
}

func TestVerifyPoolNilSafe(t *testing.T) {
	var pool *VerifyPool
	assert.NotPanics(t, func() {
		pool.Submit(1, "0x"+strings.Repeat("ab", 32))
		pool.Release()
	})
}
