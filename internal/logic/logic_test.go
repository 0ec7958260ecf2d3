package logic

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/openfund/ofs/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB 基于内存 sqlite 的测试数据库
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Project{},
		&model.ProjectUpdate{},
		&model.Reward{},
		&model.FundingRecord{},
	))

	return db
}

// seedProject 插入一个进行中的测试项目
func seedProject(t *testing.T, db *gorm.DB, mutate ...func(*model.Project)) *model.Project {
	t.Helper()

	project := &model.Project{
		Title:          "去中心化社交平台",
		Description:    "A privacy-first social network",
		Category:       "Tech",
		GoalAmount:     50000,
		DaysLeft:       12,
		Status:         model.ProjectStatusLive,
		CreatorAddress: "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb",
	}
	for _, fn := range mutate {
		fn(project)
	}
	require.NoError(t, db.Create(project).Error)
	return project
}
