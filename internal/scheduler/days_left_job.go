package scheduler

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/openfund/ofs/internal/config"
	"github.com/openfund/ofs/internal/logger"
	"github.com/openfund/ofs/internal/model"
	"gorm.io/gorm"
)

// DaysLeftJob 剩余天数递减任务
// 只递减 days_left，项目状态由后台独立设置，这里不推导
type DaysLeftJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewDaysLeftJob 创建剩余天数递减任务
func NewDaysLeftJob(db *gorm.DB, cfg *config.Config) *DaysLeftJob {
	return &DaysLeftJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *DaysLeftJob) GetName() string {
	return "days_left_ticker"
}

// GetSchedule 获取调度配置
func (j *DaysLeftJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.TickInterval) * time.Second)
}

// Execute 执行任务
func (j *DaysLeftJob) Execute() {
	result := j.db.Model(&model.Project{}).
		Where("days_left > 0").
		UpdateColumn("days_left", gorm.Expr("days_left - 1"))
	if result.Error != nil {
		logger.Error("Failed to tick days_left: %v", result.Error)
		return
	}

	logger.Info("Days-left ticker completed, updated %d projects", result.RowsAffected)
}
