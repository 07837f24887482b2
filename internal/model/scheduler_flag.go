package model

import "time"

// SchedulerFlagID 单例行主键，表内只存在这一行
const SchedulerFlagID uint64 = 1

// SchedulerFlag 记录每日生成的最近一次运行状态。
// 互斥由 Redis 租约保证，该行仅作为持久记录与观测面。
type SchedulerFlag struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	LastRun   time.Time `json:"last_run"`
	IsRunning bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_running"`
	TaskID    string    `gorm:"type:varchar(64)" json:"task_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SchedulerFlag) TableName() string {
	return "scheduler_flags"
}
