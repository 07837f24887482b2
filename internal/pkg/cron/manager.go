package cron

import (
	"Verdure/internal/api/config"
	"Verdure/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	dailyPostJob *job.DailyPostJob
}

func NewCronManager(dailyPostJob *job.DailyPostJob) *Manager {
	return &Manager{
		engine:       cron.New(),
		dailyPostJob: dailyPostJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	spec := config.Cfg.Generator.CronSpec
	if spec == "" {
		spec = "@daily"
	}
	if _, err := s.engine.AddJob(spec, s.dailyPostJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

// Stop 停止调度并等待在途任务结束
func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
