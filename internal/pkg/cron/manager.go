package cron

import (
	"CareerBridge/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	jobExpireJob *job.JobExpireJob
}

func NewCronManager(jobExpireJob *job.JobExpireJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		jobExpireJob: jobExpireJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@hourly", s.jobExpireJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

// Stop 停止调度并等待正在执行的任务结束
func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
