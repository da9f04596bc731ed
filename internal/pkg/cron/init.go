package cron

import log "log/slog"

// InitCron 注册并启动定时任务，启动时补跑一次岗位过期检查，覆盖停机期间错过的整点
func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	go mgr.jobExpireJob.Run()
	return nil
}
