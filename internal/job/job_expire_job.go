package job

import (
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/logger"
	"CareerBridge/internal/pkg/redis"
	"CareerBridge/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const jobExpireTimeout = 2 * time.Minute

// JobExpireJob 关闭已过截止日期的岗位
type JobExpireJob struct {
	jobService service.JobService
}

func NewJobExpireJob(jobService service.JobService) *JobExpireJob {
	return &JobExpireJob{
		jobService: jobService,
	}
}

func (s *JobExpireJob) Run() {
	traceID := "job-expire-" + uuid.NewString()
	ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), traceID), jobExpireTimeout)
	defer cancel()

	// 多实例部署时只允许一个实例执行
	ok, err := redis.TryLock(ctx, consts.JobExpireLock, traceID, jobExpireTimeout, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire job expire lock error", "err", err)
		return
	}
	if !ok {
		return
	}
	defer redis.UnLock(ctx, consts.JobExpireLock, traceID)

	closed, err := s.jobService.CloseExpiredJobs(ctx, time.Now())
	if err != nil {
		log.ErrorContext(ctx, "close expired jobs error", "err", err)
		return
	}
	if closed > 0 {
		log.InfoContext(ctx, "JobExpireJob finished", "closed_count", closed)
	}
}
