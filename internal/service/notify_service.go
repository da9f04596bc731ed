package service

import (
	"CareerBridge/internal/api/dto"
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/mail"
	"CareerBridge/internal/pkg/mongo"
	"CareerBridge/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"
)

// NotifyService 处理投递事件：写入站内通知并尝试发送邮件
type NotifyService interface {
	NotifyApplication(ctx context.Context, event *dto.ApplicationEvent) error
}

type NotifyServiceImpl struct {
	sysBoxRepo mongo.SysBoxRepo
	userRepo   repository.UserRepo
	mailRelay  *mail.Relay
}

func NewNotifyService(sysBoxRepo mongo.SysBoxRepo, userRepo repository.UserRepo, mailRelay *mail.Relay) NotifyService {
	return &NotifyServiceImpl{
		sysBoxRepo: sysBoxRepo,
		userRepo:   userRepo,
		mailRelay:  mailRelay,
	}
}

// NotifyApplication 站内通知失败返回错误以便重试，邮件失败只记录
func (s *NotifyServiceImpl) NotifyApplication(ctx context.Context, event *dto.ApplicationEvent) error {
	content := fmt.Sprintf("Your application for %s at %s has been submitted", event.JobTitle, event.Company)

	appliedAt := event.AppliedAt
	if appliedAt.IsZero() {
		appliedAt = time.Now()
	}

	err := s.sysBoxRepo.CreateNotification(ctx, &mongo.SysBoxModel{
		ReceiverID: event.UserID,
		Type:       consts.SysBoxTypeApplication,
		TargetID:   event.JobID,
		Content:    content,
		Payload: map[string]any{
			"application_id": event.ApplicationID,
			"job_title":      event.JobTitle,
			"company":        event.Company,
		},
		CreatedAt: appliedAt,
	})
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "Application notification", "user_id", event.UserID, "job_title", event.JobTitle, "company", event.Company)

	if !s.mailRelay.Enabled() {
		return nil
	}

	user, err := s.userRepo.GetUserById(ctx, event.UserID)
	if err != nil || user == nil || user.Email == "" {
		log.WarnContext(ctx, "skip application mail, user email unavailable", "user_id", event.UserID, "err", err)
		return nil
	}
	if err = s.mailRelay.Send(ctx, user.Email, "Application submitted", content); err != nil {
		log.WarnContext(ctx, "send application mail failed", "user_id", event.UserID, "err", err)
	}
	return nil
}

// DirectPublisher 未配置 Kafka 时在进程内直接处理投递事件
type DirectPublisher struct {
	notifier NotifyService
}

func NewDirectPublisher(notifier NotifyService) *DirectPublisher {
	return &DirectPublisher{notifier: notifier}
}

func (p *DirectPublisher) PublishApplication(ctx context.Context, event *dto.ApplicationEvent) error {
	return p.notifier.NotifyApplication(ctx, event)
}
