package kafka

import (
	"CareerBridge/internal/api/dto"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ApplicationNotifier 消费到投递事件后的处理方
type ApplicationNotifier interface {
	NotifyApplication(ctx context.Context, event *dto.ApplicationEvent) error
}

type ApplicationHandler struct {
	notifier ApplicationNotifier
}

func NewApplicationHandler(notifier ApplicationNotifier) *ApplicationHandler {
	return &ApplicationHandler{notifier: notifier}
}

func (s *ApplicationHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("application consumer setup")
	return nil
}

func (s *ApplicationHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("application consumer cleanup")
	return nil
}

func (s *ApplicationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	return pullMessageBatch(session, claim, s.handle)
}

// handle 无法解析的消息直接丢弃，避免阻塞分区
func (s *ApplicationHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event dto.ApplicationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("unmarshal application event error", "offset", msg.Offset, "err", err)
		return nil
	}
	if event.UserID == 0 || event.JobID == 0 {
		log.Warn("drop application event without user or job", "offset", msg.Offset)
		return nil
	}
	return s.notifier.NotifyApplication(ctx, &event)
}
