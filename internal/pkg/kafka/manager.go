package kafka

import (
	"CareerBridge/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	applicationConsumer sarama.ConsumerGroup
	applicationHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config, notifier ApplicationNotifier) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	applicationConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaApplication.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		applicationConsumer: applicationConsumer,
		applicationHandler:  NewApplicationHandler(notifier),
	}, nil
}

// Start 启动所有消费者，ctx 结束后关闭
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaApplication.Topic
		log.Info("Application consumer started", "topic", topic)
		for {
			if err := m.applicationConsumer.Consume(ctx, []string{topic}, m.applicationHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		for err := range m.applicationConsumer.Errors() {
			log.Error("Application consumer error", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.applicationConsumer.Close(); err != nil {
		log.Error("Failed to close application consumer", "err", err)
	}

	return nil
}
