package kafka

import (
	"CareerBridge/internal/api/config"
	"CareerBridge/internal/api/dto"
	"context"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ApplicationProducer 投递事件生产者
type ApplicationProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewApplicationProducer(cfg *config.Config) (*ApplicationProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return newApplicationProducer(producer, cfg.KafkaApplication.Topic), nil
}

func newApplicationProducer(producer sarama.SyncProducer, topic string) *ApplicationProducer {
	return &ApplicationProducer{producer: producer, topic: topic}
}

// PublishApplication 以用户ID为 key 发送，保证同一用户的事件有序
func (p *ApplicationProducer) PublishApplication(_ context.Context, event *dto.ApplicationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(event.UserID, 10)),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("failed to publish application event: %w", err)
	}
	return nil
}

func (p *ApplicationProducer) Close() error {
	return p.producer.Close()
}
