package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/IBM/sarama"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

const chartComputedEvent = "chart.computed"

// Producer реализация Kafka producer
type Producer struct {
	producer sarama.SyncProducer
	cfg      *Config
	log      *slog.Logger
}

// NewProducer создаёт новый Kafka producer
func NewProducer(cfg *Config, log *slog.Logger) (*Producer, error) {
	config := cfg.SaramaConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(cfg.GetBrokers(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer created",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
	)

	return NewProducerWithClient(producer, cfg, log), nil
}

// NewProducerWithClient оборачивает готовый sarama.SyncProducer
func NewProducerWithClient(producer sarama.SyncProducer, cfg *Config, log *slog.Logger) *Producer {
	return &Producer{
		producer: producer,
		cfg:      cfg,
		log:      log,
	}
}

// SendChartEvent публикует посчитанную карту. Ключ сообщения request_id,
// тип события и request_id продублированы в headers
func (p *Producer) SendChartEvent(ctx context.Context, event domain.ChartEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal chart event: %w", err)
	}

	headers := []sarama.RecordHeader{
		{
			Key:   []byte("event_type"),
			Value: []byte(chartComputedEvent),
		},
		{
			Key:   []byte("request_id"),
			Value: []byte(event.RequestID),
		},
	}
	if event.ProfileID != "" {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte("profile_id"),
			Value: []byte(event.ProfileID),
		})
	}

	return p.send(ctx, &sarama.ProducerMessage{
		Topic:   p.cfg.Topic,
		Key:     sarama.StringEncoder(event.RequestID),
		Value:   sarama.ByteEncoder(value),
		Headers: headers,
	})
}

// Send отправляет произвольное сообщение
func (p *Producer) Send(ctx context.Context, key string, value []byte) error {
	return p.send(ctx, &sarama.ProducerMessage{
		Topic: p.cfg.Topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
}

func (p *Producer) send(ctx context.Context, msg *sarama.ProducerMessage) error {
	key, _ := msg.Key.Encode()

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		// Debug для технических деталей
		p.log.DebugContext(ctx, "kafka send failed",
			"error", err,
			"topic", msg.Topic,
			"key", string(key),
		)
		return fmt.Errorf("kafka send failed [topic=%s, key=%s]: %w",
			msg.Topic, key, err)
	}

	p.log.DebugContext(ctx, "message sent to kafka",
		"topic", msg.Topic,
		"partition", partition,
		"offset", offset,
		"key", string(key),
	)
	return nil
}

// Close закрывает producer
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	p.log.Info("kafka producer closed")
	return nil
}
