package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/IBM/sarama"

	kafkaAdapter "github.com/admin/astro-services/jyotish/internal/adapters/secondary/kafka"
	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/pkg/logger"
	kafkaPorts "github.com/admin/astro-services/jyotish/internal/ports/kafka"
)

// redeliveryBackoff пауза перед повторной доставкой сообщения с временной ошибкой
const redeliveryBackoff = 2 * time.Second

// Consumer реализация Kafka consumer
type Consumer struct {
	consumer sarama.ConsumerGroup
	cfg      *kafkaAdapter.Config
	handler  kafkaPorts.MessageHandler
	log      *slog.Logger
}

// NewConsumer создаёт новый Kafka consumer
func NewConsumer(cfg *kafkaAdapter.Config, handler kafkaPorts.MessageHandler, log *slog.Logger) (*Consumer, error) {
	config := cfg.SaramaConfig()
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumer, err := sarama.NewConsumerGroup(cfg.GetBrokers(), cfg.ConsumerGroup, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}

	log.Info("kafka consumer created",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
		"consumer_group", cfg.ConsumerGroup,
	)

	return &Consumer{
		consumer: consumer,
		cfg:      cfg,
		handler:  handler,
		log:      log,
	}, nil
}

// Start читает топик до отмены ctx, после отмены закрывает группу
func (c *Consumer) Start(ctx context.Context) error {
	handler := &consumerGroupHandler{
		handler: c.handler,
		log:     c.log,
		topic:   c.cfg.Topic,
		backoff: redeliveryBackoff,
	}

	for {
		select {
		case <-ctx.Done():
			c.log.Info("kafka consumer stopping", "topic", c.cfg.Topic)
			return c.Close()
		default:
			topics := []string{c.cfg.Topic}
			if err := c.consumer.Consume(ctx, topics, handler); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return nil
				}
				c.log.Error("error from consumer",
					"error", err,
					"topic", c.cfg.Topic,
				)
				return fmt.Errorf("consumer error: %w", err)
			}
		}
	}
}

// Close закрывает consumer
func (c *Consumer) Close() error {
	if err := c.consumer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka consumer: %w", err)
	}
	c.log.Info("kafka consumer closed", "topic", c.cfg.Topic)
	return nil
}

// consumerGroupHandler реализует sarama.ConsumerGroupHandler
type consumerGroupHandler struct {
	handler kafkaPorts.MessageHandler
	log     *slog.Logger
	topic   string
	backoff time.Duration
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	h.log.Info("kafka consumer group session setup", "topic", h.topic)
	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	h.log.Info("kafka consumer group session cleanup", "topic", h.topic)
	return nil
}

// ConsumeClaim обрабатывает сообщения из Kafka.
// После временной ошибки claim завершается без коммита: сессия пересоздаётся
// и читает партицию заново с последнего закоммиченного offset
func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case <-session.Context().Done():
			return nil
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if !h.process(session.Context(), message) {
				h.log.Warn("stopping claim to redeliver message",
					"topic", message.Topic,
					"partition", message.Partition,
					"offset", message.Offset,
					"backoff", h.backoff,
				)
				h.wait(session.Context())
				return nil
			}
			session.MarkMessage(message, "")
		}
	}
}

func (h *consumerGroupHandler) wait(ctx context.Context) {
	if h.backoff <= 0 {
		return
	}
	timer := time.NewTimer(h.backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// process возвращает true, если сообщение можно закоммитить.
// Бизнес-ошибки повторная доставка не исправит, такие сообщения тоже коммитятся
func (h *consumerGroupHandler) process(ctx context.Context, message *sarama.ConsumerMessage) bool {
	key := string(message.Key)
	ctx = logger.WithAttrs(ctx,
		"topic", message.Topic,
		"partition", message.Partition,
		"offset", message.Offset,
	)
	if requestID := header(message, "request_id"); requestID != "" {
		ctx = logger.WithAttrs(ctx, "request_id", requestID)
	}

	err := h.handler.HandleMessage(ctx, key, message.Value)
	if err == nil {
		return true
	}
	if domain.IsBusinessError(err) {
		h.log.WarnContext(ctx, "kafka message rejected", "error", err, "key", key)
		return true
	}

	h.log.ErrorContext(ctx, "failed to handle kafka message", "error", err, "key", key)
	return false
}

func header(message *sarama.ConsumerMessage, name string) string {
	for _, h := range message.Headers {
		if h != nil && string(h.Key) == name {
			return string(h.Value)
		}
	}
	return ""
}
