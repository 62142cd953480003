package kafka

import (
	"context"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// IKafkaProducer интерфейс для отправки сообщений в Kafka
type IKafkaProducer interface {
	// SendChartEvent публикует посчитанную карту для внешних потребителей
	SendChartEvent(ctx context.Context, event domain.ChartEvent) error
	// Send отправляет произвольное сообщение
	Send(ctx context.Context, key string, value []byte) error
	// Close закрывает producer
	Close() error
}
