package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/pkg/logger"
)

func headerMap(headers []sarama.RecordHeader) map[string]string {
	out := make(map[string]string, len(headers))
	for _, h := range headers {
		out[string(h.Key)] = string(h.Value)
	}
	return out
}

func TestProducer_SendChartEvent(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	cfg := &Config{Topic: "chart-events"}
	p := NewProducerWithClient(sp, cfg, logger.Nop())

	event := domain.ChartEvent{
		RequestID:  "req-1",
		ProfileID:  "0b6c9a5e-6b1f-4f4e-9d47-1c1f0f1d2a3b",
		Context:    domain.ChatContext{AscendantSign: "Leo", Yogas: []string{}, Doshas: []string{}},
		ComputedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "chart-events" {
			return fmt.Errorf("unexpected topic %q", msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "req-1" {
			return fmt.Errorf("unexpected key %q", key)
		}
		headers := headerMap(msg.Headers)
		if headers["event_type"] != "chart.computed" || headers["request_id"] != "req-1" || headers["profile_id"] != event.ProfileID {
			return fmt.Errorf("unexpected headers %v", headers)
		}

		value, _ := msg.Value.Encode()
		var decoded domain.ChartEvent
		if err := json.Unmarshal(value, &decoded); err != nil {
			return err
		}
		if decoded.Context.AscendantSign != "Leo" {
			return fmt.Errorf("unexpected payload %s", value)
		}
		return nil
	})

	require.NoError(t, p.SendChartEvent(context.Background(), event))
	require.NoError(t, p.Close())
}

func TestProducer_SendChartEventWithoutProfile(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	p := NewProducerWithClient(sp, &Config{Topic: "chart-events"}, logger.Nop())

	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if _, ok := headerMap(msg.Headers)["profile_id"]; ok {
			return errors.New("profile_id header must be absent")
		}
		return nil
	})

	require.NoError(t, p.SendChartEvent(context.Background(), domain.ChartEvent{RequestID: "req-2"}))
	require.NoError(t, p.Close())
}

func TestProducer_SendFailure(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	p := NewProducerWithClient(sp, &Config{Topic: "raw"}, logger.Nop())

	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := p.Send(context.Background(), "k", []byte("v"))
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.Contains(t, err.Error(), "topic=raw")
	require.NoError(t, p.Close())
}

func TestConfig(t *testing.T) {
	cfg := &Config{Brokers: "a:9092, b:9092"}
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.GetBrokers())
	assert.Equal(t, []string{"localhost:9092"}, (&Config{}).GetBrokers())

	plain := (&Config{SecurityProtocol: "PLAINTEXT"}).SaramaConfig()
	assert.False(t, plain.Net.SASL.Enable)

	scram := (&Config{SecurityProtocol: "SASL_SSL", SASLMechanism: "SCRAM-SHA-512", SASLUsername: "u"}).SaramaConfig()
	assert.True(t, scram.Net.SASL.Enable)
	assert.True(t, scram.Net.TLS.Enable)
	assert.Equal(t, sarama.SASLMechanism(sarama.SASLTypeSCRAMSHA512), scram.Net.SASL.Mechanism)

	configs := KafkaConfigs{List: []KafkaConfig{
		{Name: ChartRequestsName, Config: &Config{Topic: "in"}},
		{Name: ChartEventsName, Config: &Config{Topic: "out"}},
	}}
	assert.Equal(t, "out", configs.ByName(ChartEventsName).Topic)
	assert.Nil(t, configs.ByName("missing"))
}

func TestKafkaConfigs_Load(t *testing.T) {
	t.Setenv("JYOTISH_KAFKA_0_NAME", ChartRequestsName)
	t.Setenv("JYOTISH_KAFKA_0_CONFIG_TOPIC", "chart-requests")
	t.Setenv("JYOTISH_KAFKA_0_CONFIG_CONSUMER_GROUP", "jyotish")

	configs := KafkaConfigs{Count: 1}
	require.NoError(t, configs.Load("JYOTISH"))
	cfg := configs.ByName(ChartRequestsName)
	require.NotNil(t, cfg)
	assert.Equal(t, "chart-requests", cfg.Topic)
	assert.Equal(t, "jyotish", cfg.ConsumerGroup)
}
