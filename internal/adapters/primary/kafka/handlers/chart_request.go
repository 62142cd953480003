package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/admin/astro-services/jyotish/internal/domain"
	kafkaPorts "github.com/admin/astro-services/jyotish/internal/ports/kafka"
)

// ChartRequestProcessor считает карту по запросу и публикует результат
type ChartRequestProcessor interface {
	ProcessChartRequest(ctx context.Context, req domain.ChartRequest) error
}

// ChartRequestHandler обрабатывает запросы карт от чат-бота
type ChartRequestHandler struct {
	Processor ChartRequestProcessor
	Log       *slog.Logger
}

func NewChartRequestHandler(processor ChartRequestProcessor, log *slog.Logger) kafkaPorts.MessageHandler {
	return &ChartRequestHandler{
		Processor: processor,
		Log:       log,
	}
}

// HandleMessage битое сообщение отклоняется бизнес-ошибкой, чтобы consumer его не ретраил
func (h *ChartRequestHandler) HandleMessage(ctx context.Context, key string, value []byte) error {
	var req domain.ChartRequest
	if err := json.Unmarshal(value, &req); err != nil {
		h.Log.WarnContext(ctx, "malformed chart request", "error", err, "key", key)
		return domain.WrapBusinessError(fmt.Errorf("failed to unmarshal chart request: %w", err))
	}
	if req.RequestID == "" {
		req.RequestID = key
	}

	h.Log.DebugContext(ctx, "processing chart request",
		"request_id", req.RequestID,
		"profile_id", req.ProfileID,
	)

	if err := h.Processor.ProcessChartRequest(ctx, req); err != nil {
		if domain.IsBusinessError(err) {
			return err
		}
		return fmt.Errorf("failed to process chart request: %w", err)
	}
	return nil
}
