package astro

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// ProcessChartRequest запрос карты из Kafka: по профилю или по данным рождения.
// Ответ уходит событием chart.computed с тем же request_id.
func (s *Service) ProcessChartRequest(ctx context.Context, req domain.ChartRequest) error {
	if req.RequestID == "" {
		return domain.WrapBusinessError(domain.NewValidationError("request_id", "is required"))
	}
	if s.Producer == nil {
		return fmt.Errorf("kafka producer is not configured")
	}

	var (
		report    *domain.ChartReport
		profileID uuid.UUID
		err       error
	)
	if req.ProfileID != "" {
		profileID, err = uuid.Parse(req.ProfileID)
		if err != nil {
			return domain.WrapBusinessError(domain.NewValidationError("profile_id", err.Error()))
		}
		report, err = s.ProfileReport(ctx, profileID)
	} else {
		report, err = s.ComputeChart(ctx, req.Birth)
	}
	if err != nil {
		if isFinalRejection(err) {
			s.Log.WarnContext(ctx, "chart request rejected", "error", err, "request_id", req.RequestID)
			if domain.IsBusinessError(err) {
				return err
			}
			return domain.WrapBusinessError(err)
		}
		return fmt.Errorf("failed to compute requested chart: %w", withoutBusinessMark(err))
	}

	event := domain.ChartEvent{
		RequestID:  req.RequestID,
		Context:    report.Context,
		ComputedAt: report.ComputedAt,
	}
	if profileID != uuid.Nil {
		event.ProfileID = profileID.String()
	}
	if err := s.Producer.SendChartEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to publish chart event: %w", err)
	}
	return nil
}

// isFinalRejection повтор запроса даст тот же результат: ошибка входа, неопределённая карта
// или несуществующий профиль. Такие сообщения коммитятся без ответа
func isFinalRejection(err error) bool {
	return domain.IsValidationError(err) ||
		errors.Is(err, domain.ErrUndefinedForLocation) ||
		errors.Is(err, domain.ErrNotFound)
}

// withoutBusinessMark снимает обёртку BusinessError, чтобы consumer не закоммитил
// сообщение с временной ошибкой (БД, отмена контекста)
func withoutBusinessMark(err error) error {
	var businessErr *domain.BusinessError
	if errors.As(err, &businessErr) {
		return businessErr.Err
	}
	return err
}

// notify публикует событие о новой карте профиля; сбой публикации не ломает операцию
func (s *Service) notify(ctx context.Context, requestID string, profileID uuid.UUID, report *domain.ChartReport) {
	if s.Producer == nil {
		return
	}
	event := domain.ChartEvent{
		RequestID:  requestID,
		ProfileID:  profileID.String(),
		Context:    report.Context,
		ComputedAt: report.ComputedAt,
	}
	if err := s.Producer.SendChartEvent(ctx, event); err != nil {
		s.Log.WarnContext(ctx, "failed to publish chart event", "error", err, "profile_id", profileID)
	}
}
