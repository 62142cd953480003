package astro

import (
	"context"
	"errors"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// ComputeChart отчёт по карте с кэшированием на сутки
func (s *Service) ComputeChart(ctx context.Context, birth domain.BirthData) (*domain.ChartReport, error) {
	if err := birth.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	report, err := cached(ctx, s, chartKey(birth, now), s.cfg.ChartTTL, func() (*domain.ChartReport, error) {
		return s.Engine.BuildReport(ctx, birth, now)
	})
	if err != nil {
		return nil, s.engineError(ctx, "failed to compute chart", err)
	}
	return report, nil
}

// ChatContext плоские поля карты для чат-бота
func (s *Service) ChatContext(ctx context.Context, birth domain.BirthData) (domain.ChatContext, error) {
	report, err := s.ComputeChart(ctx, birth)
	if err != nil {
		return domain.ChatContext{}, err
	}
	return report.Context, nil
}

// Match совместимость пары, первая карта жениха
func (s *Service) Match(ctx context.Context, groom, bride domain.BirthData) (*domain.MatchResult, error) {
	result, err := s.Engine.MatchCharts(ctx, groom, bride)
	if err != nil {
		return nil, s.engineError(ctx, "failed to match charts", err)
	}
	s.Log.InfoContext(ctx, "charts matched",
		"total", result.Total,
		"verdict", result.Verdict,
		"nadi_dosha", result.NadiDosha,
		"bhakoot_dosha", result.BhakootDosha,
	)
	return result, nil
}

// engineError ошибки входа и особые случаи отдаются как есть, остальное логируется
// и оборачивается в BusinessError
func (s *Service) engineError(ctx context.Context, msg string, err error) error {
	if domain.IsValidationError(err) || errors.Is(err, domain.ErrUndefinedForLocation) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	s.Log.ErrorContext(ctx, msg, "error", err)
	return domain.WrapBusinessError(err)
}
