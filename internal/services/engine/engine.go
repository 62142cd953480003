// Package engine собирает расчётное ядро в готовые отчёты: карта с дашами, йогами и
// дошами, совместимость пары, панчанга и гороскопы. Движки чистые, сервис только
// проверяет вход, переводит особые случаи в доменные ошибки и раскладывает работу.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/engine/chart"
	"github.com/admin/astro-services/jyotish/internal/engine/dasha"
	"github.com/admin/astro-services/jyotish/internal/engine/horoscope"
	"github.com/admin/astro-services/jyotish/internal/engine/matching"
	"github.com/admin/astro-services/jyotish/internal/engine/panchang"
	"github.com/admin/astro-services/jyotish/internal/engine/yoga"
)

type Config struct {
	DashaHorizonYears int `envconfig:"DASHA_HORIZON_YEARS" default:"120"`
}

// Service реализует service.IEngineService
type Service struct {
	horizonYears int
	log          *slog.Logger
}

func New(cfg Config, log *slog.Logger) *Service {
	horizon := cfg.DashaHorizonYears
	if horizon <= 0 {
		horizon = dasha.DefaultHorizonYears
	}
	return &Service{
		horizonYears: horizon,
		log:          log,
	}
}

// BuildChart только карта, без даш и йог
func (s *Service) BuildChart(ctx context.Context, birth domain.BirthData) (*domain.Chart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := birth.Validate(); err != nil {
		return nil, err
	}

	c, err := chart.Build(birth)
	if errors.Is(err, chart.ErrAscendantUndefined) {
		return nil, fmt.Errorf("%w: %v", domain.ErrUndefinedForLocation, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build chart: %w", err)
	}
	return c, nil
}

// BuildReport карта со шкалой даш на момент now, оценками планет, йогами, дошами и контекстом для чата
func (s *Service) BuildReport(ctx context.Context, birth domain.BirthData, now time.Time) (*domain.ChartReport, error) {
	c, err := s.BuildChart(ctx, birth)
	if err != nil {
		return nil, err
	}

	report := &domain.ChartReport{
		Chart:      c,
		Dasha:      dasha.CalculateWithHorizon(c, now, s.horizonYears),
		Planets:    dasha.Assess(c),
		Yogas:      yoga.Detect(c),
		Doshas:     yoga.DetectDoshas(c),
		ComputedAt: now,
	}
	report.Context = ChatContext(report)

	s.log.DebugContext(ctx, "chart report built",
		"ascendant", c.AscendantSign(),
		"moon_nakshatra", c.MoonNakshatra().Nakshatra,
		"yogas", len(report.Yogas),
		"doshas", len(report.Doshas),
		"reduced_confidence", c.ReducedConfidence,
	)
	return report, nil
}

// MatchCharts ашта-кута милан; первая карта жениха, вторая невесты. Карты строятся параллельно.
func (s *Service) MatchCharts(ctx context.Context, groom, bride domain.BirthData) (*domain.MatchResult, error) {
	var groomChart, brideChart *domain.Chart

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.BuildChart(gctx, groom)
		if err != nil {
			return fmt.Errorf("groom: %w", err)
		}
		groomChart = c
		return nil
	})
	g.Go(func() error {
		c, err := s.BuildChart(gctx, bride)
		if err != nil {
			return fmt.Errorf("bride: %w", err)
		}
		brideChart = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := matching.Match(groomChart, brideChart)
	s.log.DebugContext(ctx, "charts matched", "total", result.Total, "verdict", result.Verdict)
	return result, nil
}

// Panchang день по местной дате; полярный день или ночь не ошибка, а SunDefined=false
func (s *Service) Panchang(ctx context.Context, date time.Time, latitude, longitude, utcOffset float64) (*domain.PanchangDay, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	day, err := panchang.For(date, latitude, longitude, utcOffset)
	if err != nil {
		if domain.IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to compute panchang: %w", err)
	}
	return day, nil
}

func (s *Service) DailyHoroscope(sign domain.Sign, date time.Time) *domain.Horoscope {
	return horoscope.Daily(sign, date)
}

func (s *Service) MonthlyHoroscope(sign domain.Sign, year int, month time.Month) *domain.Horoscope {
	return horoscope.Monthly(sign, year, month)
}
