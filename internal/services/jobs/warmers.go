package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

const (
	panchangWarmerName  = "panchang-warmer"
	horoscopeWarmerName = "horoscope-warmer"
)

type PanchangService interface {
	WarmPanchang(ctx context.Context, date time.Time, locations []domain.Location) error
}

type HoroscopeService interface {
	WarmHoroscopes(ctx context.Context, date time.Time) error
}

// dailyAt следующее наступление hour:minute по UTC строго после now
func dailyAt(now time.Time, hour, minute int) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// PanchangWarmer прогревает кэш панчанги для настроенных мест на сегодня и следующие дни
type PanchangWarmer struct {
	service   PanchangService
	locations []domain.Location
	cfg       Config
	log       *slog.Logger
	now       func() time.Time
}

func NewPanchangWarmer(service PanchangService, locations []domain.Location, cfg Config, log *slog.Logger) *PanchangWarmer {
	return &PanchangWarmer{
		service:   service,
		locations: locations,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

func (j *PanchangWarmer) Name() string {
	return panchangWarmerName
}

func (j *PanchangWarmer) NextRun(now time.Time) time.Time {
	return dailyAt(now, j.cfg.Hour, j.cfg.Minute)
}

// Run западные места к моменту запуска ещё во вчерашнем дне, поэтому греется несколько дней
func (j *PanchangWarmer) Run(ctx context.Context) error {
	now := j.now()
	var errs []error
	for d := 0; d < max(j.cfg.DaysAhead, 1); d++ {
		if err := j.service.WarmPanchang(ctx, now.AddDate(0, 0, d), j.locations); err != nil {
			errs = append(errs, err)
		}
	}
	j.log.DebugContext(ctx, "panchang warm finished", "locations", len(j.locations), "failed_days", len(errs))
	return errors.Join(errs...)
}

// HoroscopeWarmer прогревает дневные и месячные гороскопы всех знаков
type HoroscopeWarmer struct {
	service HoroscopeService
	cfg     Config
	log     *slog.Logger
	now     func() time.Time
}

func NewHoroscopeWarmer(service HoroscopeService, cfg Config, log *slog.Logger) *HoroscopeWarmer {
	return &HoroscopeWarmer{
		service: service,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

func (j *HoroscopeWarmer) Name() string {
	return horoscopeWarmerName
}

func (j *HoroscopeWarmer) NextRun(now time.Time) time.Time {
	return dailyAt(now, j.cfg.Hour, j.cfg.Minute)
}

func (j *HoroscopeWarmer) Run(ctx context.Context) error {
	y, m, d := j.now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	for day := 0; day < max(j.cfg.DaysAhead, 1); day++ {
		if err := j.service.WarmHoroscopes(ctx, today.AddDate(0, 0, day)); err != nil {
			return err
		}
	}
	j.log.DebugContext(ctx, "horoscope cache warmed", "from", today.Format(time.DateOnly))
	return nil
}
