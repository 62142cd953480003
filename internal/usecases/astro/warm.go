package astro

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// WarmPanchang считает и кладёт в кэш панчангу на дату для каждого места.
// Ошибки по отдельным местам собираются, остальные места прогреваются.
func (s *Service) WarmPanchang(ctx context.Context, date time.Time, locations []domain.Location) error {
	var errs []error
	for _, loc := range locations {
		if err := ctx.Err(); err != nil {
			return err
		}
		local := date.In(domain.FixedZone(loc.UTCOffset))
		day, err := s.Engine.Panchang(ctx, local, loc.Latitude, loc.Longitude, loc.UTCOffset)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", loc.Name, err))
			continue
		}
		s.store(ctx, panchangKey(local, loc.Latitude, loc.Longitude, loc.UTCOffset), day, s.cfg.PanchangTTL)
	}

	s.Log.InfoContext(ctx, "panchang warmed", "locations", len(locations), "failed", len(errs))
	return errors.Join(errs...)
}

// WarmHoroscopes дневные гороскопы всех знаков на дату и месячные на её месяц
func (s *Service) WarmHoroscopes(ctx context.Context, date time.Time) error {
	for _, sign := range domain.AllSigns() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.store(ctx, dailyHoroscopeKey(sign, date), s.Engine.DailyHoroscope(sign, date), s.cfg.HoroscopeTTL)
		s.store(ctx, monthlyHoroscopeKey(sign, date.Year(), date.Month()),
			s.Engine.MonthlyHoroscope(sign, date.Year(), date.Month()), s.cfg.HoroscopeTTL)
	}

	s.Log.InfoContext(ctx, "horoscopes warmed", "date", date.Format(dateLayout))
	return nil
}
