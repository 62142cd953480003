package astro

import (
	"context"
	"time"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// Panchang день для места, кэшируется на 25 часов
func (s *Service) Panchang(ctx context.Context, date time.Time, latitude, longitude, utcOffset float64) (*domain.PanchangDay, error) {
	if err := domain.ValidateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	if err := domain.ValidateUTCOffset(utcOffset); err != nil {
		return nil, err
	}

	key := panchangKey(date, latitude, longitude, utcOffset)
	day, err := cached(ctx, s, key, s.cfg.PanchangTTL, func() (*domain.PanchangDay, error) {
		return s.Engine.Panchang(ctx, date, latitude, longitude, utcOffset)
	})
	if err != nil {
		return nil, s.engineError(ctx, "failed to compute panchang", err)
	}
	return day, nil
}

func (s *Service) DailyHoroscope(ctx context.Context, sign domain.Sign, date time.Time) (*domain.Horoscope, error) {
	if !sign.IsValid() {
		return nil, domain.NewValidationError("sign", "unknown sign")
	}
	return cached(ctx, s, dailyHoroscopeKey(sign, date), s.cfg.HoroscopeTTL, func() (*domain.Horoscope, error) {
		return s.Engine.DailyHoroscope(sign, date), nil
	})
}

func (s *Service) MonthlyHoroscope(ctx context.Context, sign domain.Sign, year int, month time.Month) (*domain.Horoscope, error) {
	if !sign.IsValid() {
		return nil, domain.NewValidationError("sign", "unknown sign")
	}
	if month < time.January || month > time.December {
		return nil, domain.NewValidationError("month", "out of range 1..12")
	}
	return cached(ctx, s, monthlyHoroscopeKey(sign, year, month), s.cfg.HoroscopeTTL, func() (*domain.Horoscope, error) {
		return s.Engine.MonthlyHoroscope(sign, year, month), nil
	})
}
