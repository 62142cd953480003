package service

import (
	"context"
	"time"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// IEngineService расчётное ядро: карты, совместимость, панчанга, гороскопы
type IEngineService interface {
	BuildReport(ctx context.Context, birth domain.BirthData, now time.Time) (*domain.ChartReport, error)
	MatchCharts(ctx context.Context, groom, bride domain.BirthData) (*domain.MatchResult, error)
	Panchang(ctx context.Context, date time.Time, latitude, longitude, utcOffset float64) (*domain.PanchangDay, error)
	DailyHoroscope(sign domain.Sign, date time.Time) *domain.Horoscope
	MonthlyHoroscope(sign domain.Sign, year int, month time.Month) *domain.Horoscope
}
