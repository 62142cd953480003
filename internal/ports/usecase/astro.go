package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// IAstroUsecase операции расчётного сервиса, которыми пользуются HTTP и CLI
type IAstroUsecase interface {
	ComputeChart(ctx context.Context, birth domain.BirthData) (*domain.ChartReport, error)
	ChatContext(ctx context.Context, birth domain.BirthData) (domain.ChatContext, error)
	Match(ctx context.Context, groom, bride domain.BirthData) (*domain.MatchResult, error)

	CreateProfile(ctx context.Context, birth domain.BirthData) (*domain.Profile, *domain.ChartReport, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	ListProfiles(ctx context.Context, limit, offset int) ([]*domain.Profile, error)
	ProfileReport(ctx context.Context, id uuid.UUID) (*domain.ChartReport, error)
	RecomputeProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, *domain.ChartReport, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	// SnapshotURL ссылка на архивный снапшот карты профиля
	SnapshotURL(ctx context.Context, id uuid.UUID) (string, error)

	Panchang(ctx context.Context, date time.Time, latitude, longitude, utcOffset float64) (*domain.PanchangDay, error)
	DailyHoroscope(ctx context.Context, sign domain.Sign, date time.Time) (*domain.Horoscope, error)
	MonthlyHoroscope(ctx context.Context, sign domain.Sign, year int, month time.Month) (*domain.Horoscope, error)
}
