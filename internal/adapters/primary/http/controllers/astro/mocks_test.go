package astroController

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

type mockUsecase struct {
	mock.Mock
}

func (m *mockUsecase) ComputeChart(ctx context.Context, birth domain.BirthData) (*domain.ChartReport, error) {
	args := m.Called(ctx, birth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartReport), args.Error(1)
}

func (m *mockUsecase) ChatContext(ctx context.Context, birth domain.BirthData) (domain.ChatContext, error) {
	args := m.Called(ctx, birth)
	return args.Get(0).(domain.ChatContext), args.Error(1)
}

func (m *mockUsecase) Match(ctx context.Context, groom, bride domain.BirthData) (*domain.MatchResult, error) {
	args := m.Called(ctx, groom, bride)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchResult), args.Error(1)
}

func (m *mockUsecase) CreateProfile(ctx context.Context, birth domain.BirthData) (*domain.Profile, *domain.ChartReport, error) {
	args := m.Called(ctx, birth)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Profile), args.Get(1).(*domain.ChartReport), args.Error(2)
}

func (m *mockUsecase) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockUsecase) ListProfiles(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

func (m *mockUsecase) ProfileReport(ctx context.Context, id uuid.UUID) (*domain.ChartReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartReport), args.Error(1)
}

func (m *mockUsecase) RecomputeProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, *domain.ChartReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Profile), args.Get(1).(*domain.ChartReport), args.Error(2)
}

func (m *mockUsecase) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUsecase) SnapshotURL(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockUsecase) Panchang(ctx context.Context, date time.Time, latitude, longitude, utcOffset float64) (*domain.PanchangDay, error) {
	args := m.Called(ctx, date, latitude, longitude, utcOffset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PanchangDay), args.Error(1)
}

func (m *mockUsecase) DailyHoroscope(ctx context.Context, sign domain.Sign, date time.Time) (*domain.Horoscope, error) {
	args := m.Called(ctx, sign, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Horoscope), args.Error(1)
}

func (m *mockUsecase) MonthlyHoroscope(ctx context.Context, sign domain.Sign, year int, month time.Month) (*domain.Horoscope, error) {
	args := m.Called(ctx, sign, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Horoscope), args.Error(1)
}
