package astro

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/ports/persistence"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) BuildReport(ctx context.Context, birth domain.BirthData, now time.Time) (*domain.ChartReport, error) {
	args := m.Called(ctx, birth, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartReport), args.Error(1)
}

func (m *mockEngine) MatchCharts(ctx context.Context, groom, bride domain.BirthData) (*domain.MatchResult, error) {
	args := m.Called(ctx, groom, bride)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchResult), args.Error(1)
}

func (m *mockEngine) Panchang(ctx context.Context, date time.Time, latitude, longitude, utcOffset float64) (*domain.PanchangDay, error) {
	args := m.Called(ctx, date, latitude, longitude, utcOffset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PanchangDay), args.Error(1)
}

func (m *mockEngine) DailyHoroscope(sign domain.Sign, date time.Time) *domain.Horoscope {
	return m.Called(sign, date).Get(0).(*domain.Horoscope)
}

func (m *mockEngine) MonthlyHoroscope(sign domain.Sign, year int, month time.Month) *domain.Horoscope {
	return m.Called(sign, year, month).Get(0).(*domain.Horoscope)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) List(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) SetSnapshotKey(ctx context.Context, id uuid.UUID, key string, chartUpdatedAt time.Time) error {
	return m.Called(ctx, id, key, chartUpdatedAt).Error(0)
}

func (m *mockProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// WithTransaction вызывает fn сразу, транзакция в тестах не нужна
func (m *mockProfileRepo) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	m.Called(ctx)
	return fn(ctx, nil)
}

func (m *mockProfileRepo) GetByIDForUpdateTx(ctx context.Context, tx persistence.Transaction, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) UpdateChartTx(ctx context.Context, tx persistence.Transaction, id uuid.UUID, chart domain.ChartSnapshot, updatedAt time.Time) error {
	return m.Called(ctx, id, chart, updatedAt).Error(0)
}

type mockSnapshots struct {
	mock.Mock
}

func (m *mockSnapshots) PutFile(ctx context.Context, path string, data []byte, contentType string) error {
	return m.Called(ctx, path, data, contentType).Error(0)
}

func (m *mockSnapshots) GetFile(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockSnapshots) DeleteFile(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *mockSnapshots) GetPresignedURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	args := m.Called(ctx, path, expires)
	return args.String(0), args.Error(1)
}

type mockProducer struct {
	mock.Mock
}

func (m *mockProducer) SendChartEvent(ctx context.Context, event domain.ChartEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockProducer) Send(ctx context.Context, key string, value []byte) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *mockProducer) Close() error {
	return nil
}

// brokenCache кэш, у которого падает любая операция
type brokenCache struct{}

var errCacheDown = errors.New("connection refused")

func (brokenCache) Get(context.Context, string) (string, error) { return "", errCacheDown }
func (brokenCache) Set(context.Context, string, string, time.Duration) error { return errCacheDown }
func (brokenCache) Delete(context.Context, string) error { return errCacheDown }
func (brokenCache) Exists(context.Context, string) (bool, error) { return false, errCacheDown }
func (brokenCache) Close() error { return nil }
