package repository

import (
	"context"
	"time"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/ports/persistence"
	"github.com/google/uuid"
)

// IProfileRepo интерфейс для работы с сохранёнными профилями рождения
type IProfileRepo interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Profile, error)
	SetSnapshotKey(ctx context.Context, id uuid.UUID, key string, chartUpdatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error

	WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error
	GetByIDForUpdateTx(ctx context.Context, tx persistence.Transaction, id uuid.UUID) (*domain.Profile, error)
	UpdateChartTx(ctx context.Context, tx persistence.Transaction, id uuid.UUID, chart domain.ChartSnapshot, updatedAt time.Time) error
}
