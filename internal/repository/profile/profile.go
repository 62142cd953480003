package profileRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/ports/persistence"
	ports "github.com/admin/astro-services/jyotish/internal/ports/repository"
	"github.com/google/uuid"
)

type profileColumns struct {
	TableName      string
	ID             string
	Name           string
	Place          string
	BirthLocal     string
	TimeKnown      string
	Latitude       string
	Longitude      string
	UTCOffset      string
	Chart          string
	ChartUpdatedAt string
	SnapshotKey    string
	CreatedAt      string
	UpdatedAt      string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns profileColumns
}

// New создаёт репозиторий профилей рождения
func New(db persistence.Persistence, log *slog.Logger) ports.IProfileRepo {
	cols := profileColumns{
		TableName:      "birth_profiles",
		ID:             "id",
		Name:           "name",
		Place:          "place",
		BirthLocal:     "birth_local",
		TimeKnown:      "time_known",
		Latitude:       "latitude",
		Longitude:      "longitude",
		UTCOffset:      "utc_offset",
		Chart:          "chart",
		ChartUpdatedAt: "chart_updated_at",
		SnapshotKey:    "snapshot_key",
		CreatedAt:      "created_at",
		UpdatedAt:      "updated_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

func (r *Repository) allColumns() string {
	return strings.Join([]string{
		r.columns.ID,
		r.columns.Name,
		r.columns.Place,
		r.columns.BirthLocal,
		r.columns.TimeKnown,
		r.columns.Latitude,
		r.columns.Longitude,
		r.columns.UTCOffset,
		r.columns.Chart,
		r.columns.ChartUpdatedAt,
		r.columns.SnapshotKey,
		r.columns.CreatedAt,
		r.columns.UpdatedAt,
	}, ", ")
}

// Create сохраняет новый профиль, chart может быть пустым
func (r *Repository) Create(ctx context.Context, p *domain.Profile) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		r.columns.TableName,
		r.allColumns())
	err := r.db.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Place,
		p.BirthDate,
		p.TimeKnown,
		p.Latitude,
		p.Longitude,
		p.UTCOffset,
		p.Chart,
		p.ChartUpdatedAt,
		p.SnapshotKey,
		p.CreatedAt,
		p.UpdatedAt)
	if err != nil {
		r.Log.Error("failed to create profile", "error", err, "profile_id", p.ID)
		return fmt.Errorf("failed to create profile: %w", err)
	}
	r.Log.Debug("profile created", "profile_id", p.ID)
	return nil
}

// GetByID профиль по ID, domain.ErrNotFound если его нет
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID)
	return r.get(ctx, r.db, query, id)
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT $1 OFFSET $2`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.CreatedAt)

	var profiles []*domain.Profile
	if err := r.db.Select(ctx, &profiles, query, limit, offset); err != nil {
		r.Log.Error("failed to list profiles", "error", err, "limit", limit, "offset", offset)
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// SetSnapshotKey привязывает архивный снапшот к карте, посчитанной в chartUpdatedAt.
// Если карту уже пересчитали, ключ не записывается
func (r *Repository) SetSnapshotKey(ctx context.Context, id uuid.UUID, key string, chartUpdatedAt time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2 AND %s = $3`,
		r.columns.TableName,
		r.columns.SnapshotKey,
		r.columns.ID,
		r.columns.ChartUpdatedAt)

	affected, err := r.db.ExecWithResult(ctx, query, key, id, chartUpdatedAt)
	if err != nil {
		r.Log.Error("failed to set snapshot key", "error", err, "profile_id", id)
		return fmt.Errorf("failed to set snapshot key: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("profile %s chart at %s: %w", id, chartUpdatedAt.Format(time.RFC3339), domain.ErrNotFound)
	}
	r.Log.Debug("snapshot key set", "profile_id", id, "snapshot_key", key)
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, r.columns.TableName, r.columns.ID)
	affected, err := r.db.ExecWithResult(ctx, query, id)
	if err != nil {
		r.Log.Error("failed to delete profile", "error", err, "profile_id", id)
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	r.Log.Debug("profile deleted", "profile_id", id)
	return nil
}

func (r *Repository) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return r.db.WithTransaction(ctx, fn)
}

// GetByIDForUpdateTx блокирует строку профиля до конца транзакции
func (r *Repository) GetByIDForUpdateTx(ctx context.Context, tx persistence.Transaction, id uuid.UUID) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID)
	return r.get(ctx, tx, query, id)
}

// UpdateChartTx записывает пересчитанную карту, ключ прежнего снапшота не трогает
func (r *Repository) UpdateChartTx(ctx context.Context, tx persistence.Transaction, id uuid.UUID, chart domain.ChartSnapshot, updatedAt time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, %s = $2 WHERE %s = $3`,
		r.columns.TableName,
		r.columns.Chart,
		r.columns.ChartUpdatedAt,
		r.columns.UpdatedAt,
		r.columns.ID)

	affected, err := tx.ExecWithResult(ctx, query, chart, updatedAt, id)
	if err != nil {
		r.Log.Error("failed to update profile chart", "error", err, "profile_id", id)
		return fmt.Errorf("failed to update profile chart: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	r.Log.Debug("profile chart updated", "profile_id", id)
	return nil
}

func (r *Repository) get(ctx context.Context, q persistence.Querier, query string, id uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	if err := q.Get(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("profile not found", "profile_id", id)
			return nil, fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
		}
		r.Log.Error("failed to get profile", "error", err, "profile_id", id)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}
