package astro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/ports/persistence"
)

var (
	ErrSnapshotsDisabled = errors.New("snapshot archive is not configured")
	ErrNoSnapshot        = errors.New("profile has no archived snapshot")
)

const maxProfilesPage = 100

// CreateProfile сохраняет данные рождения вместе с посчитанным отчётом, после записи архивирует снапшот
func (s *Service) CreateProfile(ctx context.Context, birth domain.BirthData) (*domain.Profile, *domain.ChartReport, error) {
	if err := birth.Validate(); err != nil {
		return nil, nil, err
	}

	now := s.now()
	report, err := s.Engine.BuildReport(ctx, birth, now)
	if err != nil {
		return nil, nil, s.engineError(ctx, "failed to compute chart for profile", err)
	}

	snapshot, err := json.Marshal(report)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode chart snapshot: %w", err)
	}

	profile := domain.NewProfile(birth, now)
	profile.Chart = snapshot
	profile.ChartUpdatedAt = &now

	if err := s.ProfileRepo.Create(ctx, profile); err != nil {
		s.Log.ErrorContext(ctx, "failed to save profile", "error", err, "profile_id", profile.ID)
		return nil, nil, domain.WrapBusinessError(err)
	}
	s.archive(ctx, profile)

	s.Log.InfoContext(ctx, "profile created",
		"profile_id", profile.ID,
		"ascendant", report.Context.AscendantSign,
		"reduced_confidence", report.Context.ReducedConfidence,
	)
	s.notify(ctx, uuid.NewString(), profile.ID, report)

	return profile, report, nil
}

func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.ProfileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.Log.ErrorContext(ctx, "failed to get profile", "error", err, "profile_id", id)
		return nil, domain.WrapBusinessError(err)
	}
	return profile, nil
}

func (s *Service) ListProfiles(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	if limit <= 0 || limit > maxProfilesPage {
		limit = maxProfilesPage
	}
	offset = max(offset, 0)

	profiles, err := s.ProfileRepo.List(ctx, limit, offset)
	if err != nil {
		s.Log.ErrorContext(ctx, "failed to list profiles", "error", err)
		return nil, domain.WrapBusinessError(err)
	}
	return profiles, nil
}

// ProfileReport сохранённый отчёт профиля без пересчёта.
// Порядок: карта из БД, архивный снапшот из S3, пересчёт
func (s *Service) ProfileReport(ctx context.Context, id uuid.UUID) (*domain.ChartReport, error) {
	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(profile.Chart) > 0 {
		var report domain.ChartReport
		err := json.Unmarshal(profile.Chart, &report)
		if err == nil {
			return &report, nil
		}
		s.Log.WarnContext(ctx, "stored snapshot is unreadable", "error", err, "profile_id", id)
	}

	if report := s.archivedReport(ctx, profile); report != nil {
		return report, nil
	}
	return s.ComputeChart(ctx, profile.BirthData())
}

// archivedReport читает последний архивный снапшот; nil, если его нет или он не читается
func (s *Service) archivedReport(ctx context.Context, profile *domain.Profile) *domain.ChartReport {
	if s.Snapshots == nil || profile.SnapshotKey == nil {
		return nil
	}
	data, err := s.Snapshots.GetFile(ctx, *profile.SnapshotKey)
	if err != nil {
		s.Log.WarnContext(ctx, "failed to load archived snapshot", "error", err, "profile_id", profile.ID, "snapshot_key", *profile.SnapshotKey)
		return nil
	}
	var report domain.ChartReport
	if err := json.Unmarshal(data, &report); err != nil {
		s.Log.WarnContext(ctx, "archived snapshot is unreadable", "error", err, "profile_id", profile.ID, "snapshot_key", *profile.SnapshotKey)
		return nil
	}
	return &report
}

// RecomputeProfile пересчитывает карту под блокировкой строки профиля.
// Снапшот архивируется только после коммита
func (s *Service) RecomputeProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, *domain.ChartReport, error) {
	var (
		profile *domain.Profile
		report  *domain.ChartReport
	)

	err := s.ProfileRepo.WithTransaction(ctx, func(ctx context.Context, tx persistence.Transaction) error {
		p, err := s.ProfileRepo.GetByIDForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}

		now := s.now()
		r, err := s.Engine.BuildReport(ctx, p.BirthData(), now)
		if err != nil {
			return err
		}

		snapshot, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode chart snapshot: %w", err)
		}
		if err := s.ProfileRepo.UpdateChartTx(ctx, tx, p.ID, snapshot, now); err != nil {
			return err
		}

		p.Chart = snapshot
		p.ChartUpdatedAt = &now
		p.UpdatedAt = now
		profile, report = p, r
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, err
		}
		return nil, nil, s.engineError(ctx, "failed to recompute profile", err)
	}

	s.archive(ctx, profile)

	s.Log.InfoContext(ctx, "profile recomputed", "profile_id", id)
	s.notify(ctx, uuid.NewString(), profile.ID, report)
	return profile, report, nil
}

func (s *Service) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	if err := s.ProfileRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.Log.ErrorContext(ctx, "failed to delete profile", "error", err, "profile_id", id)
		return domain.WrapBusinessError(err)
	}
	s.Log.InfoContext(ctx, "profile deleted", "profile_id", id)
	return nil
}

// SnapshotURL presigned ссылка на последний архивный снапшот профиля
func (s *Service) SnapshotURL(ctx context.Context, id uuid.UUID) (string, error) {
	if s.Snapshots == nil {
		return "", ErrSnapshotsDisabled
	}
	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return "", err
	}
	if profile.SnapshotKey == nil {
		return "", ErrNoSnapshot
	}

	url, err := s.Snapshots.GetPresignedURL(ctx, *profile.SnapshotKey, s.cfg.SnapshotURLTTL)
	if err != nil {
		s.Log.ErrorContext(ctx, "failed to presign snapshot", "error", err, "profile_id", id)
		return "", domain.WrapBusinessError(err)
	}
	return url, nil
}

// archive кладёт карту профиля в S3 и привязывает ключ к строке.
// Ошибки только логируются: без снапшота профиль остаётся рабочим
func (s *Service) archive(ctx context.Context, profile *domain.Profile) {
	if s.Snapshots == nil || profile.ChartUpdatedAt == nil {
		return
	}
	at := *profile.ChartUpdatedAt
	key := snapshotKey(s.cfg.SnapshotPrefix, profile.ID, at)
	if err := s.Snapshots.PutFile(ctx, key, profile.Chart, "application/json"); err != nil {
		s.Log.WarnContext(ctx, "failed to archive chart snapshot", "error", err, "profile_id", profile.ID)
		return
	}
	if err := s.ProfileRepo.SetSnapshotKey(ctx, profile.ID, key, at); err != nil {
		s.Log.WarnContext(ctx, "failed to link chart snapshot", "error", err, "profile_id", profile.ID, "snapshot_key", key)
		if err := s.Snapshots.DeleteFile(ctx, key); err != nil {
			s.Log.WarnContext(ctx, "failed to remove unlinked snapshot", "error", err, "snapshot_key", key)
		}
		return
	}
	profile.SnapshotKey = &key
}
