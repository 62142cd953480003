package astroController

import (
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// MatchRequest первая карта жениха, вторая невесты
type MatchRequest struct {
	Groom *domain.BirthData `json:"groom" binding:"required"`
	Bride *domain.BirthData `json:"bride" binding:"required"`
}

// ProfileResponse профиль без снапшота карты, сам отчёт отдаётся отдельным запросом
type ProfileResponse struct {
	ID             uuid.UUID        `json:"id"`
	Birth          domain.BirthData `json:"birth"`
	ChartUpdatedAt *time.Time       `json:"chart_updated_at,omitempty"`
	HasSnapshot    bool             `json:"has_snapshot"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type ProfileWithReportResponse struct {
	Profile ProfileResponse     `json:"profile"`
	Report  *domain.ChartReport `json:"report"`
}

type ProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type SnapshotURLResponse struct {
	URL string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func toProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		Birth:          p.BirthData(),
		ChartUpdatedAt: p.ChartUpdatedAt,
		HasSnapshot:    p.SnapshotKey != nil,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
