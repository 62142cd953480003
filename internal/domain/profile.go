package domain

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChartSnapshot JSON представление отчёта по карте
// Используется для хранения в БД (JSONB), S3 и передачи в Kafka
type ChartSnapshot []byte

// MarshalJSON отдаёт снапшот как есть, без base64
func (s ChartSnapshot) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return s, nil
}

func (s *ChartSnapshot) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}
	*s = bytes.Clone(data)
	return nil
}

// Value пустой снапшот пишется как NULL
func (s ChartSnapshot) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return []byte(s), nil
}

func (s *ChartSnapshot) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
	case []byte:
		*s = bytes.Clone(v)
	case string:
		*s = ChartSnapshot(v)
	default:
		return fmt.Errorf("cannot scan %T into ChartSnapshot", src)
	}
	return nil
}

// Profile сохранённые данные рождения вместе с последним посчитанным отчётом
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Place     string    `json:"place" db:"place"`
	BirthDate time.Time `json:"birth_date" db:"birth_local"` // локальное время рождения без зоны
	TimeKnown bool      `json:"time_known" db:"time_known"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	UTCOffset float64   `json:"utc_offset" db:"utc_offset"`

	Chart          ChartSnapshot `json:"chart,omitempty" db:"chart"`
	ChartUpdatedAt *time.Time    `json:"chart_updated_at,omitempty" db:"chart_updated_at"`
	SnapshotKey    *string       `json:"snapshot_key,omitempty" db:"snapshot_key"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewProfile создаёт профиль из данных рождения
func NewProfile(b BirthData, now time.Time) *Profile {
	return &Profile{
		ID:        uuid.New(),
		Name:      b.Name,
		Place:     b.Place,
		BirthDate: time.Date(b.Year, time.Month(b.Month), b.Day, b.Hour, b.Minute, b.Second, 0, time.UTC),
		TimeKnown: b.TimeKnown,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		UTCOffset: b.UTCOffset,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BirthData восстанавливает данные рождения из профиля
func (p *Profile) BirthData() BirthData {
	d := p.BirthDate
	return BirthData{
		Name:      p.Name,
		Place:     p.Place,
		Year:      d.Year(),
		Month:     int(d.Month()),
		Day:       d.Day(),
		Hour:      d.Hour(),
		Minute:    d.Minute(),
		Second:    d.Second(),
		TimeKnown: p.TimeKnown,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		UTCOffset: p.UTCOffset,
	}
}

// ChartEvent сообщение о посчитанной карте для внешних потребителей (чат-бот)
type ChartEvent struct {
	RequestID  string      `json:"request_id"`
	ProfileID  string      `json:"profile_id,omitempty"`
	Context    ChatContext `json:"context"`
	ComputedAt time.Time   `json:"computed_at"`
}

// ChartRequest запрос на расчёт карты, приходящий из Kafka
type ChartRequest struct {
	RequestID string    `json:"request_id"`
	ProfileID string    `json:"profile_id,omitempty"`
	Birth     BirthData `json:"birth"`
}
