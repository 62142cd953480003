package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Значение времени рождения по умолчанию, если оно неизвестно
const (
	DefaultBirthHour   = 12
	DefaultBirthMinute = 0
)

// BirthData исходные данные рождения: локальное гражданское время и координаты места
type BirthData struct {
	Name      string  `json:"name"`
	Place     string  `json:"place"`
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Second    int     `json:"second"`
	TimeKnown bool    `json:"time_known"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// UTCOffset смещение от UTC в часах, восточнее Гринвича положительное
	UTCOffset float64 `json:"utc_offset"`
}

// UnmarshalJSON без time_known время считается известным, если передан hour, minute или second.
// Явный time_known имеет приоритет
func (b *BirthData) UnmarshalJSON(data []byte) error {
	type plain BirthData
	var raw struct {
		plain
		TimeKnown *bool `json:"time_known"`
		Hour      *int  `json:"hour"`
		Minute    *int  `json:"minute"`
		Second    *int  `json:"second"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = BirthData(raw.plain)
	timeSent := false
	for _, f := range []struct {
		src *int
		dst *int
	}{{raw.Hour, &b.Hour}, {raw.Minute, &b.Minute}, {raw.Second, &b.Second}} {
		if f.src != nil {
			*f.dst = *f.src
			timeSent = true
		}
	}

	b.TimeKnown = timeSent
	if raw.TimeKnown != nil {
		b.TimeKnown = *raw.TimeKnown
	}
	return nil
}

// Validate проверяет диапазоны полей
func (b BirthData) Validate() error {
	if b.Month < 1 || b.Month > 12 {
		return NewValidationError("month", fmt.Sprintf("%d is out of range 1..12", b.Month))
	}
	if b.Day < 1 || b.Day > daysIn(b.Year, b.Month) {
		return NewValidationError("day", fmt.Sprintf("%d is out of range for %04d-%02d", b.Day, b.Year, b.Month))
	}
	if b.TimeKnown {
		if b.Hour < 0 || b.Hour > 23 {
			return NewValidationError("hour", fmt.Sprintf("%d is out of range 0..23", b.Hour))
		}
		if b.Minute < 0 || b.Minute > 59 {
			return NewValidationError("minute", fmt.Sprintf("%d is out of range 0..59", b.Minute))
		}
		if b.Second < 0 || b.Second > 59 {
			return NewValidationError("second", fmt.Sprintf("%d is out of range 0..59", b.Second))
		}
	}
	if err := ValidateCoordinates(b.Latitude, b.Longitude); err != nil {
		return err
	}
	return ValidateUTCOffset(b.UTCOffset)
}

// WithDefaultTime подставляет полдень, если время рождения неизвестно
func (b BirthData) WithDefaultTime() BirthData {
	if b.TimeKnown {
		return b
	}
	b.Hour = DefaultBirthHour
	b.Minute = DefaultBirthMinute
	b.Second = 0
	return b
}

// Location фиксированная зона по смещению
func (b BirthData) Location() *time.Location {
	return FixedZone(b.UTCOffset)
}

// LocalTime момент рождения в локальной зоне
func (b BirthData) LocalTime() time.Time {
	return time.Date(b.Year, time.Month(b.Month), b.Day, b.Hour, b.Minute, b.Second, 0, b.Location())
}

// BirthDataFromTime заполняет дату и время из t в зоне с заданным смещением
func BirthDataFromTime(t time.Time, utcOffset float64) BirthData {
	local := t.In(FixedZone(utcOffset))
	return BirthData{
		Year:      local.Year(),
		Month:     int(local.Month()),
		Day:       local.Day(),
		Hour:      local.Hour(),
		Minute:    local.Minute(),
		Second:    local.Second(),
		TimeKnown: true,
		UTCOffset: utcOffset,
	}
}

func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return NewValidationError("latitude", fmt.Sprintf("%v is out of range -90..90", lat))
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return NewValidationError("longitude", fmt.Sprintf("%v is out of range -180..180", lon))
	}
	return nil
}

func ValidateUTCOffset(offset float64) error {
	if math.IsNaN(offset) || offset < -14 || offset > 14 {
		return NewValidationError("utc_offset", fmt.Sprintf("%v is out of range -14..14", offset))
	}
	return nil
}

// FixedZone зона с дробным смещением в часах (например, +5.5 для Индии)
func FixedZone(offsetHours float64) *time.Location {
	seconds := int(math.Round(offsetHours * 3600))
	if seconds == 0 {
		return time.UTC
	}
	sign := "+"
	abs := seconds
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	return time.FixedZone(fmt.Sprintf("UTC%s%02d:%02d", sign, abs/3600, abs%3600/60), seconds)
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
