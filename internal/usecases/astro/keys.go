package astro

import (
	"fmt"
	"time"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

const dateLayout = "2006-01-02"

// chartKey карта зависит от даты расчёта через текущую дашу, поэтому ключ включает день.
// Имя и место входят в ключ, так как отчёт возвращает их как есть
func chartKey(b domain.BirthData, today time.Time) string {
	b = b.WithDefaultTime()
	return fmt.Sprintf("chart:%04d%02d%02dT%02d%02d%02d:%t:%.4f:%.4f:%.2f:%q:%q:%s",
		b.Year, b.Month, b.Day, b.Hour, b.Minute, b.Second, b.TimeKnown,
		b.Latitude, b.Longitude, b.UTCOffset, b.Name, b.Place, today.UTC().Format(dateLayout))
}

func panchangKey(date time.Time, lat, lon, utcOffset float64) string {
	y, m, d := date.Date()
	return fmt.Sprintf("panchang:%04d-%02d-%02d:%.4f:%.4f:%.2f", y, m, d, lat, lon, utcOffset)
}

func dailyHoroscopeKey(sign domain.Sign, date time.Time) string {
	y, m, d := date.Date()
	return fmt.Sprintf("horoscope:daily:%s:%04d-%02d-%02d", sign, y, m, d)
}

func monthlyHoroscopeKey(sign domain.Sign, year int, month time.Month) string {
	return fmt.Sprintf("horoscope:monthly:%s:%04d-%02d", sign, year, month)
}

func snapshotKey(prefix string, profileID fmt.Stringer, at time.Time) string {
	return fmt.Sprintf("%s/%s/%s.json", prefix, profileID, at.UTC().Format("20060102T150405Z"))
}
