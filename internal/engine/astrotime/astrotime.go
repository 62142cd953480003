// Package astrotime переводит гражданское время в юлианские дни и считает
// величины, зависящие только от момента: аянамшу, наклон эклиптики, звёздное время.
package astrotime

import (
	"math"
	"time"

	"github.com/carlosjhr64/jd"
)

const (
	// J2000 юлианский день эпохи 2000-01-01 12:00 TT
	J2000          = 2451545.0
	DaysPerCentury = 36525.0
	DaysPerYear    = 365.25

	// Лахири: значение на J2000 и средняя скорость прецессии
	lahiriAtJ2000     = 23.853
	precessionPerYear = 50.2388475 / 3600.0
)

// ToJulianDay переводит локальное гражданское время с заданным смещением UTC в юлианский день.
// Целая часть берётся из номера юлианского дня григорианской даты (с вековой поправкой),
// который соответствует полудню, поэтому вычитается 0.5.
// Разница TT−UT не учитывается.
func ToJulianDay(year, month, day, hour, minute, second int, utcOffsetHours float64) float64 {
	jdn := jd.YMD2J(year, month, day)
	hours := float64(hour) + float64(minute)/60 + float64(second)/3600 - utcOffsetHours
	return float64(jdn) - 0.5 + hours/24
}

// FromTime юлианский день для момента t
func FromTime(t time.Time) float64 {
	u := t.UTC()
	base := ToJulianDay(u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute(), u.Second(), 0)
	return base + float64(u.Nanosecond())/1e9/86400
}

// ToTime обратное преобразование с точностью до миллисекунды, результат в UTC
func ToTime(julianDay float64) time.Time {
	shifted := julianDay + 0.5
	jdn := math.Floor(shifted)
	y, m, d := jd.J2YMD(int(jdn))
	ms := math.Round((shifted - jdn) * 86400000)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Add(time.Duration(ms) * time.Millisecond)
}

// Centuries юлианские века от J2000
func Centuries(julianDay float64) float64 {
	return (julianDay - J2000) / DaysPerCentury
}

// Ayanamsa аянамша Лахири в градусах. Линейна по времени, поэтому монотонна
// и воспроизводима без обращения к системным часам.
func Ayanamsa(julianDay float64) float64 {
	years := (julianDay - J2000) / DaysPerYear
	return lahiriAtJ2000 + years*precessionPerYear
}

// MeanObliquity средний наклон эклиптики (Meeus 22.2)
func MeanObliquity(julianDay float64) float64 {
	t := Centuries(julianDay)
	seconds := 21.448 - 46.8150*t - 0.00059*t*t + 0.001813*t*t*t
	return 23 + 26.0/60 + seconds/3600
}

// GreenwichSiderealTime среднее звёздное время в Гринвиче в градусах (Meeus 12.4)
func GreenwichSiderealTime(julianDay float64) float64 {
	t := Centuries(julianDay)
	theta := 280.46061837 +
		360.98564736629*(julianDay-J2000) +
		0.000387933*t*t -
		t*t*t/38710000
	return Normalize(theta)
}

// LocalSiderealTime местное звёздное время, долгота восточная положительная
func LocalSiderealTime(julianDay, longitude float64) float64 {
	return Normalize(GreenwichSiderealTime(julianDay) + longitude)
}

// Normalize приводит угол к [0,360)
func Normalize(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 || r == 0 {
		// -1e-17 + 360 округляется до 360, а -0 превращаем в 0
		return 0
	}
	return r
}

// AngleDiff разность a−b, приведённая к (-180,180]
func AngleDiff(a, b float64) float64 {
	d := Normalize(a - b)
	if d > 180 {
		d -= 360
	}
	return d
}
