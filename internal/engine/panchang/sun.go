package panchang

import (
	"errors"

	"github.com/admin/astro-services/jyotish/internal/engine/astrotime"
	"github.com/admin/astro-services/jyotish/internal/engine/ephemeris"
)

var (
	ErrPolarDay   = errors.New("sun does not set on this date at this latitude")
	ErrPolarNight = errors.New("sun does not rise on this date at this latitude")
)

const (
	// sunriseAltitude рефракция и полудиск
	sunriseAltitude = -0.8333

	// siderealRate градусов звёздного времени за солнечные сутки
	siderealRate = 360.98564736629

	transitIterations = 3
)

// SunTimes восход и заход как юлианские дни UT
type SunTimes struct {
	Sunrise float64
	Transit float64
	Sunset  float64
}

func (s SunTimes) DayLength() float64 {
	return s.Sunset - s.Sunrise
}

// equatorial прямое восхождение и склонение Солнца
func equatorial(julianDay float64) (ra, dec float64) {
	lambda := ephemeris.SunLongitude(julianDay)
	eps := astrotime.MeanObliquity(julianDay)
	ra = astrotime.Normalize(astrotime.Atan2(astrotime.Cos(eps)*astrotime.Sin(lambda), astrotime.Cos(lambda)))
	dec = astrotime.Asin(astrotime.Sin(eps) * astrotime.Sin(lambda))
	return ra, dec
}

// SunriseSunset по уравнению часового угла около localNoon (JD UT местного полудня).
// Вне [-1,1] для cos H возвращается ErrPolarDay или ErrPolarNight.
func SunriseSunset(localNoon, latitude, longitude float64) (SunTimes, error) {
	transit := localNoon
	for i := 0; i < transitIterations; i++ {
		ra, _ := equatorial(transit)
		hourAngle := astrotime.AngleDiff(astrotime.LocalSiderealTime(transit, longitude), ra)
		transit -= hourAngle / siderealRate
	}

	_, dec := equatorial(transit)
	cosH := (astrotime.Sin(sunriseAltitude) - astrotime.Sin(latitude)*astrotime.Sin(dec)) /
		(astrotime.Cos(latitude) * astrotime.Cos(dec))

	switch {
	case cosH < -1:
		return SunTimes{Transit: transit}, ErrPolarDay
	case cosH > 1:
		return SunTimes{Transit: transit}, ErrPolarNight
	}

	h := astrotime.Acos(cosH) / siderealRate
	return SunTimes{
		Sunrise: transit - h,
		Transit: transit,
		Sunset:  transit + h,
	}, nil
}
