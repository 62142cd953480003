package ephemeris

import "github.com/admin/astro-services/jyotish/internal/engine/astrotime"

type sunPos struct {
	longitude float64 // видимая
	distance  float64 // а.е.
}

// SunLongitude видимая долгота Солнца (Meeus гл. 25, низкая точность)
func SunLongitude(julianDay float64) float64 {
	return sunPosition(julianDay).longitude
}

func sunPosition(julianDay float64) sunPos {
	t := astrotime.Centuries(julianDay)

	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t
	e := 0.016708634 - 0.000042037*t - 0.0000001267*t*t

	c := (1.914602-0.004817*t-0.000014*t*t)*astrotime.Sin(m) +
		(0.019993-0.000101*t)*astrotime.Sin(2*m) +
		0.000289*astrotime.Sin(3*m)

	trueLong := l0 + c
	nu := m + c
	r := 1.000001018 * (1 - e*e) / (1 + e*astrotime.Cos(nu))

	omega := 125.04 - 1934.136*t
	apparent := trueLong - 0.00569 - 0.00478*astrotime.Sin(omega)

	return sunPos{
		longitude: astrotime.Normalize(apparent),
		distance:  r,
	}
}
