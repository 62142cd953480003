package ephemeris

import "github.com/admin/astro-services/jyotish/internal/engine/astrotime"

// RahuMeanLongitude средний восходящий узел Луны, линейно убывает со временем
func RahuMeanLongitude(julianDay float64) float64 {
	t := astrotime.Centuries(julianDay)
	return astrotime.Normalize(125.0445479 - 1934.1362891*t)
}

// KetuLongitude всегда строго напротив Раху
func KetuLongitude(julianDay float64) float64 {
	return astrotime.Normalize(RahuMeanLongitude(julianDay) + 180)
}
