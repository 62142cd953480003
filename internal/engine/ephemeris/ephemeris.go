// Package ephemeris считает тропические геоцентрические долготы девяти грах.
//
// Солнце и Луна берутся из усечённых рядов Meeus, пять классических планет из
// кеплеровых элементов J2000 с линейными вековыми поправками, Раху как средний узел.
// Точность порядка долей градуса в интервале 1900–2100, для астрологии этого достаточно.
package ephemeris

import (
	"fmt"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/engine/astrotime"
)

// TropicalLongitude тропическая долгота тела на дату равноденствия, всегда в [0,360)
func TropicalLongitude(body domain.Body, julianDay float64) float64 {
	switch body {
	case domain.Sun:
		return SunLongitude(julianDay)
	case domain.Moon:
		return MoonLongitude(julianDay)
	case domain.Rahu:
		return RahuMeanLongitude(julianDay)
	case domain.Ketu:
		return KetuLongitude(julianDay)
	case domain.Mars, domain.Mercury, domain.Jupiter, domain.Venus, domain.Saturn:
		return planetGeocentric(planetElements[body], julianDay).longitude
	default:
		panic(fmt.Sprintf("ephemeris: unsupported body %d", int(body)))
	}
}

// Longitudes тропические долготы всех тел на один момент
func Longitudes(julianDay float64) [domain.BodyCount]float64 {
	var out [domain.BodyCount]float64
	for b := domain.Sun; b < domain.BodyCount; b++ {
		out[b] = TropicalLongitude(b, julianDay)
	}
	return out
}

// Elongation угловое расстояние тела от Солнца, (-180,180]; положительно к востоку
func Elongation(body domain.Body, julianDay float64) float64 {
	return astrotime.AngleDiff(TropicalLongitude(body, julianDay), SunLongitude(julianDay))
}

// GeocentricDistance расстояние от Земли в а.е.
func GeocentricDistance(body domain.Body, julianDay float64) float64 {
	switch body {
	case domain.Sun:
		return sunPosition(julianDay).distance
	case domain.Moon:
		return moonDistanceKm(julianDay) / kmPerAU
	case domain.Rahu, domain.Ketu:
		return 0
	default:
		return planetGeocentric(planetElements[body], julianDay).distance
	}
}
