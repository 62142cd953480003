// Package chart строит сидерическую карту: лагна, равные дома, знаки и накшатры грах.
package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/engine/astrotime"
	"github.com/admin/astro-services/jyotish/internal/engine/ephemeris"
)

// ErrAscendantUndefined лагна не определена: на полюсе формула вырождена
var ErrAscendantUndefined = errors.New("ascendant is undefined for this latitude")

const polarLatitudeEpsilon = 1e-6

// Орбиты сожжения (градусы от Солнца); у ретроградных Меркурия и Венеры орбита меньше
var (
	combustOrb = map[domain.Body]float64{
		domain.Moon:    12,
		domain.Mars:    17,
		domain.Mercury: 14,
		domain.Jupiter: 11,
		domain.Venus:   10,
		domain.Saturn:  15,
	}
	combustOrbRetrograde = map[domain.Body]float64{
		domain.Mercury: 12,
		domain.Venus:   8,
	}
)

// Build строит карту по проверенным данным рождения.
// Если время неизвестно, берётся полдень и карта помечается ReducedConfidence.
func Build(birth domain.BirthData) (*domain.Chart, error) {
	b := birth.WithDefaultTime()

	jd := astrotime.ToJulianDay(b.Year, b.Month, b.Day, b.Hour, b.Minute, b.Second, b.UTCOffset)
	ayanamsa := astrotime.Ayanamsa(jd)

	asc, err := Ascendant(jd, b.Latitude, b.Longitude, ayanamsa)
	if err != nil {
		return nil, fmt.Errorf("failed to compute ascendant: %w", err)
	}

	c := &domain.Chart{
		Birth:     b,
		JulianDay: jd,
		Ayanamsa:  ayanamsa,
		Ascendant: domain.AscendantPoint{
			Longitude: asc,
			Sign:      SignOf(asc),
			Nakshatra: NakshatraOf(asc),
		},
		Cusps:             HouseCusps(asc),
		ReducedConfidence: !birth.TimeKnown,
		BirthUTC:          astrotime.ToTime(jd),
	}

	tropical := ephemeris.Longitudes(jd)
	sunSidereal := SiderealLongitude(tropical[domain.Sun], ayanamsa)

	for body := domain.Sun; body < domain.BodyCount; body++ {
		lon := SiderealLongitude(tropical[body], ayanamsa)
		retro := ephemeris.IsRetrograde(body, jd)
		c.Planets[body] = domain.Planet{
			Body:              body,
			Longitude:         lon,
			TropicalLongitude: tropical[body],
			Sign:              SignOf(lon),
			Nakshatra:         NakshatraOf(lon),
			House:             HouseOf(lon, asc),
			Retrograde:        retro,
			Combust:           IsCombust(body, lon, sunSidereal, retro),
		}
	}

	return c, nil
}

// SiderealLongitude (tropical − ayanamsa) mod 360
func SiderealLongitude(tropical, ayanamsa float64) float64 {
	return astrotime.Normalize(tropical - ayanamsa)
}

// Ascendant сидерическая лагна. Местное звёздное время даёт RAMC, затем
// λ = atan2(cos RAMC, −(sin RAMC·cos ε + tan φ·sin ε)); atan2 сам выбирает нужную полуокружность.
func Ascendant(julianDay, latitude, longitude, ayanamsa float64) (float64, error) {
	tropical, err := TropicalAscendant(julianDay, latitude, longitude)
	if err != nil {
		return 0, err
	}
	return SiderealLongitude(tropical, ayanamsa), nil
}

func TropicalAscendant(julianDay, latitude, longitude float64) (float64, error) {
	if math.IsNaN(latitude) || math.IsNaN(longitude) || math.Abs(latitude) >= 90-polarLatitudeEpsilon {
		return 0, ErrAscendantUndefined
	}

	ramc := astrotime.LocalSiderealTime(julianDay, longitude)
	eps := astrotime.MeanObliquity(julianDay)

	y := astrotime.Cos(ramc)
	x := -(astrotime.Sin(ramc)*astrotime.Cos(eps) + astrotime.Tan(latitude)*astrotime.Sin(eps))
	asc := astrotime.Atan2(y, x)

	if math.IsNaN(asc) || math.IsInf(asc, 0) {
		return 0, ErrAscendantUndefined
	}
	return astrotime.Normalize(asc), nil
}

// HouseCusps равнодомная система: cusp[i] = asc + 30·i
func HouseCusps(ascendant float64) [domain.HouseCount]float64 {
	var cusps [domain.HouseCount]float64
	for i := range cusps {
		cusps[i] = astrotime.Normalize(ascendant + float64(i)*domain.SignSpan)
	}
	return cusps
}

// HouseOf дом 1..12 для долготы при данной лагне
func HouseOf(longitude, ascendant float64) int {
	house := int(astrotime.Normalize(longitude-ascendant)/domain.SignSpan) + 1
	return clamp(house, 1, domain.HouseCount)
}

// SignOf знак, градус и минута внутри знака
func SignOf(longitude float64) domain.SignPlacement {
	lon := astrotime.Normalize(longitude)
	idx := clamp(int(lon/domain.SignSpan), 0, int(domain.SignCount)-1)
	inSign := lon - float64(idx)*domain.SignSpan
	deg := int(inSign)
	minute := clamp(int((inSign-float64(deg))*60), 0, 59)
	return domain.SignPlacement{
		Sign:         domain.Sign(idx),
		DegreeInSign: inSign,
		Degree:       deg,
		Minute:       minute,
	}
}

// NakshatraOf накшатра, пада 1..4 и пройденная доля
func NakshatraOf(longitude float64) domain.NakshatraPlacement {
	lon := astrotime.Normalize(longitude)
	idx := clamp(int(lon/domain.NakshatraSpan), 0, domain.NakshatraCount-1)
	within := lon - float64(idx)*domain.NakshatraSpan
	pada := clamp(int(within/domain.PadaSpan)+1, 1, 4)
	n := domain.Nakshatra(idx)
	return domain.NakshatraPlacement{
		Nakshatra: n,
		Pada:      pada,
		Lord:      n.Lord(),
		Fraction:  within / domain.NakshatraSpan,
	}
}

// IsCombust планета слишком близко к Солнцу; Солнце и узлы не сжигаются
func IsCombust(body domain.Body, longitude, sunLongitude float64, retrograde bool) bool {
	orb, ok := combustOrb[body]
	if !ok {
		return false
	}
	if retrograde {
		if r, ok := combustOrbRetrograde[body]; ok {
			orb = r
		}
	}
	return math.Abs(astrotime.AngleDiff(longitude, sunLongitude)) < orb
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
