package panchang

import (
	"math"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/engine/astrotime"
	"github.com/admin/astro-services/jyotish/internal/engine/ephemeris"
)

const (
	TithiSpan  = 12.0
	KaranaSpan = 6.0
	YogaSpan   = 360.0 / 27

	// CrossingIterations фиксированное число шагов Ньютона при поиске конца элемента
	CrossingIterations = 8

	derivativeStep = 1.0 / 24
)

var tithiNames = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
}

var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda", "Sukarma",
	"Dhriti", "Shula", "Ganda", "Vriddhi", "Dhruva", "Vyaghata", "Harshana",
	"Vajra", "Siddhi", "Vyatipata", "Variyan", "Parigha", "Shiva", "Siddha",
	"Sadhya", "Shubha", "Shukla", "Brahma", "Indra", "Vaidhriti",
}

// movingKaranas повторяются восемь раз между Кимстугхной и Шакуни
var movingKaranas = [7]string{"Bava", "Balava", "Kaulava", "Taitila", "Garaja", "Vanija", "Vishti"}

var fixedKaranas = map[int]string{
	0:  "Kimstughna",
	57: "Shakuni",
	58: "Chatushpada",
	59: "Naga",
}

// angularFunc монотонно растущий угол, приведённый к [0,360)
type angularFunc func(julianDay float64) float64

func siderealSun(julianDay float64) float64 {
	return astrotime.Normalize(ephemeris.SunLongitude(julianDay) - astrotime.Ayanamsa(julianDay))
}

func siderealMoon(julianDay float64) float64 {
	return astrotime.Normalize(ephemeris.MoonLongitude(julianDay) - astrotime.Ayanamsa(julianDay))
}

// lunarElongation Луна минус Солнце; от аянамши не зависит
func lunarElongation(julianDay float64) float64 {
	return astrotime.Normalize(ephemeris.MoonLongitude(julianDay) - ephemeris.SunLongitude(julianDay))
}

func sunMoonSum(julianDay float64) float64 {
	return astrotime.Normalize(siderealSun(julianDay) + siderealMoon(julianDay))
}

// TithiIndex 1..30
func TithiIndex(elongation float64) int {
	return clampIndex(int(math.Floor(elongation/TithiSpan)), 30) + 1
}

func TithiName(index int) string {
	switch {
	case index == 30:
		return "Amavasya"
	case index > 15:
		return tithiNames[index-16]
	default:
		return tithiNames[index-1]
	}
}

func PakshaOf(tithi int) domain.Paksha {
	if tithi <= 15 {
		return domain.PakshaShukla
	}
	return domain.PakshaKrishna
}

// KaranaIndex 0..59 от новолуния
func KaranaIndex(elongation float64) int {
	return clampIndex(int(math.Floor(elongation/KaranaSpan)), 60)
}

// KaranaName четыре неподвижные караны на стыке месяца, семь подвижных между ними
func KaranaName(index int) string {
	if name, ok := fixedKaranas[index]; ok {
		return name
	}
	return movingKaranas[(index-1)%len(movingKaranas)]
}

func YogaIndex(sum float64) int {
	return clampIndex(int(math.Floor(sum/YogaSpan)), 27)
}

func YogaName(index int) string {
	return yogaNames[index]
}

// crossing момент, когда f впервые после start достигает следующей границы кратной span
func crossing(f angularFunc, start, span float64) float64 {
	value := f(start)
	boundary := (math.Floor(value/span) + 1) * span
	rate := angularRate(f, start)

	jd := start + (boundary-value)/rate
	for i := 0; i < CrossingIterations; i++ {
		diff := astrotime.AngleDiff(f(jd), boundary)
		rate = angularRate(f, jd)
		jd -= diff / rate
	}
	return jd
}

// angularRate градусов в сутки по конечной разности
func angularRate(f angularFunc, jd float64) float64 {
	return astrotime.AngleDiff(f(jd+derivativeStep), f(jd)) / derivativeStep
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
