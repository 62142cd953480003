package ephemeris

import (
	"math"

	"github.com/admin/astro-services/jyotish/internal/engine/astrotime"
)

const kmPerAU = 149597870.7

// moonTerm строка таблицы 47.A: множители аргументов D, M, M', F
// и коэффициенты для долготы (1e-6 градуса) и расстояния (1e-3 км)
type moonTerm struct {
	d, m, mp, f int
	l, r        float64
}

// Главные члены периодического ряда, остальные дают меньше 0.0005°
var moonTerms = []moonTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 79661},
	{4, 0, -1, 0, 10675, -34782},
	{0, 0, 3, 0, 10034, -23210},
	{4, 0, -2, 0, 8548, -21636},
	{2, 1, -1, 0, -7888, 24208},
	{2, 1, 0, 0, -6766, 30824},
	{1, 0, -1, 0, -5163, -8379},
	{1, 1, 0, 0, 4987, -16675},
	{2, -1, 1, 0, 4036, -12831},
	{2, 0, 2, 0, 3994, -10445},
	{4, 0, 0, 0, 3861, -11650},
	{2, 0, -3, 0, 3665, 14403},
	{0, 1, -2, 0, -2689, -7003},
	{2, 0, -1, 2, -2602, 0},
	{2, -1, -2, 0, 2390, 10056},
	{1, 0, 1, 0, -2348, 6322},
	{2, -2, 0, 0, 2236, -9884},
	{0, 1, 2, 0, -2120, 5751},
	{0, 2, 0, 0, -2069, 0},
	{2, -2, -1, 0, 2048, -4950},
	{2, 0, 1, -2, -1773, 4130},
	{2, 0, 0, 2, -1595, 0},
	{4, -1, -1, 0, 1215, -3958},
	{0, 0, 2, 2, -1110, 0},
	{3, 0, -1, 0, -892, 3258},
	{2, 1, 1, 0, -810, 2616},
	{4, -1, -2, 0, 759, -1897},
	{0, 2, -1, 0, -713, -2117},
	{2, 2, -1, 0, -700, 2354},
	{2, 1, -2, 0, 691, 0},
	{2, -1, 0, -2, 596, 0},
	{4, 0, 1, 0, 549, -1423},
	{0, 0, 4, 0, 537, -1117},
	{4, -1, 0, 0, 520, -1571},
	{1, 0, -2, 0, -487, -1739},
}

type moonArgs struct {
	lp, d, m, mp, f float64
	e               float64
	t               float64
}

func lunarArguments(julianDay float64) moonArgs {
	t := astrotime.Centuries(julianDay)
	t2, t3, t4 := t*t, t*t*t, t*t*t*t
	return moonArgs{
		lp: 218.3164477 + 481267.88123421*t - 0.0015786*t2 + t3/538841 - t4/65194000,
		d:  297.8501921 + 445267.1114034*t - 0.0018819*t2 + t3/545868 - t4/113065000,
		m:  357.5291092 + 35999.0502909*t - 0.0001536*t2 + t3/24490000,
		mp: 134.9633964 + 477198.8675055*t + 0.0087414*t2 + t3/69699 - t4/14712000,
		f:  93.2720950 + 483202.0175233*t - 0.0036539*t2 - t3/3526000 + t4/863310000,
		e:  1 - 0.002516*t - 0.0000074*t2,
		t:  t,
	}
}

func (a moonArgs) argument(term moonTerm) float64 {
	return float64(term.d)*a.d + float64(term.m)*a.m + float64(term.mp)*a.mp + float64(term.f)*a.f
}

// eccentricityFactor члены с M умножаются на E или E²
func (a moonArgs) eccentricityFactor(term moonTerm) float64 {
	switch int(math.Abs(float64(term.m))) {
	case 1:
		return a.e
	case 2:
		return a.e * a.e
	default:
		return 1
	}
}

// MoonLongitude видимая долгота Луны (Meeus гл. 47, усечённый ряд, плюс нутация)
func MoonLongitude(julianDay float64) float64 {
	a := lunarArguments(julianDay)

	var sumL float64
	for _, term := range moonTerms {
		sumL += term.l * a.eccentricityFactor(term) * astrotime.Sin(a.argument(term))
	}

	a1 := 119.75 + 131.849*a.t
	a2 := 53.09 + 479264.290*a.t
	sumL += 3958*astrotime.Sin(a1) + 1962*astrotime.Sin(a.lp-a.f) + 318*astrotime.Sin(a2)

	return astrotime.Normalize(a.lp + sumL/1e6 + nutationInLongitude(julianDay))
}

func moonDistanceKm(julianDay float64) float64 {
	a := lunarArguments(julianDay)

	var sumR float64
	for _, term := range moonTerms {
		if term.r == 0 {
			continue
		}
		sumR += term.r * a.eccentricityFactor(term) * astrotime.Cos(a.argument(term))
	}
	return 385000.56 + sumR/1000
}

// nutationInLongitude Δψ в градусах, главные члены (Meeus гл. 22)
func nutationInLongitude(julianDay float64) float64 {
	t := astrotime.Centuries(julianDay)
	omega := 125.04452 - 1934.136261*t
	lSun := 280.4665 + 36000.7698*t
	lMoon := 218.3165 + 481267.8813*t
	arcsec := -17.20*astrotime.Sin(omega) -
		1.32*astrotime.Sin(2*lSun) -
		0.23*astrotime.Sin(2*lMoon) +
		0.21*astrotime.Sin(2*omega)
	return arcsec / 3600
}
