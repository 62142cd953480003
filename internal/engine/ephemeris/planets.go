package ephemeris

import (
	"math"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/engine/astrotime"
)

// KeplerIterations фиксированное число шагов Ньютона для уравнения Кеплера.
// При e < 0.21 восьми шагов хватает до машинной точности, проверка сходимости не нужна.
const KeplerIterations = 8

// generalPrecession прецессия по долготе, градусов за юлианский век.
// Элементы даны для равноденствия J2000, долготы Солнца и Луны на дату.
const generalPrecession = 1.396971

// orbitalElements кеплеровы элементы J2000 и их вековые скорости
// (JPL, Approximate Positions of the Planets, 1800–2050)
type orbitalElements struct {
	a, aDot       float64 // а.е.
	e, eDot       float64
	i, iDot       float64 // наклон, градусы
	l, lDot       float64 // средняя долгота
	peri, periDot float64 // долгота перигелия
	node, nodeDot float64 // долгота восходящего узла
}

var earthElements = orbitalElements{
	a: 1.00000261, aDot: 0.00000562,
	e: 0.01671123, eDot: -0.00004392,
	i: -0.00001531, iDot: -0.01294668,
	l: 100.46457166, lDot: 35999.37244981,
	peri: 102.93768193, periDot: 0.32327364,
	node: 0, nodeDot: 0,
}

var planetElements = map[domain.Body]orbitalElements{
	domain.Mercury: {
		a: 0.38709927, aDot: 0.00000037,
		e: 0.20563593, eDot: 0.00001906,
		i: 7.00497902, iDot: -0.00594749,
		l: 252.25032350, lDot: 149472.67411175,
		peri: 77.45779628, periDot: 0.16047689,
		node: 48.33076593, nodeDot: -0.12534081,
	},
	domain.Venus: {
		a: 0.72333566, aDot: 0.00000390,
		e: 0.00677672, eDot: -0.00004107,
		i: 3.39467605, iDot: -0.00078890,
		l: 181.97909950, lDot: 58517.81538729,
		peri: 131.60246718, periDot: 0.00268329,
		node: 76.67984255, nodeDot: -0.27769418,
	},
	domain.Mars: {
		a: 1.52371034, aDot: 0.00001847,
		e: 0.09339410, eDot: 0.00007882,
		i: 1.84969142, iDot: -0.00813131,
		l: -4.55343205, lDot: 19140.30268499,
		peri: -23.94362959, periDot: 0.44441088,
		node: 49.55953891, nodeDot: -0.29257343,
	},
	domain.Jupiter: {
		a: 5.20288700, aDot: -0.00011607,
		e: 0.04838624, eDot: -0.00013253,
		i: 1.30439695, iDot: -0.00183714,
		l: 34.39644051, lDot: 3034.74612775,
		peri: 14.72847983, periDot: 0.21252668,
		node: 100.47390909, nodeDot: 0.20469106,
	},
	domain.Saturn: {
		a: 9.53667594, aDot: -0.00125060,
		e: 0.05386179, eDot: -0.00050991,
		i: 2.48599187, iDot: 0.00193609,
		l: 49.95424423, lDot: 1222.49362201,
		peri: 92.59887831, periDot: -0.41897216,
		node: 113.66242448, nodeDot: -0.28867794,
	},
}

type vec3 struct{ x, y, z float64 }

type geocentric struct {
	longitude float64
	distance  float64
}

// heliocentric эклиптические координаты J2000 по элементам на момент julianDay
func heliocentric(el orbitalElements, julianDay float64) vec3 {
	t := astrotime.Centuries(julianDay)

	a := el.a + el.aDot*t
	e := el.e + el.eDot*t
	incl := el.i + el.iDot*t
	meanLong := el.l + el.lDot*t
	peri := el.peri + el.periDot*t
	node := el.node + el.nodeDot*t

	argPeri := peri - node
	meanAnomaly := astrotime.AngleDiff(meanLong, peri)

	ecc := SolveKepler(astrotime.Rad(meanAnomaly), e)

	xp := a * (math.Cos(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	cw, sw := astrotime.Cos(argPeri), astrotime.Sin(argPeri)
	cn, sn := astrotime.Cos(node), astrotime.Sin(node)
	ci, si := astrotime.Cos(incl), astrotime.Sin(incl)

	return vec3{
		x: (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp,
		y: (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp,
		z: (sw*si)*xp + (cw*si)*yp,
	}
}

// SolveKepler эксцентрическая аномалия E из M = E − e·sinE, радианы
func SolveKepler(meanAnomaly, e float64) float64 {
	ecc := meanAnomaly + e*math.Sin(meanAnomaly)
	for i := 0; i < KeplerIterations; i++ {
		ecc -= (ecc - e*math.Sin(ecc) - meanAnomaly) / (1 - e*math.Cos(ecc))
	}
	return ecc
}

// planetGeocentric переход от гелиоцентрических координат к геоцентрическим
// вычитанием положения Земли на тот же момент
func planetGeocentric(el orbitalElements, julianDay float64) geocentric {
	p := heliocentric(el, julianDay)
	earth := heliocentric(earthElements, julianDay)

	dx, dy, dz := p.x-earth.x, p.y-earth.y, p.z-earth.z
	lon := astrotime.Atan2(dy, dx) + generalPrecession*astrotime.Centuries(julianDay)

	return geocentric{
		longitude: astrotime.Normalize(lon),
		distance:  math.Sqrt(dx*dx + dy*dy + dz*dz),
	}
}
