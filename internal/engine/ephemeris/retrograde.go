package ephemeris

import (
	"math"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// Пороги элонгации для эвристики ретроградности.
// Это приближение: точные моменты стояния не вычисляются.
var (
	// внутренние планеты ретроградны у нижнего соединения
	inferiorConjunctionOrb = map[domain.Body]float64{
		domain.Mercury: 18,
		domain.Venus:   28,
	}
	// внешние планеты ретроградны у противостояния
	oppositionOrb = map[domain.Body]float64{
		domain.Mars:    36,
		domain.Jupiter: 60,
		domain.Saturn:  68,
	}
)

// IsRetrograde эвристический признак попятного движения по элонгации от Солнца
func IsRetrograde(body domain.Body, julianDay float64) bool {
	switch {
	case body.IsLuminary():
		return false
	case body.IsNode():
		return true
	}

	elongation := math.Abs(Elongation(body, julianDay))

	if orb, ok := inferiorConjunctionOrb[body]; ok {
		// ближняя к Земле сторона орбиты, то есть нижнее, а не верхнее соединение
		return elongation < orb && GeocentricDistance(body, julianDay) < 1
	}
	if orb, ok := oppositionOrb[body]; ok {
		return elongation > 180-orb
	}
	return false
}
