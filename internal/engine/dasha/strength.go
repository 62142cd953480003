package dasha

import "github.com/admin/astro-services/jyotish/internal/domain"

const (
	strengthBaseline = 50.0

	retrogradePenalty = 5.0
	combustPenalty    = 15.0

	strongThreshold   = 70.0
	moderateThreshold = 45.0
)

var dignityWeight = map[domain.Dignity]float64{
	domain.DignityExalted:     30,
	domain.DignityOwn:         20,
	domain.DignityFriend:      10,
	domain.DignityNeutral:     0,
	domain.DignityEnemy:       -10,
	domain.DignityDebilitated: -30,
}

// houseWeight вклад дома: первый дом и кендра и трикона одновременно
func houseWeight(house int) float64 {
	kendra, trikona := domain.IsKendra(house), domain.IsTrikona(house)
	switch {
	case kendra && trikona:
		return 20
	case kendra || trikona:
		return 10
	case domain.IsDusthana(house):
		return -15
	default:
		return 0
	}
}

// Strength сила планеты в [0,100]
func Strength(p domain.Planet) float64 {
	score := strengthBaseline +
		dignityWeight[domain.DignityOf(p.Body, p.Sign.Sign)] +
		houseWeight(p.House)

	if p.Retrograde && !p.Body.IsNode() {
		score -= retrogradePenalty
	}
	if p.Combust {
		score -= combustPenalty
	}

	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}

func Band(strength float64) domain.StrengthBand {
	switch {
	case strength >= strongThreshold:
		return domain.StrengthStrong
	case strength >= moderateThreshold:
		return domain.StrengthModerate
	default:
		return domain.StrengthWeak
	}
}
