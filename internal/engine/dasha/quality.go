package dasha

import "github.com/admin/astro-services/jyotish/internal/domain"

type lordPair struct{ maha, antar domain.Body }

// Именованные пары перекрывают общее правило дружбы/вражды
var (
	excellentPairs = symmetric(
		lordPair{domain.Jupiter, domain.Moon},
		lordPair{domain.Sun, domain.Jupiter},
		lordPair{domain.Venus, domain.Saturn},
		lordPair{domain.Venus, domain.Mercury},
		lordPair{domain.Moon, domain.Mars},
	)
	difficultPairs = merge(
		symmetric(
			lordPair{domain.Saturn, domain.Mars},
			lordPair{domain.Sun, domain.Saturn},
			lordPair{domain.Rahu, domain.Ketu},
		),
		map[lordPair]bool{
			{domain.Moon, domain.Rahu}: true,
			{domain.Sun, domain.Rahu}:  true,
			{domain.Mars, domain.Rahu}: true,
		},
	)
)

// AntardashaQuality качество подпериода по отношению управителей
func AntardashaQuality(maha, antar domain.Body) domain.PeriodQuality {
	pair := lordPair{maha, antar}
	switch {
	case excellentPairs[pair]:
		return domain.QualityExcellent
	case difficultPairs[pair]:
		return domain.QualityDifficult
	case maha == antar:
		return domain.QualityGood
	case domain.AreMutualEnemies(maha, antar):
		return domain.QualityDifficult
	case domain.AreMutualFriends(maha, antar):
		return domain.QualityExcellent
	}

	switch domain.NaturalRelation(maha, antar) {
	case domain.RelationFriend:
		return domain.QualityGood
	case domain.RelationEnemy:
		return domain.QualityChallenging
	default:
		return domain.QualityMixed
	}
}

func symmetric(pairs ...lordPair) map[lordPair]bool {
	out := make(map[lordPair]bool, len(pairs)*2)
	for _, p := range pairs {
		out[p] = true
		out[lordPair{p.antar, p.maha}] = true
	}
	return out
}

func merge(maps ...map[lordPair]bool) map[lordPair]bool {
	out := make(map[lordPair]bool)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
