// Package matching считает совместимость Ашта-кута (Гуна Милан) по положению Луны двух карт.
package matching

import (
	"math"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// Пороги вердикта по сумме баллов
const (
	ExcellentThreshold = 28.0
	VeryGoodThreshold  = 24.0
	GoodThreshold      = 18.0
)

// PartnerFromChart лунное положение карты; остальное в совместимости не участвует
func PartnerFromChart(c *domain.Chart) domain.MatchPartner {
	moon := c.Planet(domain.Moon)
	return domain.MatchPartner{
		Name:      c.Birth.Name,
		Nakshatra: moon.Nakshatra.Nakshatra,
		Pada:      moon.Nakshatra.Pada,
		Rashi:     moon.Sign.Sign,
	}
}

// Match совместимость двух карт: первая карта жениха, вторая невесты
func Match(groom, bride *domain.Chart) *domain.MatchResult {
	result := Score(PartnerFromChart(groom), PartnerFromChart(bride))
	result.ReducedConfidence = groom.ReducedConfidence || bride.ReducedConfidence
	return result
}

// Score восемь кут по накшатре и раши партнёров
func Score(groom, bride domain.MatchPartner) *domain.MatchResult {
	bhakoot, bhakootDosha := bhakootKoota(groom, bride)
	nadi, nadiDosha := nadiKoota(groom, bride)

	kootas := []domain.KootaScore{
		varnaKoota(groom, bride),
		vashyaKoota(groom, bride),
		taraKoota(groom, bride),
		yoniKoota(groom, bride),
		maitriKoota(groom, bride),
		ganaKoota(groom, bride),
		bhakoot,
		nadi,
	}

	var total float64
	for _, k := range kootas {
		total += k.Score
	}
	verdict := Verdict(total)

	return &domain.MatchResult{
		Groom:        groom,
		Bride:        bride,
		Kootas:       kootas,
		Total:        total,
		Max:          MaxTotal,
		Percentage:   math.Round(total/MaxTotal*1000) / 10,
		Verdict:      verdict,
		Favorable:    total >= GoodThreshold,
		NadiDosha:    nadiDosha,
		BhakootDosha: bhakootDosha,
		// отмена только сообщается, балл Бхакута остаётся нулевым
		BhakootCancellationEligible: bhakootDosha && groom.Rashi.Lord() == bride.Rashi.Lord(),
	}
}

func Verdict(total float64) domain.MatchVerdict {
	switch {
	case total >= ExcellentThreshold:
		return domain.VerdictExcellent
	case total >= VeryGoodThreshold:
		return domain.VerdictVeryGood
	case total >= GoodThreshold:
		return domain.VerdictGood
	default:
		return domain.VerdictNeedsAttention
	}
}
