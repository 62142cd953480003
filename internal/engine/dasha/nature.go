package dasha

import "github.com/admin/astro-services/jyotish/internal/domain"

// FunctionalNature природа планеты по домам, которыми она управляет при данной лагне.
// Порядок проверок важен: йогакарака раньше мараки, чистая дустхана раньше благих домов.
func FunctionalNature(asc domain.Sign, body domain.Body) domain.FunctionalNature {
	houses := domain.HousesRuled(asc, body)
	if len(houses) == 0 {
		return domain.NatureNeutral
	}

	if isYogakaraka(houses) {
		return domain.NatureYogakaraka
	}
	if hasAny(houses, 2, 7) {
		return domain.NatureMaraka
	}
	if onlyDusthana(houses) {
		return domain.NatureMalefic
	}
	if hasAny(houses, 1, 5, 9) {
		return domain.NatureBenefic
	}
	if hasAny(houses, 3, 6, 8, 11, 12) {
		return domain.NatureMalefic
	}
	return domain.NatureNeutral
}

// isYogakaraka ровно два дома: чистая кендра (4, 7, 10) и трикона (5, 9)
func isYogakaraka(houses []int) bool {
	if len(houses) != 2 {
		return false
	}
	pureKendra := func(h int) bool { return h == 4 || h == 7 || h == 10 }
	pureTrikona := func(h int) bool { return h == 5 || h == 9 }
	a, b := houses[0], houses[1]
	return (pureKendra(a) && pureTrikona(b)) || (pureTrikona(a) && pureKendra(b))
}

func onlyDusthana(houses []int) bool {
	for _, h := range houses {
		if !domain.IsDusthana(h) {
			return false
		}
	}
	return true
}

func hasAny(houses []int, wanted ...int) bool {
	for _, h := range houses {
		for _, w := range wanted {
			if h == w {
				return true
			}
		}
	}
	return false
}
