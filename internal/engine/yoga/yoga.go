// Package yoga ищет йоги и доши в построенной карте.
// Каждое правило независимо и только читает карту.
package yoga

import (
	"fmt"
	"slices"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

type yogaRule func(c *domain.Chart) []domain.Yoga

var yogaRules = []yogaRule{
	gajakesari,
	budhaditya,
	chandraMangala,
	mahapurusha,
	rajaYogas,
	dhanaYoga,
	viparitaRaja,
	adhiYoga,
	kemadruma,
}

// benefics естественные благие для Адхи-йоги
var benefics = []domain.Body{domain.Mercury, domain.Jupiter, domain.Venus}

type mahapurushaYoga struct {
	body        domain.Body
	name        string
	description string
}

var mahapurushaYogas = []mahapurushaYoga{
	{domain.Mars, "Ruchaka Yoga", "Mars strong in a kendra gives courage, leadership and physical vigour"},
	{domain.Mercury, "Bhadra Yoga", "Mercury strong in a kendra gives intellect, eloquence and commercial skill"},
	{domain.Jupiter, "Hamsa Yoga", "Jupiter strong in a kendra gives wisdom, virtue and respect"},
	{domain.Venus, "Malavya Yoga", "Venus strong in a kendra gives charm, comfort and artistic taste"},
	{domain.Saturn, "Shasha Yoga", "Saturn strong in a kendra gives authority, discipline and endurance"},
}

var viparitaNames = map[int]string{
	6:  "Harsha Viparita Raja Yoga",
	8:  "Sarala Viparita Raja Yoga",
	12: "Vimala Viparita Raja Yoga",
}

// Detect применяет все правила йог к карте
func Detect(c *domain.Chart) []domain.Yoga {
	out := []domain.Yoga{}
	for _, rule := range yogaRules {
		out = append(out, rule(c)...)
	}
	return out
}

func gajakesari(c *domain.Chart) []domain.Yoga {
	if !domain.IsKendra(c.HouseOf(domain.Jupiter)) || !domain.IsTrikona(c.HouseOf(domain.Moon)) {
		return nil
	}
	return []domain.Yoga{newYoga(c, "Gajakesari Yoga", domain.YogaCategoryLunar,
		"Jupiter in a kendra with the Moon in a trikona brings reputation, wealth and lasting support",
		domain.Jupiter, domain.Moon)}
}

func budhaditya(c *domain.Chart) []domain.Yoga {
	if !conjunct(c, domain.Sun, domain.Mercury) {
		return nil
	}
	return []domain.Yoga{newYoga(c, "Budhaditya Yoga", domain.YogaCategorySolar,
		"Sun and Mercury together sharpen intelligence and communication",
		domain.Sun, domain.Mercury)}
}

func chandraMangala(c *domain.Chart) []domain.Yoga {
	if !conjunct(c, domain.Moon, domain.Mars) {
		return nil
	}
	return []domain.Yoga{newYoga(c, "Chandra-Mangala Yoga", domain.YogaCategoryDhana,
		"Moon and Mars together give drive to earn and an enterprising mind",
		domain.Moon, domain.Mars)}
}

// mahapurusha планета в кендре в своём знаке или экзальтации
func mahapurusha(c *domain.Chart) []domain.Yoga {
	var out []domain.Yoga
	for _, m := range mahapurushaYogas {
		sign := c.SignOf(m.body)
		if !domain.IsKendra(c.HouseOf(m.body)) {
			continue
		}
		if sign != domain.ExaltationSign(m.body) && !domain.IsOwnSign(m.body, sign) {
			continue
		}
		out = append(out, newYoga(c, m.name, domain.YogaCategoryMahapurusha, m.description, m.body))
	}
	return out
}

// rajaYogas управитель кендры вместе с управителем триконы или одна планета управляет обеими
func rajaYogas(c *domain.Chart) []domain.Yoga {
	var out []domain.Yoga
	seen := map[[2]domain.Body]bool{}

	for _, kendra := range []int{1, 4, 7, 10} {
		for _, trikona := range []int{5, 9} {
			kl, tl := c.HouseLord(kendra), c.HouseLord(trikona)
			key := [2]domain.Body{min(kl, tl), max(kl, tl)}
			if seen[key] {
				continue
			}

			switch {
			case kl == tl:
				seen[key] = true
				out = append(out, newYoga(c, "Raja Yoga", domain.YogaCategoryRaja,
					fmt.Sprintf("%s rules both house %d and house %d and promises rise in status", kl, kendra, trikona),
					kl))
			case conjunct(c, kl, tl):
				seen[key] = true
				out = append(out, newYoga(c, "Raja Yoga", domain.YogaCategoryRaja,
					fmt.Sprintf("Lords of house %d (%s) and house %d (%s) are together and promise authority",
						kendra, kl, trikona, tl),
					kl, tl))
			}
		}
	}
	return out
}

func dhanaYoga(c *domain.Chart) []domain.Yoga {
	second, eleventh := c.HouseLord(2), c.HouseLord(11)
	if second == eleventh || !conjunct(c, second, eleventh) {
		return nil
	}
	return []domain.Yoga{newYoga(c, "Dhana Yoga", domain.YogaCategoryDhana,
		fmt.Sprintf("Lords of wealth (%s) and gains (%s) are together and support accumulation", second, eleventh),
		second, eleventh)}
}

// viparitaRaja управитель дустханы сам стоит в дустхане
func viparitaRaja(c *domain.Chart) []domain.Yoga {
	var out []domain.Yoga
	for _, house := range []int{6, 8, 12} {
		lord := c.HouseLord(house)
		if !domain.IsDusthana(c.HouseOf(lord)) {
			continue
		}
		out = append(out, newYoga(c, viparitaNames[house], domain.YogaCategoryRaja,
			fmt.Sprintf("Lord of house %d (%s) sits in a dusthana and turns adversity into gain", house, lord),
			lord))
	}
	return out
}

// adhiYoga минимум два естественных благих в 6, 7 или 8 от Луны
func adhiYoga(c *domain.Chart) []domain.Yoga {
	moon := c.SignOf(domain.Moon)
	var placed []domain.Body
	for _, b := range benefics {
		switch moon.DistanceTo(c.SignOf(b)) {
		case 6, 7, 8:
			placed = append(placed, b)
		}
	}
	if len(placed) < 2 {
		return nil
	}
	return []domain.Yoga{newYoga(c, "Adhi Yoga", domain.YogaCategoryLunar,
		"Benefics in the 6th, 7th and 8th from the Moon give leadership and a comfortable life",
		placed...)}
}

// kemadruma Луна без соседей: ни одной планеты (кроме Солнца и узлов) с ней, во 2 или 12 от неё
func kemadruma(c *domain.Chart) []domain.Yoga {
	moon := c.SignOf(domain.Moon)
	for _, b := range domain.AllBodies() {
		if b == domain.Moon || b == domain.Sun || b.IsNode() {
			continue
		}
		switch moon.DistanceTo(c.SignOf(b)) {
		case 1, 2, 12:
			return nil
		}
	}
	return []domain.Yoga{newYoga(c, "Kemadruma Yoga", domain.YogaCategoryLunar,
		"The Moon stands alone without planetary support, which can bring periods of isolation and want",
		domain.Moon)}
}

func conjunct(c *domain.Chart, a, b domain.Body) bool {
	return c.SignOf(a) == c.SignOf(b)
}

func newYoga(c *domain.Chart, name string, category domain.YogaCategory, description string, bodies ...domain.Body) domain.Yoga {
	return domain.Yoga{
		Name:        name,
		Category:    category,
		Planets:     bodies,
		Houses:      housesOf(c, bodies),
		Description: description,
	}
}

// housesOf дома тел по возрастанию без повторов
func housesOf(c *domain.Chart, bodies []domain.Body) []int {
	houses := make([]int, 0, len(bodies))
	for _, b := range bodies {
		houses = append(houses, c.HouseOf(b))
	}
	slices.Sort(houses)
	return slices.Compact(houses)
}
