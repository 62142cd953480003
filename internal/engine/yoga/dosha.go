package yoga

import (
	"slices"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/engine/astrotime"
)

type doshaRule func(c *domain.Chart) []domain.Dosha

var doshaRules = []doshaRule{
	mangalDosha,
	kaalSarpDosha,
	pitraDosha,
	grahanDosha,
	guruChandalDosha,
}

var mangalHouses = []int{1, 2, 4, 7, 8, 12}

// axisPlanets все тела, кроме узлов
var axisPlanets = []domain.Body{
	domain.Sun, domain.Moon, domain.Mars, domain.Mercury,
	domain.Jupiter, domain.Venus, domain.Saturn,
}

var doshaRemedies = map[string][]string{
	"Mangal Dosha": {
		"Recite the Hanuman Chalisa on Tuesdays",
		"Perform Kumbh Vivah or marry a partner with a matching dosha",
	},
	"Kaal Sarp Dosha": {
		"Perform Kaal Sarp puja at Trimbakeshwar",
		"Chant the Maha Mrityunjaya mantra",
	},
	"Pitra Dosha": {
		"Perform Shraddha and Tarpan for ancestors",
		"Feed Brahmins and crows on Amavasya",
	},
	"Grahan Dosha": {
		"Chant the Chandra mantra on Mondays",
		"Donate white rice and milk during eclipses",
	},
	"Guru Chandal Dosha": {
		"Chant the Guru beej mantra on Thursdays",
		"Respect teachers and avoid shortcuts in ethics",
	},
}

// DetectDoshas применяет все правила дош к карте
func DetectDoshas(c *domain.Chart) []domain.Dosha {
	out := []domain.Dosha{}
	for _, rule := range doshaRules {
		out = append(out, rule(c)...)
	}
	return out
}

// mangalDosha Марс в 1, 2, 4, 7, 8, 12; сильнее в 7 и 8, слабее в своём знаке или экзальтации
func mangalDosha(c *domain.Chart) []domain.Dosha {
	house := c.HouseOf(domain.Mars)
	if !slices.Contains(mangalHouses, house) {
		return nil
	}

	severity := domain.SeverityModerate
	if house == 7 || house == 8 {
		severity = domain.SeverityHigh
	}
	sign := c.SignOf(domain.Mars)
	if domain.IsOwnSign(domain.Mars, sign) || sign == domain.ExaltationSign(domain.Mars) {
		severity = domain.SeverityMild
	}

	return []domain.Dosha{newDosha(c, "Mangal Dosha", severity,
		"Mars in a sensitive house strains marriage and partnerships",
		domain.Mars)}
}

// kaalSarpDosha все семь планет строго по одну сторону оси Раху-Кету
func kaalSarpDosha(c *domain.Chart) []domain.Dosha {
	rahu := c.Planet(domain.Rahu).Longitude
	ahead, behind := 0, 0
	for _, b := range axisPlanets {
		d := astrotime.Normalize(c.Planet(b).Longitude - rahu)
		switch {
		case d > 0 && d < 180:
			ahead++
		case d > 180:
			behind++
		}
	}

	var description string
	switch {
	case ahead == len(axisPlanets):
		description = "All planets are hemmed between Rahu and Ketu, bringing sudden obstacles and delays"
	case behind == len(axisPlanets):
		description = "All planets are hemmed between Ketu and Rahu, bringing karmic struggles before success"
	default:
		return nil
	}
	return []domain.Dosha{newDosha(c, "Kaal Sarp Dosha", domain.SeverityHigh, description,
		domain.Rahu, domain.Ketu)}
}

func pitraDosha(c *domain.Chart) []domain.Dosha {
	node, ok := withNode(c, domain.Sun)
	if !ok {
		return nil
	}
	return []domain.Dosha{newDosha(c, "Pitra Dosha", domain.SeverityModerate,
		"The Sun afflicted by a node points to unresolved ancestral karma",
		domain.Sun, node)}
}

func grahanDosha(c *domain.Chart) []domain.Dosha {
	node, ok := withNode(c, domain.Moon)
	if !ok {
		return nil
	}
	return []domain.Dosha{newDosha(c, "Grahan Dosha", domain.SeverityModerate,
		"The Moon eclipsed by a node disturbs emotional peace",
		domain.Moon, node)}
}

func guruChandalDosha(c *domain.Chart) []domain.Dosha {
	if !conjunct(c, domain.Jupiter, domain.Rahu) {
		return nil
	}
	return []domain.Dosha{newDosha(c, "Guru Chandal Dosha", domain.SeverityModerate,
		"Jupiter with Rahu clouds judgement and respect for tradition",
		domain.Jupiter, domain.Rahu)}
}

// withNode узел в одном знаке с телом; Раху проверяется первым
func withNode(c *domain.Chart, b domain.Body) (domain.Body, bool) {
	for _, node := range []domain.Body{domain.Rahu, domain.Ketu} {
		if conjunct(c, b, node) {
			return node, true
		}
	}
	return 0, false
}

func newDosha(c *domain.Chart, name string, severity domain.DoshaSeverity, description string, bodies ...domain.Body) domain.Dosha {
	return domain.Dosha{
		Name:        name,
		Severity:    severity,
		Planets:     bodies,
		Houses:      housesOf(c, bodies),
		Description: description,
		Remedies:    append([]string(nil), doshaRemedies[name]...),
	}
}
