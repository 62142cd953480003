package dasha

import (
	"fmt"
	"strings"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

type houseCategory string

const (
	categoryKendra   houseCategory = "kendra"
	categoryTrikona  houseCategory = "trikona"
	categoryDusthana houseCategory = "dusthana"
	categoryOther    houseCategory = "other"
	categoryNone     houseCategory = "none"
)

var natureText = map[domain.FunctionalNature]string{
	domain.NatureYogakaraka: "acts as the chart's yogakaraka and can lift status and fortune",
	domain.NatureBenefic:    "is a functional benefic and supports growth",
	domain.NatureNeutral:    "is functionally neutral and follows its placement",
	domain.NatureMalefic:    "is a functional malefic and brings obstacles that test patience",
	domain.NatureMaraka:     "is a maraka and calls for care with health and partnerships",
}

var bandText = map[domain.StrengthBand]string{
	domain.StrengthStrong:   "It is strong, so its results come readily",
	domain.StrengthModerate: "It is of moderate strength, so results arrive with steady effort",
	domain.StrengthWeak:     "It is weak, so results are delayed or partial",
}

var categoryText = map[houseCategory]string{
	categoryKendra:   "through career, home and relationships",
	categoryTrikona:  "through dharma, learning and luck",
	categoryDusthana: "through debts, disputes and hidden matters",
	categoryOther:    "through effort, gains and communication",
	categoryNone:     "through karmic events outside house lordship",
}

var bodyRemedies = [domain.BodyCount][]string{
	domain.Sun:     {"Offer water to the rising Sun", "Recite the Aditya Hridayam on Sundays"},
	domain.Moon:    {"Keep Monday fasts", "Chant Om Som Somaya Namah"},
	domain.Mars:    {"Recite the Hanuman Chalisa on Tuesdays", "Donate red lentils"},
	domain.Mercury: {"Chant Om Budhaya Namah on Wednesdays", "Feed green fodder to cows"},
	domain.Jupiter: {"Respect teachers and elders", "Donate turmeric or yellow cloth on Thursdays"},
	domain.Venus:   {"Chant Om Shukraya Namah on Fridays", "Donate white sweets"},
	domain.Saturn:  {"Light a sesame oil lamp on Saturdays", "Serve the elderly and labourers"},
	domain.Rahu:    {"Chant the Rahu beej mantra", "Donate to the sick and outcast"},
	domain.Ketu:    {"Worship Lord Ganesha", "Feed stray dogs"},
}

// Assess оценка каждой планеты: достоинство, сила, природа, прогноз и ремедии
func Assess(c *domain.Chart) []domain.PlanetAssessment {
	out := make([]domain.PlanetAssessment, 0, domain.BodyCount)
	for body := domain.Sun; body < domain.BodyCount; body++ {
		p := c.Planet(body)
		strength := Strength(p)
		band := Band(strength)
		nature := FunctionalNature(c.AscendantSign(), body)
		houses := c.HousesRuledBy(body)

		out = append(out, domain.PlanetAssessment{
			Body:        body,
			Dignity:     domain.DignityOf(body, p.Sign.Sign),
			Strength:    strength,
			Band:        band,
			Nature:      nature,
			RuledHouses: houses,
			Prediction:  Prediction(body, nature, band, houses),
			Remedies:    Remedies(body, nature, band),
		})
	}
	return out
}

// Prediction шаблон по ключу природа × сила × категория управляемых домов
func Prediction(body domain.Body, nature domain.FunctionalNature, band domain.StrengthBand, houses []int) string {
	cat := categorize(houses)
	return fmt.Sprintf("%s %s. %s, working mainly %s%s.",
		body, natureText[nature], bandText[band], categoryText[cat], housesSuffix(houses))
}

// Remedies нужны слабым планетам и функциональным злодеям
func Remedies(body domain.Body, nature domain.FunctionalNature, band domain.StrengthBand) []string {
	if band != domain.StrengthWeak && nature != domain.NatureMalefic && nature != domain.NatureMaraka {
		return nil
	}
	return append([]string(nil), bodyRemedies[body]...)
}

// categorize главная категория: кендра и трикона важнее дустханы
func categorize(houses []int) houseCategory {
	if len(houses) == 0 {
		return categoryNone
	}
	for _, h := range houses {
		if domain.IsTrikona(h) {
			return categoryTrikona
		}
	}
	for _, h := range houses {
		if domain.IsKendra(h) {
			return categoryKendra
		}
	}
	for _, h := range houses {
		if domain.IsDusthana(h) {
			return categoryDusthana
		}
	}
	return categoryOther
}

func housesSuffix(houses []int) string {
	if len(houses) == 0 {
		return ""
	}
	parts := make([]string, len(houses))
	for i, h := range houses {
		parts[i] = fmt.Sprint(h)
	}
	return " (rules " + strings.Join(parts, ", ") + ")"
}
