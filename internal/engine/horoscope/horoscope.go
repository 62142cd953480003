// Package horoscope генерирует ежедневные и ежемесячные гороскопы по знаку.
// Баллы опираются на транзит Солнца и Луны от знака, текст детерминированно выбирается
// генератором, засеянным хешем знака, даты и сферы.
package horoscope

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/engine/astrotime"
	"github.com/admin/astro-services/jyotish/internal/engine/chart"
	"github.com/admin/astro-services/jyotish/internal/engine/ephemeris"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"

	minScore = 10
	maxScore = 100
	// jitter разброс случайной составляющей балла
	jitter = 12
)

// Вес транзита по дому от знака (гочара)
var (
	sunTransit  = [13]int{0, -5, -5, 10, -5, -5, 10, -10, -10, -5, 15, 15, -10}
	moonTransit = [13]int{0, 10, -5, 10, -5, -5, 10, 10, -15, -5, 10, 15, -15}
)

// areaHouse дом, особенно влияющий на сферу
var areaHouse = map[string]int{
	"love":    7,
	"career":  10,
	"health":  6,
	"finance": 2,
}

var areaTexts = map[string][3][]string{
	"love": {
		{"Tension with a partner needs a calm word", "Avoid testing feelings today", "Old misunderstandings may resurface"},
		{"Steady warmth in close relationships", "A good moment to listen more than talk", "Small gestures matter more than promises"},
		{"Affection flows easily and bonds deepen", "A meeting may turn into something lasting", "Shared plans bring you closer"},
	},
	"career": {
		{"Delays at work test your patience", "Keep a low profile with superiors", "Double-check documents before signing"},
		{"Routine work moves forward steadily", "Colleagues respond well to clear requests", "Finish pending tasks before starting new ones"},
		{"Recognition for past effort arrives", "A strong day to pitch ideas", "Leadership comes naturally"},
	},
	"health": {
		{"Energy dips, so rest early", "Watch digestion and avoid heavy food", "Stress shows in the body, slow down"},
		{"Balanced energy through the day", "A walk restores focus", "Keep a regular sleep rhythm"},
		{"Vitality is high and recovery quick", "A great day to start a new practice", "Body and mind feel in sync"},
	},
	"finance": {
		{"Postpone large purchases", "Unexpected expenses are possible", "Do not lend money today"},
		{"Income and spending stay balanced", "Review the budget calmly", "Small savings add up"},
		{"Gains from past investments appear", "A favourable day for negotiations", "Money comes through contacts"},
	},
}

var luckyColors = []string{
	"red", "orange", "yellow", "green", "blue", "indigo", "violet",
	"white", "gold", "silver", "pink", "maroon",
}

// Daily гороскоп знака на дату (учитывается только дата)
func Daily(sign domain.Sign, date time.Time) *domain.Horoscope {
	year, month, day := date.Date()
	key := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
	jd := astrotime.ToJulianDay(year, int(month), day, 12, 0, 0, 0)
	return generate(sign, domain.PeriodDaily, key, jd)
}

// Monthly гороскоп знака на месяц; транзиты берутся на 15-е число
func Monthly(sign domain.Sign, year int, month time.Month) *domain.Horoscope {
	key := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(MonthLayout)
	jd := astrotime.ToJulianDay(year, int(month), 15, 12, 0, 0, 0)
	return generate(sign, domain.PeriodMonthly, key, jd)
}

func generate(sign domain.Sign, period domain.HoroscopePeriod, key string, jd float64) *domain.Horoscope {
	ayanamsa := astrotime.Ayanamsa(jd)
	sunSign := chart.SignOf(chart.SiderealLongitude(ephemeris.SunLongitude(jd), ayanamsa)).Sign
	moonSign := chart.SignOf(chart.SiderealLongitude(ephemeris.MoonLongitude(jd), ayanamsa)).Sign

	sunHouse := sign.DistanceTo(sunSign)
	moonHouse := sign.DistanceTo(moonSign)
	base := 55 + sunTransit[sunHouse] + moonTransit[moonHouse]

	h := &domain.Horoscope{
		Sign:      sign,
		Period:    period,
		Date:      key,
		SunHouse:  sunHouse,
		MoonHouse: moonHouse,
		Areas:     make([]domain.AreaScore, 0, len(domain.HoroscopeAreas)),
	}

	total := 0
	for _, area := range domain.HoroscopeAreas {
		rng := newRand(sign, key, area)
		score := base + rng.IntN(2*jitter+1) - jitter
		if moonHouse == areaHouse[area] || sunHouse == areaHouse[area] {
			score += 8
		}
		score = clamp(score)
		total += score

		texts := areaTexts[area][level(score)]
		h.Areas = append(h.Areas, domain.AreaScore{
			Area:  area,
			Score: score,
			Text:  texts[rng.IntN(len(texts))],
		})
	}
	h.Overall = int(math.Round(float64(total) / float64(len(domain.HoroscopeAreas))))

	lucky := newRand(sign, key, "lucky")
	h.LuckyNumber = lucky.IntN(9) + 1
	h.LuckyColor = luckyColors[lucky.IntN(len(luckyColors))]
	h.Summary = summary(h)

	return h
}

// newRand PCG, засеянный FNV-1a от sign|key|area
func newRand(sign domain.Sign, key, area string) *rand.Rand {
	hash := fnv.New64a()
	_, _ = fmt.Fprintf(hash, "%s|%s|%s", sign, key, area)
	seed := hash.Sum64()
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

func level(score int) int {
	switch {
	case score >= 65:
		return 2
	case score >= 45:
		return 1
	default:
		return 0
	}
}

func clamp(score int) int {
	return max(minScore, min(maxScore, score))
}

func summary(h *domain.Horoscope) string {
	var tone string
	switch level(h.Overall) {
	case 2:
		tone = "a favourable"
	case 1:
		tone = "a balanced"
	default:
		tone = "a demanding"
	}
	span := "day"
	if h.Period == domain.PeriodMonthly {
		span = "month"
	}
	return fmt.Sprintf("%s can expect %s %s with the Sun transiting house %d and the Moon house %d.",
		h.Sign, tone, span, h.SunHouse, h.MoonHouse)
}
