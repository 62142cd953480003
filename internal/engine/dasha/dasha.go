// Package dasha строит шкалу Вимшоттари даша и оценивает силу и природу планет.
package dasha

import (
	"time"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/engine/astrotime"
)

// DefaultHorizonYears горизонт шкалы от рождения
const DefaultHorizonYears = 120

var yearDuration = time.Duration(astrotime.DaysPerYear * 24 * float64(time.Hour))

func yearsToDuration(years float64) time.Duration {
	return time.Duration(years * float64(yearDuration))
}

func sequenceIndex(lord domain.Body) int {
	for i, b := range domain.VimshottariOrder {
		if b == lord {
			return i
		}
	}
	return 0
}

// Calculate шкала на стандартный горизонт 120 лет
func Calculate(c *domain.Chart, now time.Time) *domain.DashaTimeline {
	return CalculateWithHorizon(c, now, DefaultHorizonYears)
}

// CalculateWithHorizon шкала махадаш от первой (частичной) до покрытия горизонта.
// Первая махадаша начинается до рождения на пройденную долю накшатры Луны.
func CalculateWithHorizon(c *domain.Chart, now time.Time, horizonYears int) *domain.DashaTimeline {
	moon := c.MoonNakshatra()
	birth := c.BirthUTC
	startLord := moon.Lord
	elapsed := moon.Fraction
	lordYears := domain.VimshottariYears[startLord]

	timeline := &domain.DashaTimeline{
		BirthNakshatra:  moon.Nakshatra,
		StartLord:       startLord,
		ElapsedFraction: elapsed,
		BalanceYears:    lordYears * (1 - elapsed),
		CalculatedAt:    now,
	}

	horizonEnd := birth.AddDate(horizonYears, 0, 0)
	// после горизонта шкала считается исчерпанной, текущего периода нет
	inTimeline := !now.Before(birth) && now.Before(horizonEnd)

	start := birth.Add(-yearsToDuration(lordYears * elapsed))
	idx := sequenceIndex(startLord)

	for {
		lord := domain.VimshottariOrder[idx%len(domain.VimshottariOrder)]
		years := domain.VimshottariYears[lord]
		end := start.Add(yearsToDuration(years))

		maha := domain.Mahadasha{
			Lord:    lord,
			Start:   start,
			End:     end,
			Years:   years,
			Current: inTimeline && contains(start, end, now),
		}
		maha.Antardashas = antardashas(maha, now)
		timeline.Mahadashas = append(timeline.Mahadashas, maha)

		if !end.Before(horizonEnd) {
			break
		}
		start = end
		idx++
	}

	return timeline
}

// antardashas девять подпериодов от управителя махадаши, длительность D·years/120
func antardashas(maha domain.Mahadasha, now time.Time) []domain.Antardasha {
	out := make([]domain.Antardasha, 0, len(domain.VimshottariOrder))
	idx := sequenceIndex(maha.Lord)
	start := maha.Start

	for i := 0; i < len(domain.VimshottariOrder); i++ {
		sub := domain.VimshottariOrder[(idx+i)%len(domain.VimshottariOrder)]
		years := maha.Years * domain.VimshottariYears[sub] / domain.VimshottariTotalYears
		end := start.Add(yearsToDuration(years))
		if i == len(domain.VimshottariOrder)-1 {
			end = maha.End
		}
		out = append(out, domain.Antardasha{
			Lord:    sub,
			Start:   start,
			End:     end,
			Years:   years,
			Current: maha.Current && contains(start, end, now),
			Quality: AntardashaQuality(maha.Lord, sub),
		})
		start = end
	}
	return out
}

func contains(start, end, t time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
