package engine

import (
	"github.com/admin/astro-services/jyotish/internal/domain"
)

// ChatContext плоская выжимка отчёта для чат-бота
func ChatContext(report *domain.ChartReport) domain.ChatContext {
	c := report.Chart
	moon := c.MoonNakshatra()

	out := domain.ChatContext{
		Name:              c.Birth.Name,
		AscendantSign:     c.AscendantSign().String(),
		MoonSign:          c.SignOf(domain.Moon).String(),
		SunSign:           c.SignOf(domain.Sun).String(),
		MoonNakshatra:     moon.Nakshatra.String(),
		MoonNakshatraPada: moon.Pada,
		NakshatraLord:     moon.Lord.String(),
		Yogas:             make([]string, 0, len(report.Yogas)),
		Doshas:            make([]string, 0, len(report.Doshas)),
		ReducedConfidence: c.ReducedConfidence,
	}

	if report.Dasha != nil {
		maha, antar := report.Dasha.Current()
		if maha != nil {
			out.CurrentMahadasha = maha.Lord.String()
		}
		if antar != nil {
			out.CurrentAntardasha = antar.Lord.String()
		}
	}

	for _, y := range report.Yogas {
		out.Yogas = append(out.Yogas, y.Name)
	}
	for _, d := range report.Doshas {
		out.Doshas = append(out.Doshas, d.Name)
	}
	return out
}
