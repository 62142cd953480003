package yoga

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/engine/astrotime"
	"github.com/admin/astro-services/jyotish/internal/engine/chart"
)

// baseSigns карта с лагной Овен, в которой не срабатывает ни одно правило
func baseSigns() map[domain.Body]domain.Sign {
	return map[domain.Body]domain.Sign{
		domain.Sun:     domain.Aquarius,
		domain.Moon:    domain.Taurus,
		domain.Mars:    domain.Leo,
		domain.Mercury: domain.Capricorn,
		domain.Jupiter: domain.Libra,
		domain.Venus:   domain.Gemini,
		domain.Saturn:  domain.Aries,
		domain.Rahu:    domain.Gemini,
		domain.Ketu:    domain.Sagittarius,
	}
}

func buildChart(asc domain.Sign, signs map[domain.Body]domain.Sign) *domain.Chart {
	ascLon := float64(asc) * domain.SignSpan
	c := &domain.Chart{}
	c.Ascendant = domain.AscendantPoint{Longitude: ascLon, Sign: chart.SignOf(ascLon)}
	for _, b := range domain.AllBodies() {
		lon := float64(signs[b])*domain.SignSpan + 15
		if b == domain.Ketu {
			lon = astrotime.Normalize(c.Planets[domain.Rahu].Longitude + 180)
		}
		c.Planets[b] = domain.Planet{
			Body:      b,
			Longitude: lon,
			Sign:      chart.SignOf(lon),
			Nakshatra: chart.NakshatraOf(lon),
			House:     chart.HouseOf(lon, ascLon),
		}
	}
	return c
}

func with(overrides map[domain.Body]domain.Sign) *domain.Chart {
	signs := baseSigns()
	for b, s := range overrides {
		signs[b] = s
	}
	return buildChart(domain.Aries, signs)
}

func yogaNames(yogas []domain.Yoga) []string {
	names := make([]string, 0, len(yogas))
	for _, y := range yogas {
		names = append(names, y.Name)
	}
	return names
}

func findDosha(doshas []domain.Dosha, name string) (domain.Dosha, bool) {
	for _, d := range doshas {
		if d.Name == name {
			return d, true
		}
	}
	return domain.Dosha{}, false
}

func TestBaseChartHasNoCombinations(t *testing.T) {
	c := with(nil)
	assert.Empty(t, Detect(c))
	assert.Empty(t, DetectDoshas(c))
}

func TestDetect_Yogas(t *testing.T) {
	cases := []struct {
		name      string
		overrides map[domain.Body]domain.Sign
		want      []string
	}{
		{"gajakesari with chandra-mangala", map[domain.Body]domain.Sign{domain.Moon: domain.Leo},
			[]string{"Gajakesari Yoga", "Chandra-Mangala Yoga"}},
		{"budhaditya", map[domain.Body]domain.Sign{domain.Mercury: domain.Aquarius},
			[]string{"Budhaditya Yoga"}},
		{"hamsa", map[domain.Body]domain.Sign{domain.Jupiter: domain.Cancer},
			[]string{"Hamsa Yoga"}},
		{"shasha", map[domain.Body]domain.Sign{domain.Saturn: domain.Capricorn},
			[]string{"Shasha Yoga"}},
		{"raja", map[domain.Body]domain.Sign{domain.Sun: domain.Aries},
			[]string{"Raja Yoga"}},
		{"dhana", map[domain.Body]domain.Sign{domain.Venus: domain.Aries},
			[]string{"Dhana Yoga"}},
		{"harsha viparita", map[domain.Body]domain.Sign{domain.Mercury: domain.Virgo},
			[]string{"Harsha Viparita Raja Yoga"}},
		{"adhi", map[domain.Body]domain.Sign{domain.Mercury: domain.Sagittarius},
			[]string{"Adhi Yoga"}},
		{"kemadruma", map[domain.Body]domain.Sign{domain.Venus: domain.Cancer, domain.Saturn: domain.Capricorn},
			[]string{"Kemadruma Yoga", "Shasha Yoga"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			names := yogaNames(Detect(with(tc.overrides)))
			assert.ElementsMatch(t, tc.want, names)
		})
	}
}

func TestRajaYogaReportsBothLords(t *testing.T) {
	yogas := Detect(with(map[domain.Body]domain.Sign{domain.Sun: domain.Aries}))
	require.Len(t, yogas, 1)
	assert.ElementsMatch(t, []domain.Body{domain.Saturn, domain.Sun}, yogas[0].Planets)
	assert.Equal(t, []int{1}, yogas[0].Houses)
	assert.Equal(t, domain.YogaCategoryRaja, yogas[0].Category)
}

func TestMangalDoshaSeverity(t *testing.T) {
	cases := []struct {
		sign domain.Sign
		want domain.DoshaSeverity
	}{
		{domain.Libra, domain.SeverityHigh},
		{domain.Cancer, domain.SeverityModerate},
		{domain.Scorpio, domain.SeverityMild},
		{domain.Aries, domain.SeverityMild},
	}
	for _, tc := range cases {
		d, ok := findDosha(DetectDoshas(with(map[domain.Body]domain.Sign{domain.Mars: tc.sign})), "Mangal Dosha")
		require.True(t, ok, tc.sign.String())
		assert.Equal(t, tc.want, d.Severity, tc.sign.String())
		assert.NotEmpty(t, d.Remedies)
	}

	_, ok := findDosha(DetectDoshas(with(map[domain.Body]domain.Sign{domain.Mars: domain.Virgo})), "Mangal Dosha")
	assert.False(t, ok)
}

func TestKaalSarpDosha(t *testing.T) {
	between := map[domain.Body]domain.Sign{
		domain.Sun: domain.Cancer, domain.Moon: domain.Leo, domain.Mars: domain.Virgo,
		domain.Mercury: domain.Cancer, domain.Jupiter: domain.Libra, domain.Venus: domain.Leo,
		domain.Saturn: domain.Scorpio,
	}
	d, ok := findDosha(DetectDoshas(with(between)), "Kaal Sarp Dosha")
	require.True(t, ok)
	assert.Equal(t, domain.SeverityHigh, d.Severity)
	assert.Contains(t, d.Description, "between Rahu and Ketu")

	opposite := map[domain.Body]domain.Sign{
		domain.Sun: domain.Capricorn, domain.Moon: domain.Aquarius, domain.Mars: domain.Pisces,
		domain.Mercury: domain.Aries, domain.Jupiter: domain.Taurus, domain.Venus: domain.Capricorn,
		domain.Saturn: domain.Aquarius,
	}
	d, ok = findDosha(DetectDoshas(with(opposite)), "Kaal Sarp Dosha")
	require.True(t, ok)
	assert.Contains(t, d.Description, "between Ketu and Rahu")
}

func TestNodeDoshas(t *testing.T) {
	pitra, ok := findDosha(DetectDoshas(with(map[domain.Body]domain.Sign{domain.Sun: domain.Gemini})), "Pitra Dosha")
	require.True(t, ok)
	assert.Equal(t, []domain.Body{domain.Sun, domain.Rahu}, pitra.Planets)

	grahan, ok := findDosha(DetectDoshas(with(map[domain.Body]domain.Sign{domain.Moon: domain.Sagittarius})), "Grahan Dosha")
	require.True(t, ok)
	assert.Equal(t, []domain.Body{domain.Moon, domain.Ketu}, grahan.Planets)

	_, ok = findDosha(DetectDoshas(with(map[domain.Body]domain.Sign{domain.Jupiter: domain.Gemini})), "Guru Chandal Dosha")
	assert.True(t, ok)
}

func TestRulesDoNotMutateChart(t *testing.T) {
	c := with(map[domain.Body]domain.Sign{domain.Moon: domain.Leo, domain.Mars: domain.Libra})
	before := *c

	Detect(c)
	DetectDoshas(c)

	assert.Equal(t, before, *c)
}

func TestRulesAreOrderInsensitive(t *testing.T) {
	c := with(map[domain.Body]domain.Sign{
		domain.Moon: domain.Leo, domain.Sun: domain.Aries, domain.Mercury: domain.Virgo,
	})

	forward := Detect(c)
	var backward []domain.Yoga
	for _, rule := range slices.Backward(yogaRules) {
		backward = append(backward, rule(c)...)
	}
	assert.ElementsMatch(t, yogaNames(forward), yogaNames(backward))
}
