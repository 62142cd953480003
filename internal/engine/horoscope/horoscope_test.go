package horoscope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

func TestDaily_Deterministic(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for s := domain.Aries; s < domain.SignCount; s++ {
		first := Daily(s, date)
		second := Daily(s, date.Add(17*time.Hour))
		assert.Equal(t, first, second, s.String())
	}
}

func TestDaily_Bounds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 60; d++ {
		date := start.AddDate(0, 0, d)
		for s := domain.Aries; s < domain.SignCount; s++ {
			h := Daily(s, date)
			require.Len(t, h.Areas, len(domain.HoroscopeAreas))
			for _, a := range h.Areas {
				assert.GreaterOrEqual(t, a.Score, minScore)
				assert.LessOrEqual(t, a.Score, maxScore)
				assert.NotEmpty(t, a.Text)
			}
			assert.GreaterOrEqual(t, h.LuckyNumber, 1)
			assert.LessOrEqual(t, h.LuckyNumber, 9)
			assert.Contains(t, luckyColors, h.LuckyColor)
			assert.GreaterOrEqual(t, h.SunHouse, 1)
			assert.LessOrEqual(t, h.MoonHouse, 12)
		}
	}
}

func TestDaily_SunTransitHouse(t *testing.T) {
	// 1 мая 2024 Солнце в сидерическом Овне
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, Daily(domain.Aries, date).SunHouse)
	assert.Equal(t, 12, Daily(domain.Taurus, date).SunHouse)
	assert.Equal(t, 2, Daily(domain.Pisces, date).SunHouse)

	houses := map[int]bool{}
	for s := domain.Aries; s < domain.SignCount; s++ {
		houses[Daily(s, date).SunHouse] = true
	}
	assert.Len(t, houses, 12)
}

func TestDaily_SeedDependsOnDate(t *testing.T) {
	a := Daily(domain.Leo, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	b := Daily(domain.Leo, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-05-01", a.Date)
	assert.Equal(t, "2024-05-02", b.Date)

	assert.NotEqual(t, newRand(domain.Leo, a.Date, "love").Uint64(), newRand(domain.Leo, b.Date, "love").Uint64())
	assert.NotEqual(t, newRand(domain.Leo, a.Date, "love").Uint64(), newRand(domain.Leo, a.Date, "career").Uint64())
	assert.Equal(t, newRand(domain.Leo, a.Date, "love").Uint64(), newRand(domain.Leo, a.Date, "love").Uint64())
}

func TestMonthly(t *testing.T) {
	h := Monthly(domain.Cancer, 2024, time.May)
	assert.Equal(t, domain.PeriodMonthly, h.Period)
	assert.Equal(t, "2024-05", h.Date)
	assert.Contains(t, h.Summary, "month")
	assert.Equal(t, h, Monthly(domain.Cancer, 2024, time.May))

	daily := Daily(domain.Cancer, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, daily.SunHouse, h.SunHouse)
	assert.Equal(t, daily.MoonHouse, h.MoonHouse)
}

func TestOverallIsAreaAverage(t *testing.T) {
	h := Daily(domain.Virgo, time.Date(2024, 8, 9, 0, 0, 0, 0, time.UTC))
	sum := 0
	for _, a := range h.Areas {
		sum += a.Score
	}
	assert.InDelta(t, float64(sum)/4, float64(h.Overall), 0.5)
	assert.Contains(t, h.Summary, "Virgo")
}
