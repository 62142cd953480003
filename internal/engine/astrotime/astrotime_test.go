package astrotime

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJulianDay(t *testing.T) {
	cases := []struct {
		name   string
		y, m   int
		d, h   int
		min    int
		offset float64
		want   float64
	}{
		{"J2000 noon UT", 2000, 1, 1, 12, 0, 0, 2451545.0},
		{"J2000 from India", 2000, 1, 1, 17, 30, 5.5, 2451545.0},
		{"Meeus 7.a", 1957, 10, 4, 19, 26, -0, 2436116.30972},
		{"midnight", 1987, 4, 10, 0, 0, 0, 2446895.5},
		{"west of Greenwich", 1999, 12, 31, 19, 0, -5, 2451544.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ToJulianDay(c.y, c.m, c.d, c.h, c.min, 0, c.offset)
			assert.InDelta(t, c.want, got, 1e-4)
		})
	}
}

func TestToTime_RoundTrip(t *testing.T) {
	moments := []time.Time{
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(1985, 7, 14, 3, 45, 30, 0, time.UTC),
		time.Date(2031, 2, 28, 23, 59, 59, 0, time.UTC),
	}
	for _, m := range moments {
		got := ToTime(FromTime(m))
		assert.WithinDuration(t, m, got, time.Millisecond, m.String())
	}
}

func TestAyanamsa_MonotonicAndDeterministic(t *testing.T) {
	assert.InDelta(t, 23.853, Ayanamsa(J2000), 1e-9)

	prev := Ayanamsa(J2000 - 100*DaysPerYear)
	for years := -99; years <= 100; years++ {
		cur := Ayanamsa(J2000 + float64(years)*DaysPerYear)
		require.Greater(t, cur, prev)
		prev = cur
	}

	// примерно 0.01397° в год
	perYear := Ayanamsa(J2000+DaysPerYear) - Ayanamsa(J2000)
	assert.InDelta(t, 0.01397, perYear, 1e-4)

	jd := 2460000.123
	assert.Equal(t, Ayanamsa(jd), Ayanamsa(jd))
}

func TestMeanObliquity_Meeus22a(t *testing.T) {
	// 1987-04-10 0h TD: 23°26′27.407″
	got := MeanObliquity(2446895.5)
	assert.InDelta(t, 23+26.0/60+27.407/3600, got, 1e-5)
}

func TestGreenwichSiderealTime_Meeus12a(t *testing.T) {
	// 1987-04-10 0h UT: 13h10m46.3668s
	want := (13 + 10.0/60 + 46.3668/3600) * 15
	assert.InDelta(t, want, GreenwichSiderealTime(2446895.5), 1e-4)
}

func TestLocalSiderealTime_AddsEastLongitude(t *testing.T) {
	jd := 2451545.0
	gst := GreenwichSiderealTime(jd)
	assert.InDelta(t, Normalize(gst+77.2), LocalSiderealTime(jd, 77.2), 1e-9)
	assert.InDelta(t, Normalize(gst-74.0), LocalSiderealTime(jd, -74.0), 1e-9)
}

func TestNormalize(t *testing.T) {
	cases := map[float64]float64{
		0:      0,
		360:    0,
		720.5:  0.5,
		-30:    330,
		-360:   0,
		359.99: 359.99,
	}
	for in, want := range cases {
		assert.InDelta(t, want, Normalize(in), 1e-9, "normalize(%v)", in)
	}

	got := Normalize(math.Copysign(0, -1))
	assert.False(t, math.Signbit(got))

	got = Normalize(-1e-17)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, 360.0)
}

func TestAngleDiff(t *testing.T) {
	assert.InDelta(t, 20.0, AngleDiff(10, 350), 1e-9)
	assert.InDelta(t, -20.0, AngleDiff(350, 10), 1e-9)
	assert.InDelta(t, 180.0, AngleDiff(180, 0), 1e-9)
}
