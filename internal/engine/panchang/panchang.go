// Package panchang считает ведический календарный день: титхи, накшатру, йогу, карану,
// восход и заход, благоприятные и неблагоприятные окна и чогхадия.
package panchang

import (
	"errors"
	"time"

	"github.com/admin/astro-services/jyotish/internal/domain"
	"github.com/admin/astro-services/jyotish/internal/engine/astrotime"
	"github.com/admin/astro-services/jyotish/internal/engine/chart"
)

// DateLayout формат даты панчанги
const DateLayout = "2006-01-02"

// For панчанга на местную гражданскую дату date (учитываются только год, месяц и день).
// Элементы берутся на момент восхода, а без восхода (полярный день или ночь) на местный полдень.
func For(date time.Time, latitude, longitude, utcOffset float64) (*domain.PanchangDay, error) {
	if err := domain.ValidateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	if err := domain.ValidateUTCOffset(utcOffset); err != nil {
		return nil, err
	}

	zone := domain.FixedZone(utcOffset)
	year, month, day := date.Date()
	civil := time.Date(year, month, day, 0, 0, 0, 0, zone)
	localNoon := astrotime.ToJulianDay(year, int(month), day, 12, 0, 0, utcOffset)

	out := &domain.PanchangDay{
		Date:         civil.Format(DateLayout),
		Latitude:     latitude,
		Longitude:    longitude,
		UTCOffset:    utcOffset,
		Weekday:      civil.Weekday().String(),
		Vara:         varaNames[civil.Weekday()],
		SunStatus:    domain.SunNormal,
		Auspicious:   []domain.TimeWindow{},
		Inauspicious: []domain.TimeWindow{},
		Choghadiya:   []domain.Choghadiya{},
	}

	reference := localNoon
	sun, err := SunriseSunset(localNoon, latitude, longitude)
	switch {
	case errors.Is(err, ErrPolarDay):
		out.SunStatus = domain.SunPolarDay
	case errors.Is(err, ErrPolarNight):
		out.SunStatus = domain.SunPolarNight
	case err == nil:
		reference = sun.Sunrise
		out.SunDefined = true
	}

	toLocal := func(jd float64) time.Time {
		return astrotime.ToTime(jd).In(zone)
	}

	elongation := lunarElongation(reference)
	tithi := TithiIndex(elongation)
	out.Tithi = domain.TithiInfo{
		Index:   tithi,
		Name:    TithiName(tithi),
		Paksha:  PakshaOf(tithi),
		EndTime: toLocal(crossing(lunarElongation, reference, TithiSpan)),
	}

	karana := KaranaIndex(elongation)
	out.Karana = domain.KaranaInfo{
		Index:   karana,
		Name:    KaranaName(karana),
		EndTime: toLocal(crossing(lunarElongation, reference, KaranaSpan)),
	}

	nakshatra := chart.NakshatraOf(siderealMoon(reference))
	out.Nakshatra = domain.NakshatraInfo{
		Nakshatra: nakshatra.Nakshatra,
		Pada:      nakshatra.Pada,
		Lord:      nakshatra.Lord,
		EndTime:   toLocal(crossing(siderealMoon, reference, domain.NakshatraSpan)),
	}

	yoga := YogaIndex(sunMoonSum(reference))
	out.Yoga = domain.PanchangYoga{
		Index:   yoga,
		Name:    YogaName(yoga),
		EndTime: toLocal(crossing(sunMoonSum, reference, YogaSpan)),
	}

	if !out.SunDefined {
		return out, nil
	}

	sunrise, sunset := toLocal(sun.Sunrise), toLocal(sun.Sunset)
	out.Sunrise, out.Sunset = &sunrise, &sunset

	weekday := civil.Weekday()
	out.Choghadiya = Choghadiyas(sunrise, sunset, weekday)
	out.Inauspicious = Inauspicious(sunrise, sunset, weekday)
	out.Auspicious = Auspicious(sunrise, sunset, out.Choghadiya)

	return out, nil
}
