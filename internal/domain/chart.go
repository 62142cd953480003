package domain

import "time"

// HouseCount число домов в равнодомной системе
const HouseCount = 12

// Planet положение одного тела в карте
type Planet struct {
	Body Body `json:"body"`
	// Longitude сидерическая долгота, [0,360)
	Longitude float64 `json:"longitude"`
	// TropicalLongitude тропическая долгота, [0,360)
	TropicalLongitude float64            `json:"tropical_longitude"`
	Sign              SignPlacement      `json:"sign"`
	Nakshatra         NakshatraPlacement `json:"nakshatra"`
	House             int                `json:"house"`
	Retrograde        bool               `json:"retrograde"`
	Combust           bool               `json:"combust"`
}

// AscendantPoint восходящий градус (лагна)
type AscendantPoint struct {
	Longitude float64            `json:"longitude"`
	Sign      SignPlacement      `json:"sign"`
	Nakshatra NakshatraPlacement `json:"nakshatra"`
}

// Chart неизменяемая сидерическая карта
type Chart struct {
	Birth     BirthData               `json:"birth"`
	JulianDay float64                 `json:"julian_day"`
	Ayanamsa  float64                 `json:"ayanamsa"`
	Ascendant AscendantPoint          `json:"ascendant"`
	Planets   [BodyCount]Planet       `json:"planets"`
	Cusps     [HouseCount]float64     `json:"cusps"`
	// ReducedConfidence время рождения неизвестно и было подставлено по умолчанию,
	// лагна и дома недостоверны
	ReducedConfidence bool      `json:"reduced_confidence"`
	BirthUTC          time.Time `json:"birth_utc"`
}

func (c *Chart) Planet(b Body) Planet {
	return c.Planets[b]
}

func (c *Chart) HouseOf(b Body) int {
	return c.Planets[b].House
}

func (c *Chart) SignOf(b Body) Sign {
	return c.Planets[b].Sign.Sign
}

func (c *Chart) AscendantSign() Sign {
	return c.Ascendant.Sign.Sign
}

func (c *Chart) MoonNakshatra() NakshatraPlacement {
	return c.Planets[Moon].Nakshatra
}

// HouseLord управитель дома для лагны этой карты
func (c *Chart) HouseLord(house int) Body {
	return c.AscendantSign().Add(house - 1).Lord()
}

// HousesRuledBy дома, которыми управляет тело при данной лагне (по возрастанию)
func (c *Chart) HousesRuledBy(b Body) []int {
	return HousesRuled(c.AscendantSign(), b)
}

// HousesRuled дома, которые управляются телом b при лагне asc
func HousesRuled(asc Sign, b Body) []int {
	var houses []int
	for h := 1; h <= HouseCount; h++ {
		if asc.Add(h-1).Lord() == b {
			houses = append(houses, h)
		}
	}
	return houses
}

// Категории домов
func IsKendra(house int) bool {
	return house == 1 || house == 4 || house == 7 || house == 10
}

func IsTrikona(house int) bool {
	return house == 1 || house == 5 || house == 9
}

func IsDusthana(house int) bool {
	return house == 6 || house == 8 || house == 12
}
