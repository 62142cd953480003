package domain

import "time"

// ChartReport карта со всеми производными: даши, йоги, доши, оценки планет
type ChartReport struct {
	Chart      *Chart             `json:"chart"`
	Dasha      *DashaTimeline     `json:"dasha"`
	Planets    []PlanetAssessment `json:"planets"`
	Yogas      []Yoga             `json:"yogas"`
	Doshas     []Dosha            `json:"doshas"`
	Context    ChatContext        `json:"context"`
	ComputedAt time.Time          `json:"computed_at"`
}

// ChatContext плоские поля карты для чат-бота
type ChatContext struct {
	Name              string   `json:"name"`
	AscendantSign     string   `json:"ascendant_sign"`
	MoonSign          string   `json:"moon_sign"`
	SunSign           string   `json:"sun_sign"`
	MoonNakshatra     string   `json:"moon_nakshatra"`
	MoonNakshatraPada int      `json:"moon_nakshatra_pada"`
	NakshatraLord     string   `json:"nakshatra_lord"`
	CurrentMahadasha  string   `json:"current_mahadasha,omitempty"`
	CurrentAntardasha string   `json:"current_antardasha,omitempty"`
	Yogas             []string `json:"yogas"`
	Doshas            []string `json:"doshas"`
	ReducedConfidence bool     `json:"reduced_confidence"`
}
