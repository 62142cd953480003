package domain

import "time"

type Paksha string

const (
	PakshaShukla  Paksha = "shukla"
	PakshaKrishna Paksha = "krishna"
)

type SunStatus string

const (
	SunNormal     SunStatus = "normal"
	SunPolarDay   SunStatus = "polar_day"
	SunPolarNight SunStatus = "polar_night"
)

type TithiInfo struct {
	// Index 1..30
	Index   int       `json:"index"`
	Name    string    `json:"name"`
	Paksha  Paksha    `json:"paksha"`
	EndTime time.Time `json:"end_time"`
}

type NakshatraInfo struct {
	Nakshatra Nakshatra `json:"nakshatra"`
	Pada      int       `json:"pada"`
	Lord      Body      `json:"lord"`
	EndTime   time.Time `json:"end_time"`
}

type PanchangYoga struct {
	// Index 0..26
	Index   int       `json:"index"`
	Name    string    `json:"name"`
	EndTime time.Time `json:"end_time"`
}

type KaranaInfo struct {
	// Index 0..59 внутри лунного месяца
	Index   int       `json:"index"`
	Name    string    `json:"name"`
	EndTime time.Time `json:"end_time"`
}

// TimeWindow интервал дня (Раху Кал, Абхиджит и т.п.)
type TimeWindow struct {
	Name       string    `json:"name"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Auspicious bool      `json:"auspicious"`
}

type ChoghadiyaQuality string

const (
	ChoghadiyaGood    ChoghadiyaQuality = "good"
	ChoghadiyaNeutral ChoghadiyaQuality = "neutral"
	ChoghadiyaBad     ChoghadiyaQuality = "bad"
)

type Choghadiya struct {
	Name    string            `json:"name"`
	Quality ChoghadiyaQuality `json:"quality"`
	Start   time.Time         `json:"start"`
	End     time.Time         `json:"end"`
}

// PanchangDay панчанга на дату и место; при полярном дне/ночи SunDefined=false и окна пусты
type PanchangDay struct {
	Date      string  `json:"date"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	UTCOffset float64 `json:"utc_offset"`
	Weekday   string  `json:"weekday"`
	Vara      string  `json:"vara"`

	Tithi     TithiInfo     `json:"tithi"`
	Nakshatra NakshatraInfo `json:"nakshatra"`
	Yoga      PanchangYoga  `json:"yoga"`
	Karana    KaranaInfo    `json:"karana"`

	SunDefined bool       `json:"sun_defined"`
	SunStatus  SunStatus  `json:"sun_status"`
	Sunrise    *time.Time `json:"sunrise,omitempty"`
	Sunset     *time.Time `json:"sunset,omitempty"`

	Auspicious   []TimeWindow `json:"auspicious"`
	Inauspicious []TimeWindow `json:"inauspicious"`
	Choghadiya   []Choghadiya `json:"choghadiya"`
}
