package domain

type HoroscopePeriod string

const (
	PeriodDaily   HoroscopePeriod = "daily"
	PeriodMonthly HoroscopePeriod = "monthly"
)

// HoroscopeAreas сферы жизни, для каждой генерируется свой балл
var HoroscopeAreas = []string{"love", "career", "health", "finance"}

type AreaScore struct {
	Area  string `json:"area"`
	Score int    `json:"score"`
	Text  string `json:"text"`
}

type Horoscope struct {
	Sign        Sign            `json:"sign"`
	Period      HoroscopePeriod `json:"period"`
	Date        string          `json:"date"`
	SunHouse    int             `json:"sun_house"`
	MoonHouse   int             `json:"moon_house"`
	Overall     int             `json:"overall"`
	Areas       []AreaScore     `json:"areas"`
	LuckyNumber int             `json:"lucky_number"`
	LuckyColor  string          `json:"lucky_color"`
	Summary     string          `json:"summary"`
}
