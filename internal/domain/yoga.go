package domain

type YogaCategory string

const (
	YogaCategoryRaja        YogaCategory = "raja"
	YogaCategoryDhana       YogaCategory = "dhana"
	YogaCategoryMahapurusha YogaCategory = "mahapurusha"
	YogaCategoryLunar       YogaCategory = "lunar"
	YogaCategorySolar       YogaCategory = "solar"
)

// Yoga благоприятное сочетание, найденное в карте
type Yoga struct {
	Name        string       `json:"name"`
	Category    YogaCategory `json:"category"`
	Planets     []Body       `json:"planets"`
	Houses      []int        `json:"houses"`
	Description string       `json:"description"`
}

type DoshaSeverity string

const (
	SeverityMild     DoshaSeverity = "mild"
	SeverityModerate DoshaSeverity = "moderate"
	SeverityHigh     DoshaSeverity = "high"
)

// Dosha неблагоприятное сочетание
type Dosha struct {
	Name        string        `json:"name"`
	Severity    DoshaSeverity `json:"severity"`
	Planets     []Body        `json:"planets"`
	Houses      []int         `json:"houses"`
	Description string        `json:"description"`
	Remedies    []string      `json:"remedies"`
}
