package domain

import "time"

// VimshottariOrder фиксированный цикл управителей периодов
var VimshottariOrder = [9]Body{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// VimshottariYears номинальная длительность махадаши в годах, сумма 120
var VimshottariYears = [BodyCount]float64{
	Sun:     6,
	Moon:    10,
	Mars:    7,
	Mercury: 17,
	Jupiter: 16,
	Venus:   20,
	Saturn:  19,
	Rahu:    18,
	Ketu:    7,
}

const VimshottariTotalYears = 120.0

type Dignity string

const (
	DignityExalted     Dignity = "exalted"
	DignityOwn         Dignity = "own"
	DignityFriend      Dignity = "friend"
	DignityNeutral     Dignity = "neutral"
	DignityEnemy       Dignity = "enemy"
	DignityDebilitated Dignity = "debilitated"
)

type FunctionalNature string

const (
	NatureYogakaraka FunctionalNature = "yogakaraka"
	NatureBenefic    FunctionalNature = "benefic"
	NatureNeutral    FunctionalNature = "neutral"
	NatureMalefic    FunctionalNature = "malefic"
	NatureMaraka     FunctionalNature = "maraka"
)

type StrengthBand string

const (
	StrengthStrong   StrengthBand = "strong"
	StrengthModerate StrengthBand = "moderate"
	StrengthWeak     StrengthBand = "weak"
)

type PeriodQuality string

const (
	QualityExcellent   PeriodQuality = "excellent"
	QualityGood        PeriodQuality = "good"
	QualityMixed       PeriodQuality = "mixed"
	QualityChallenging PeriodQuality = "challenging"
	QualityDifficult   PeriodQuality = "difficult"
)

// PlanetAssessment сила и функциональная природа планеты в карте
type PlanetAssessment struct {
	Body        Body             `json:"body"`
	Dignity     Dignity          `json:"dignity"`
	Strength    float64          `json:"strength"`
	Band        StrengthBand     `json:"band"`
	Nature      FunctionalNature `json:"nature"`
	RuledHouses []int            `json:"ruled_houses"`
	Prediction  string           `json:"prediction"`
	Remedies    []string         `json:"remedies"`
}

type Antardasha struct {
	Lord    Body          `json:"lord"`
	Start   time.Time     `json:"start"`
	End     time.Time     `json:"end"`
	Years   float64       `json:"years"`
	Current bool          `json:"current"`
	Quality PeriodQuality `json:"quality"`
}

type Mahadasha struct {
	Lord  Body      `json:"lord"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// Years номинальная длительность периода
	Years       float64      `json:"years"`
	Current     bool         `json:"current"`
	Antardashas []Antardasha `json:"antardashas"`
}

// DashaTimeline полная шкала Вимшоттари от рождения до горизонта
type DashaTimeline struct {
	BirthNakshatra  Nakshatra   `json:"birth_nakshatra"`
	StartLord       Body        `json:"start_lord"`
	ElapsedFraction float64     `json:"elapsed_fraction"`
	BalanceYears    float64     `json:"balance_years"`
	Mahadashas      []Mahadasha `json:"mahadashas"`
	CalculatedAt    time.Time   `json:"calculated_at"`
}

// Current текущая махадаша и антардаша, если момент внутри шкалы
func (t *DashaTimeline) Current() (*Mahadasha, *Antardasha) {
	for i := range t.Mahadashas {
		maha := &t.Mahadashas[i]
		if !maha.Current {
			continue
		}
		for j := range maha.Antardashas {
			if maha.Antardashas[j].Current {
				return maha, &maha.Antardashas[j]
			}
		}
		return maha, nil
	}
	return nil, nil
}
