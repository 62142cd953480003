package domain

import (
	"fmt"
	"strings"
)

// Nakshatra лунная стоянка, 0 = Ашвини
type Nakshatra int

const (
	NakshatraCount = 27
	// NakshatraSpan 13°20′
	NakshatraSpan = 360.0 / NakshatraCount
	PadaSpan      = NakshatraSpan / 4
)

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

func (n Nakshatra) String() string {
	if !n.IsValid() {
		return fmt.Sprintf("Nakshatra(%d)", int(n))
	}
	return nakshatraNames[n]
}

func (n Nakshatra) IsValid() bool {
	return n >= 0 && n < NakshatraCount
}

// Lord управитель накшатры: последовательность Вимшоттари повторяется трижды
func (n Nakshatra) Lord() Body {
	return VimshottariOrder[int(n)%len(VimshottariOrder)]
}

func ParseNakshatra(s string) (Nakshatra, error) {
	for i, name := range nakshatraNames {
		if strings.EqualFold(name, s) {
			return Nakshatra(i), nil
		}
	}
	return 0, fmt.Errorf("unknown nakshatra: %q", s)
}

func (n Nakshatra) MarshalText() ([]byte, error) {
	if !n.IsValid() {
		return nil, fmt.Errorf("invalid nakshatra: %d", int(n))
	}
	return []byte(nakshatraNames[n]), nil
}

func (n *Nakshatra) UnmarshalText(text []byte) error {
	parsed, err := ParseNakshatra(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// NakshatraPlacement положение долготы внутри накшатры
type NakshatraPlacement struct {
	Nakshatra Nakshatra `json:"nakshatra"`
	Pada      int       `json:"pada"`
	Lord      Body      `json:"lord"`
	// Fraction пройденная доля накшатры, [0,1)
	Fraction float64 `json:"fraction"`
}
