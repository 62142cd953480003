package domain

import (
	"fmt"
	"strings"
)

// Sign знак зодиака (раши), 0 = Овен
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces

	SignCount
)

// SignSpan протяжённость знака в градусах
const SignSpan = 30.0

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// signLords управитель каждого знака
var signLords = [SignCount]Body{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

func AllSigns() []Sign {
	signs := make([]Sign, 0, SignCount)
	for s := Aries; s < SignCount; s++ {
		signs = append(signs, s)
	}
	return signs
}

func (s Sign) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

func (s Sign) IsValid() bool {
	return s >= Aries && s < SignCount
}

// Lord управитель знака
func (s Sign) Lord() Body {
	return signLords[s.Normalize()]
}

// Normalize приводит произвольный индекс к 0..11
func (s Sign) Normalize() Sign {
	n := int(s) % int(SignCount)
	if n < 0 {
		n += int(SignCount)
	}
	return Sign(n)
}

// Add сдвигает знак по кругу
func (s Sign) Add(n int) Sign {
	return Sign(int(s) + n).Normalize()
}

// DistanceTo число знаков от s до other, считая сам s за первый (1..12)
func (s Sign) DistanceTo(other Sign) int {
	return int(other.Normalize()-s.Normalize()+SignCount)%int(SignCount) + 1
}

func ParseSign(str string) (Sign, error) {
	for s := Aries; s < SignCount; s++ {
		if strings.EqualFold(signNames[s], str) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown sign: %q", str)
}

func (s Sign) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid sign: %d", int(s))
	}
	return []byte(signNames[s]), nil
}

func (s *Sign) UnmarshalText(text []byte) error {
	parsed, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SignPlacement положение долготы внутри знака
type SignPlacement struct {
	Sign         Sign    `json:"sign"`
	DegreeInSign float64 `json:"degree_in_sign"`
	Degree       int     `json:"degree"`
	Minute       int     `json:"minute"`
}
