package domain

import (
	"fmt"
	"strings"
)

// Body небесное тело (граха). Порядок фиксирован, все таблицы индексируются по нему
type Body int

const (
	Sun Body = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu

	BodyCount
)

var bodyNames = [BodyCount]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu",
}

// AllBodies возвращает все тела в каноническом порядке
func AllBodies() []Body {
	bodies := make([]Body, 0, BodyCount)
	for b := Sun; b < BodyCount; b++ {
		bodies = append(bodies, b)
	}
	return bodies
}

func (b Body) String() string {
	if !b.IsValid() {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

func (b Body) IsValid() bool {
	return b >= Sun && b < BodyCount
}

// IsNode true для лунных узлов Раху и Кету
func (b Body) IsNode() bool {
	return b == Rahu || b == Ketu
}

// IsLuminary true для Солнца и Луны
func (b Body) IsLuminary() bool {
	return b == Sun || b == Moon
}

func ParseBody(s string) (Body, error) {
	for b := Sun; b < BodyCount; b++ {
		if strings.EqualFold(bodyNames[b], s) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown body: %q", s)
}

func (b Body) MarshalText() ([]byte, error) {
	if !b.IsValid() {
		return nil, fmt.Errorf("invalid body: %d", int(b))
	}
	return []byte(bodyNames[b]), nil
}

func (b *Body) UnmarshalText(text []byte) error {
	parsed, err := ParseBody(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
