package astrotime

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func Rad(deg float64) float64 { return deg * degToRad }
func Deg(rad float64) float64 { return rad * radToDeg }

func Sin(deg float64) float64 { return math.Sin(deg * degToRad) }
func Cos(deg float64) float64 { return math.Cos(deg * degToRad) }
func Tan(deg float64) float64 { return math.Tan(deg * degToRad) }

// Atan2 в градусах
func Atan2(y, x float64) float64 { return math.Atan2(y, x) * radToDeg }

func Asin(x float64) float64 { return math.Asin(x) * radToDeg }
func Acos(x float64) float64 { return math.Acos(x) * radToDeg }
