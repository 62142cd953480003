package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Location именованная точка для регулярного прогрева панчанги
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	UTCOffset float64 `json:"utc_offset"`
}

// ParseLocations разбирает список вида "Delhi:28.6139:77.2090:5.5;London:51.5074:-0.1278:0"
func ParseLocations(s string) ([]Location, error) {
	var out []Location
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.Split(item, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("location %q: expected name:lat:lon:utc_offset", item)
		}

		var values [3]float64
		for i, raw := range parts[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, fmt.Errorf("location %q: %w", item, err)
			}
			values[i] = v
		}

		loc := Location{Name: strings.TrimSpace(parts[0]), Latitude: values[0], Longitude: values[1], UTCOffset: values[2]}
		if err := ValidateCoordinates(loc.Latitude, loc.Longitude); err != nil {
			return nil, fmt.Errorf("location %q: %w", item, err)
		}
		if err := ValidateUTCOffset(loc.UTCOffset); err != nil {
			return nil, fmt.Errorf("location %q: %w", item, err)
		}
		out = append(out, loc)
	}
	return out, nil
}
