package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// birthFlags данные рождения из флагов; без --time время считается неизвестным
type birthFlags struct {
	name      string
	place     string
	date      string
	clock     string
	latitude  float64
	longitude float64
	utcOffset float64
}

func (f *birthFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Native name")
	cmd.Flags().StringVar(&f.place, "place", "", "Birth place label")
	cmd.Flags().StringVar(&f.date, "date", "", "Birth date YYYY-MM-DD")
	cmd.Flags().StringVar(&f.clock, "time", "", "Local birth time HH:MM[:SS], noon is assumed when empty")
	cmd.Flags().Float64Var(&f.latitude, "lat", 0, "Latitude, north positive")
	cmd.Flags().Float64Var(&f.longitude, "lon", 0, "Longitude, east positive")
	cmd.Flags().Float64Var(&f.utcOffset, "tz", 0, "UTC offset in hours, e.g. 5.5")
	_ = cmd.MarkFlagRequired("date")
}

func (f *birthFlags) birthData() (domain.BirthData, error) {
	b, err := parseDateTime(f.date, f.clock)
	if err != nil {
		return domain.BirthData{}, err
	}
	b.Name = f.name
	b.Place = f.place
	b.Latitude = f.latitude
	b.Longitude = f.longitude
	b.UTCOffset = f.utcOffset
	return b, nil
}

// parseBirthSpec разбирает "YYYY-MM-DD[THH:MM[:SS]],lat,lon,tz[,name]"
func parseBirthSpec(spec string) (domain.BirthData, error) {
	parts := strings.Split(spec, ",")
	if len(parts) < 4 || len(parts) > 5 {
		return domain.BirthData{}, fmt.Errorf("birth %q: expected date[Ttime],lat,lon,tz[,name]", spec)
	}

	date, clock, _ := strings.Cut(strings.TrimSpace(parts[0]), "T")
	b, err := parseDateTime(date, clock)
	if err != nil {
		return domain.BirthData{}, fmt.Errorf("birth %q: %w", spec, err)
	}

	var values [3]float64
	for i, raw := range parts[1:4] {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return domain.BirthData{}, fmt.Errorf("birth %q: %w", spec, err)
		}
		values[i] = v
	}
	b.Latitude, b.Longitude, b.UTCOffset = values[0], values[1], values[2]
	if len(parts) == 5 {
		b.Name = strings.TrimSpace(parts[4])
	}
	return b, nil
}

func parseDateTime(date, clock string) (domain.BirthData, error) {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return domain.BirthData{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	b := domain.BirthData{Year: d.Year(), Month: int(d.Month()), Day: d.Day()}
	if clock == "" {
		return b, nil
	}

	layout := "15:04"
	if strings.Count(clock, ":") == 2 {
		layout = time.TimeOnly
	}
	t, err := time.Parse(layout, clock)
	if err != nil {
		return domain.BirthData{}, fmt.Errorf("time must be HH:MM[:SS]: %w", err)
	}
	b.Hour, b.Minute, b.Second = t.Hour(), t.Minute(), t.Second()
	b.TimeKnown = true
	return b, nil
}
