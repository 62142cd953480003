package panchang

import (
	"time"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

const (
	dayEighths    = 8
	dayMuhurtas   = 15
	nightMuhurtas = 15
)

// Номер восьмой части дня (1..8) по дню недели, начиная с воскресенья
var (
	rahuKaalPart  = [7]int{8, 2, 7, 5, 6, 4, 3}
	yamagandaPart = [7]int{5, 4, 3, 2, 1, 7, 6}
	gulikaPart    = [7]int{7, 6, 5, 4, 3, 2, 1}
)

var choghadiyaCycle = [7]string{"Udveg", "Char", "Labh", "Amrit", "Kaal", "Shubh", "Rog"}

// choghadiyaStart позиция первого дневного чогхадия в цикле, начиная с воскресенья
var choghadiyaStart = [7]int{0, 3, 6, 2, 5, 1, 4}

var choghadiyaQuality = map[string]domain.ChoghadiyaQuality{
	"Amrit": domain.ChoghadiyaGood,
	"Shubh": domain.ChoghadiyaGood,
	"Labh":  domain.ChoghadiyaGood,
	"Char":  domain.ChoghadiyaNeutral,
	"Udveg": domain.ChoghadiyaBad,
	"Kaal":  domain.ChoghadiyaBad,
	"Rog":   domain.ChoghadiyaBad,
}

var varaNames = [7]string{
	"Ravivara", "Somavara", "Mangalavara", "Budhavara", "Guruvara", "Shukravara", "Shanivara",
}

func part(sunrise time.Time, length time.Duration, parts, n int) (time.Time, time.Time) {
	step := length / time.Duration(parts)
	start := sunrise.Add(step * time.Duration(n-1))
	return start, start.Add(step)
}

// Inauspicious Раху Кал, Ямаганда и Гулика
func Inauspicious(sunrise, sunset time.Time, weekday time.Weekday) []domain.TimeWindow {
	day := sunset.Sub(sunrise)
	window := func(name string, table [7]int) domain.TimeWindow {
		start, end := part(sunrise, day, dayEighths, table[weekday])
		return domain.TimeWindow{Name: name, Start: start, End: end}
	}
	return []domain.TimeWindow{
		window("Rahu Kaal", rahuKaalPart),
		window("Yamaganda", yamagandaPart),
		window("Gulika Kaal", gulikaPart),
	}
}

// Choghadiyas восемь дневных отрезков
func Choghadiyas(sunrise, sunset time.Time, weekday time.Weekday) []domain.Choghadiya {
	day := sunset.Sub(sunrise)
	out := make([]domain.Choghadiya, 0, dayEighths)
	for i := 0; i < dayEighths; i++ {
		name := choghadiyaCycle[(choghadiyaStart[weekday]+i)%len(choghadiyaCycle)]
		start, end := part(sunrise, day, dayEighths, i+1)
		out = append(out, domain.Choghadiya{
			Name:    name,
			Quality: choghadiyaQuality[name],
			Start:   start,
			End:     end,
		})
	}
	return out
}

// Auspicious Абхиджит (восьмая из 15 дневных мухурт), Брахма мухурта (две ночные мухурты до восхода)
// и Амрит Кал в каждом дневном Амрит чогхадия
func Auspicious(sunrise, sunset time.Time, choghadiyas []domain.Choghadiya) []domain.TimeWindow {
	day := sunset.Sub(sunrise)
	night := 24*time.Hour - day
	nightStep := night / nightMuhurtas

	abhijitStart, abhijitEnd := part(sunrise, day, dayMuhurtas, 8)
	out := []domain.TimeWindow{
		{Name: "Brahma Muhurta", Start: sunrise.Add(-2 * nightStep), End: sunrise.Add(-nightStep), Auspicious: true},
		{Name: "Abhijit Muhurta", Start: abhijitStart, End: abhijitEnd, Auspicious: true},
	}
	for _, c := range choghadiyas {
		if c.Name == "Amrit" {
			out = append(out, domain.TimeWindow{Name: "Amrit Kaal", Start: c.Start, End: c.End, Auspicious: true})
		}
	}
	return out
}
