package matching

import (
	"fmt"

	"github.com/admin/astro-services/jyotish/internal/domain"
)

// Имена и максимумы восьми кут
const (
	KootaVarna   = "Varna"
	KootaVashya  = "Vashya"
	KootaTara    = "Tara"
	KootaYoni    = "Yoni"
	KootaMaitri  = "Graha Maitri"
	KootaGana    = "Gana"
	KootaBhakoot = "Bhakoot"
	KootaNadi    = "Nadi"

	MaxVarna   = 1.0
	MaxVashya  = 2.0
	MaxTara    = 3.0
	MaxYoni    = 4.0
	MaxMaitri  = 5.0
	MaxGana    = 6.0
	MaxBhakoot = 7.0
	MaxNadi    = 8.0

	MaxTotal = MaxVarna + MaxVashya + MaxTara + MaxYoni + MaxMaitri + MaxGana + MaxBhakoot + MaxNadi
)

func varnaKoota(groom, bride domain.MatchPartner) domain.KootaScore {
	g, b := signVarna[groom.Rashi], signVarna[bride.Rashi]
	score := 0.0
	if g >= b {
		score = MaxVarna
	}
	return koota(KootaVarna, MaxVarna, score,
		fmt.Sprintf("Groom's varna is %s, bride's is %s", g, b))
}

func vashyaKoota(groom, bride domain.MatchPartner) domain.KootaScore {
	g, b := signVashya[groom.Rashi], signVashya[bride.Rashi]
	return koota(KootaVashya, MaxVashya, vashyaScore[g][b],
		fmt.Sprintf("Groom is %s, bride is %s", g, b))
}

// taraKoota среднее двух направлений счёта накшатр
func taraKoota(groom, bride domain.MatchPartner) domain.KootaScore {
	fromBride := taraOf(bride.Nakshatra, groom.Nakshatra)
	fromGroom := taraOf(groom.Nakshatra, bride.Nakshatra)
	score := (fromBride.score + fromGroom.score) / 2
	return koota(KootaTara, MaxTara, score,
		fmt.Sprintf("Counted from the bride the tara is %s, from the groom %s", fromBride.name, fromGroom.name))
}

func taraOf(from, to domain.Nakshatra) tara {
	count := (int(to)-int(from)+domain.NakshatraCount)%domain.NakshatraCount + 1
	return taras[count%9]
}

func yoniKoota(groom, bride domain.MatchPartner) domain.KootaScore {
	g, b := nakshatraAttrs[groom.Nakshatra].yoni, nakshatraAttrs[bride.Nakshatra].yoni
	if enemy, ok := yoniEnemies[g.animal]; ok && enemy == b.animal {
		return koota(KootaYoni, MaxYoni, 0,
			fmt.Sprintf("The %s and the %s are natural enemies", g.animal, b.animal))
	}

	description := fmt.Sprintf("Groom's yoni is the %s, bride's is the %s", g.animal, b.animal)
	if g.animal == b.animal && g.male != b.male {
		description = fmt.Sprintf("Both share the %s yoni with complementary natures", g.animal)
	}
	return koota(KootaYoni, MaxYoni, MaxYoni, description)
}

// maitriKoota дружба управителей накшатр; одна и та же планета считается лучшим случаем
func maitriKoota(groom, bride domain.MatchPartner) domain.KootaScore {
	g, b := groom.Nakshatra.Lord(), bride.Nakshatra.Lord()
	if g == b {
		return koota(KootaMaitri, MaxMaitri, MaxMaitri,
			fmt.Sprintf("Both nakshatras are ruled by %s", g))
	}

	ab, ba := domain.NaturalRelation(g, b), domain.NaturalRelation(b, g)
	var score float64
	switch {
	case ab == domain.RelationFriend && ba == domain.RelationFriend:
		score = 5
	case ab+ba == domain.RelationFriend:
		// друг и нейтрал
		score = 4
	case ab == domain.RelationNeutral && ba == domain.RelationNeutral:
		score = 3
	case ab+ba == domain.RelationNeutral:
		// друг и враг
		score = 1
	case ab+ba == domain.RelationEnemy:
		// нейтрал и враг
		score = 0.5
	default:
		score = 0
	}
	return koota(KootaMaitri, MaxMaitri, score,
		fmt.Sprintf("%s sees %s as %s, %s sees %s as %s", g, b, ab, b, g, ba))
}

func ganaKoota(groom, bride domain.MatchPartner) domain.KootaScore {
	g, b := nakshatraAttrs[groom.Nakshatra].gana, nakshatraAttrs[bride.Nakshatra].gana
	return koota(KootaGana, MaxGana, ganaScore[g][b],
		fmt.Sprintf("Groom is %s gana, bride is %s gana", g, b))
}

// bhakootKoota второй результат: пара расстояний неблагоприятна
func bhakootKoota(groom, bride domain.MatchPartner) (domain.KootaScore, bool) {
	forward := groom.Rashi.DistanceTo(bride.Rashi)
	backward := bride.Rashi.DistanceTo(groom.Rashi)
	if badBhakoot[[2]int{forward, backward}] {
		return koota(KootaBhakoot, MaxBhakoot, 0,
			fmt.Sprintf("Moon signs are in a %d-%d relationship", forward, backward)), true
	}
	return koota(KootaBhakoot, MaxBhakoot, MaxBhakoot,
		fmt.Sprintf("Moon signs are in a %d-%d relationship", forward, backward)), false
}

// nadiKoota второй результат: совпадение нади
func nadiKoota(groom, bride domain.MatchPartner) (domain.KootaScore, bool) {
	g, b := nakshatraAttrs[groom.Nakshatra].nadi, nakshatraAttrs[bride.Nakshatra].nadi
	if g == b {
		return koota(KootaNadi, MaxNadi, 0,
			fmt.Sprintf("Both partners have %s nadi", g)), true
	}
	return koota(KootaNadi, MaxNadi, MaxNadi,
		fmt.Sprintf("Groom has %s nadi, bride has %s nadi", g, b)), false
}

func koota(name string, maxScore, score float64, description string) domain.KootaScore {
	return domain.KootaScore{
		Name:        name,
		Max:         maxScore,
		Score:       score,
		Status:      status(score, maxScore),
		Description: description,
	}
}

func status(score, maxScore float64) domain.KootaStatus {
	ratio := score / maxScore
	switch {
	case ratio >= 0.75:
		return domain.KootaPass
	case ratio >= 0.25:
		return domain.KootaWarning
	default:
		return domain.KootaFail
	}
}
