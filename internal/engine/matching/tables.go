package matching

import "github.com/admin/astro-services/jyotish/internal/domain"

type gana int

const (
	ganaDeva gana = iota
	ganaManushya
	ganaRakshasa
)

func (g gana) String() string {
	return [...]string{"Deva", "Manushya", "Rakshasa"}[g]
}

type nadi int

const (
	nadiAdi nadi = iota
	nadiMadhya
	nadiAntya
)

func (n nadi) String() string {
	return [...]string{"Adi", "Madhya", "Antya"}[n]
}

type animal int

const (
	horse animal = iota
	elephant
	sheep
	serpent
	dog
	cat
	rat
	cow
	buffalo
	tiger
	deer
	monkey
	mongoose
	lion
)

func (a animal) String() string {
	return [...]string{
		"horse", "elephant", "sheep", "serpent", "dog", "cat", "rat",
		"cow", "buffalo", "tiger", "deer", "monkey", "mongoose", "lion",
	}[a]
}

type yoni struct {
	animal animal
	male   bool
}

// nakshatraAttrs гана, нади и йони каждой накшатры, индекс 0 = Ашвини
var nakshatraAttrs = [domain.NakshatraCount]struct {
	gana gana
	nadi nadi
	yoni yoni
}{
	{ganaDeva, nadiAdi, yoni{horse, true}},           // Ashwini
	{ganaManushya, nadiMadhya, yoni{elephant, true}}, // Bharani
	{ganaRakshasa, nadiAntya, yoni{sheep, false}},    // Krittika
	{ganaManushya, nadiAntya, yoni{serpent, true}},   // Rohini
	{ganaDeva, nadiMadhya, yoni{serpent, false}},     // Mrigashira
	{ganaManushya, nadiAdi, yoni{dog, false}},        // Ardra
	{ganaDeva, nadiAdi, yoni{cat, false}},            // Punarvasu
	{ganaDeva, nadiMadhya, yoni{sheep, true}},        // Pushya
	{ganaRakshasa, nadiAntya, yoni{cat, true}},       // Ashlesha
	{ganaRakshasa, nadiAntya, yoni{rat, true}},       // Magha
	{ganaManushya, nadiMadhya, yoni{rat, false}},     // Purva Phalguni
	{ganaManushya, nadiAdi, yoni{cow, true}},         // Uttara Phalguni
	{ganaDeva, nadiAdi, yoni{buffalo, false}},        // Hasta
	{ganaRakshasa, nadiMadhya, yoni{tiger, false}},   // Chitra
	{ganaDeva, nadiAntya, yoni{buffalo, true}},       // Swati
	{ganaRakshasa, nadiAntya, yoni{tiger, true}},     // Vishakha
	{ganaDeva, nadiMadhya, yoni{deer, false}},        // Anuradha
	{ganaRakshasa, nadiAdi, yoni{deer, true}},        // Jyeshtha
	{ganaRakshasa, nadiAdi, yoni{dog, true}},         // Mula
	{ganaManushya, nadiMadhya, yoni{monkey, true}},   // Purva Ashadha
	{ganaManushya, nadiAntya, yoni{mongoose, true}},  // Uttara Ashadha
	{ganaDeva, nadiAntya, yoni{monkey, false}},       // Shravana
	{ganaRakshasa, nadiMadhya, yoni{lion, false}},    // Dhanishta
	{ganaRakshasa, nadiAdi, yoni{horse, false}},      // Shatabhisha
	{ganaManushya, nadiAdi, yoni{lion, true}},        // Purva Bhadrapada
	{ganaManushya, nadiMadhya, yoni{cow, false}},     // Uttara Bhadrapada
	{ganaDeva, nadiAntya, yoni{elephant, false}},     // Revati
}

// yoniEnemies природные враги; пара симметрична
var yoniEnemies = map[animal]animal{
	horse:    buffalo,
	buffalo:  horse,
	elephant: lion,
	lion:     elephant,
	sheep:    monkey,
	monkey:   sheep,
	serpent:  mongoose,
	mongoose: serpent,
	dog:      deer,
	deer:     dog,
	cat:      rat,
	rat:      cat,
	cow:      tiger,
	tiger:    cow,
}

// ganaScore[жених][невеста]
var ganaScore = [3][3]float64{
	ganaDeva:     {6, 5, 1},
	ganaManushya: {5, 6, 0},
	ganaRakshasa: {1, 0, 6},
}

type varna int

const (
	varnaShudra varna = iota + 1
	varnaVaishya
	varnaKshatriya
	varnaBrahmin
)

func (v varna) String() string {
	return [...]string{"", "Shudra", "Vaishya", "Kshatriya", "Brahmin"}[v]
}

var signVarna = [domain.SignCount]varna{
	domain.Aries:       varnaKshatriya,
	domain.Taurus:      varnaVaishya,
	domain.Gemini:      varnaShudra,
	domain.Cancer:      varnaBrahmin,
	domain.Leo:         varnaKshatriya,
	domain.Virgo:       varnaVaishya,
	domain.Libra:       varnaShudra,
	domain.Scorpio:     varnaBrahmin,
	domain.Sagittarius: varnaKshatriya,
	domain.Capricorn:   varnaVaishya,
	domain.Aquarius:    varnaShudra,
	domain.Pisces:      varnaBrahmin,
}

type vashya int

const (
	vashyaChatushpada vashya = iota
	vashyaManava
	vashyaJalachara
	vashyaVanachara
	vashyaKeeta
)

func (v vashya) String() string {
	return [...]string{"Chatushpada", "Manava", "Jalachara", "Vanachara", "Keeta"}[v]
}

// signVashya группа по знаку целиком; двойственные Стрелец и Козерог отнесены по старшей половине
var signVashya = [domain.SignCount]vashya{
	domain.Aries:       vashyaChatushpada,
	domain.Taurus:      vashyaChatushpada,
	domain.Gemini:      vashyaManava,
	domain.Cancer:      vashyaJalachara,
	domain.Leo:         vashyaVanachara,
	domain.Virgo:       vashyaManava,
	domain.Libra:       vashyaManava,
	domain.Scorpio:     vashyaKeeta,
	domain.Sagittarius: vashyaChatushpada,
	domain.Capricorn:   vashyaJalachara,
	domain.Aquarius:    vashyaManava,
	domain.Pisces:      vashyaJalachara,
}

// vashyaScore[жених][невеста], симметрична
var vashyaScore = [5][5]float64{
	vashyaChatushpada: {2, 1, 1, 0.5, 1},
	vashyaManava:      {1, 2, 0.5, 0, 1},
	vashyaJalachara:   {1, 0.5, 2, 1, 1},
	vashyaVanachara:   {0.5, 0, 1, 2, 0},
	vashyaKeeta:       {1, 1, 1, 0, 2},
}

type tara struct {
	name  string
	score float64
}

// taras по остатку от деления счёта накшатр на 9; индекс 0 соответствует остатку 9
var taras = [9]tara{
	{"Param Mitra", 3},
	{"Janma", 1.5},
	{"Sampat", 3},
	{"Vipat", 0},
	{"Kshema", 3},
	{"Pratyari", 0},
	{"Sadhaka", 3},
	{"Vadha", 0},
	{"Mitra", 3},
}

// badBhakoot пары расстояний между раши, обнуляющие Бхакут
var badBhakoot = map[[2]int]bool{
	{2, 12}: true,
	{12, 2}: true,
	{6, 8}:  true,
	{8, 6}:  true,
}
