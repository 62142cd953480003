package domain

// Relationship естественное отношение одной планеты к другой (Парашара)
type Relationship int

const (
	RelationEnemy Relationship = iota - 1
	RelationNeutral
	RelationFriend
)

func (r Relationship) String() string {
	switch r {
	case RelationFriend:
		return "friend"
	case RelationEnemy:
		return "enemy"
	default:
		return "neutral"
	}
}

const (
	rf = RelationFriend
	rn = RelationNeutral
	re = RelationEnemy
)

// naturalRelations[a][b] как a относится к b; диагональ не используется.
// Отношения узлов взяты по общепринятой таблице: Раху дружит с Венерой, Сатурном, Меркурием,
// Кету с Марсом, Венерой, Сатурном, оба враждебны светилам.
var naturalRelations = [BodyCount][BodyCount]Relationship{
	//         Sun Moon Mars Merc Jup Ven Sat Rahu Ketu
	Sun:     {rn, rf, rf, rn, rf, re, re, re, re},
	Moon:    {rf, rn, rn, rf, rn, rn, rn, re, re},
	Mars:    {rf, rf, rn, re, rf, rn, rn, re, rf},
	Mercury: {rf, re, rn, rn, rn, rf, rn, rf, rn},
	Jupiter: {rf, rf, rf, re, rn, re, rn, rn, rn},
	Venus:   {re, re, rn, rf, rn, rn, rf, rf, rf},
	Saturn:  {re, re, re, rf, rn, rf, rn, rf, rf},
	Rahu:    {re, re, re, rf, rn, rf, rf, rn, re},
	Ketu:    {re, re, rf, rn, rn, rf, rf, re, rn},
}

// NaturalRelation как a относится к b
func NaturalRelation(a, b Body) Relationship {
	return naturalRelations[a][b]
}

// AreMutualFriends обе планеты считают друг друга друзьями
func AreMutualFriends(a, b Body) bool {
	return NaturalRelation(a, b) == RelationFriend && NaturalRelation(b, a) == RelationFriend
}

// AreMutualEnemies обе планеты враждебны друг другу
func AreMutualEnemies(a, b Body) bool {
	return NaturalRelation(a, b) == RelationEnemy && NaturalRelation(b, a) == RelationEnemy
}

var exaltationSign = [BodyCount]Sign{
	Sun:     Aries,
	Moon:    Taurus,
	Mars:    Capricorn,
	Mercury: Virgo,
	Jupiter: Cancer,
	Venus:   Pisces,
	Saturn:  Libra,
	Rahu:    Taurus,
	Ketu:    Scorpio,
}

var ownSigns = [BodyCount][]Sign{
	Sun:     {Leo},
	Moon:    {Cancer},
	Mars:    {Aries, Scorpio},
	Mercury: {Gemini, Virgo},
	Jupiter: {Sagittarius, Pisces},
	Venus:   {Taurus, Libra},
	Saturn:  {Capricorn, Aquarius},
	Rahu:    {Aquarius},
	Ketu:    {Scorpio},
}

func ExaltationSign(b Body) Sign {
	return exaltationSign[b]
}

// DebilitationSign знак напротив экзальтации
func DebilitationSign(b Body) Sign {
	return exaltationSign[b].Add(6)
}

func IsOwnSign(b Body, s Sign) bool {
	for _, own := range ownSigns[b] {
		if own == s {
			return true
		}
	}
	return false
}

// DignityOf достоинство планеты в знаке; экзальтация проверяется раньше собственного знака
func DignityOf(b Body, s Sign) Dignity {
	switch {
	case s == ExaltationSign(b):
		return DignityExalted
	case s == DebilitationSign(b):
		return DignityDebilitated
	case IsOwnSign(b, s):
		return DignityOwn
	}
	switch NaturalRelation(b, s.Lord()) {
	case RelationFriend:
		return DignityFriend
	case RelationEnemy:
		return DignityEnemy
	default:
		return DignityNeutral
	}
}
