package domain

type KootaStatus string

const (
	KootaPass    KootaStatus = "pass"
	KootaWarning KootaStatus = "warning"
	KootaFail    KootaStatus = "fail"
)

// KootaScore оценка одного из восьми факторов Ашта-кута
type KootaScore struct {
	Name        string      `json:"name"`
	Max         float64     `json:"max"`
	Score       float64     `json:"score"`
	Status      KootaStatus `json:"status"`
	Description string      `json:"description"`
}

type MatchVerdict string

const (
	VerdictExcellent      MatchVerdict = "excellent"
	VerdictVeryGood       MatchVerdict = "very_good"
	VerdictGood           MatchVerdict = "good"
	VerdictNeedsAttention MatchVerdict = "needs_attention"
)

// MatchPartner лунное положение партнёра, по которому считается совместимость
type MatchPartner struct {
	Name      string    `json:"name"`
	Nakshatra Nakshatra `json:"nakshatra"`
	Pada      int       `json:"pada"`
	Rashi     Sign      `json:"rashi"`
}

// MatchResult итог Гуна Милан; доши отдаются отдельными флагами и в сумму не вшиваются
type MatchResult struct {
	Groom      MatchPartner `json:"groom"`
	Bride      MatchPartner `json:"bride"`
	Kootas     []KootaScore `json:"kootas"`
	Total      float64      `json:"total"`
	Max        float64      `json:"max"`
	Percentage float64      `json:"percentage"`
	Verdict    MatchVerdict `json:"verdict"`
	Favorable  bool         `json:"favorable"`

	NadiDosha    bool `json:"nadi_dosha"`
	BhakootDosha bool `json:"bhakoot_dosha"`
	// BhakootCancellationEligible классическое условие отмены (общий управитель раши) выполнено,
	// на балл не влияет
	BhakootCancellationEligible bool `json:"bhakoot_cancellation_eligible"`
	// ReducedConfidence хотя бы одна из карт построена без точного времени рождения
	ReducedConfidence bool `json:"reduced_confidence"`
}

// Koota возвращает оценку фактора по имени
func (r *MatchResult) Koota(name string) (KootaScore, bool) {
	for _, k := range r.Kootas {
		if k.Name == name {
			return k, true
		}
	}
	return KootaScore{}, false
}
