package pedagogy

import (
	"strings"

	"aluno_ai_backend/internal/util"
)

// Keyword signals used to detect subject drift in generated answers. The
// lists are Portuguese-language on purpose: the answers are written in pt-BR.
var (
	portugueseSignals = []string{
		"português", "texto", "leitura", "interpretação", "gramática",
		"redação", "literatura", "sintaxe", "semantica", "semântica",
		"coesão", "coerência",
	}
	mathematicsSignals = []string{
		"matemática", "fórmula", "cálculo", "equação", "função",
		"número", "álgebra", "geometria", "trigonometria", "estatística",
		"probabilidade", "área", "perímetro",
	}
)

func countSignals(answer string, signals []string) int {
	n := 0
	for _, s := range signals {
		if strings.Contains(answer, s) {
			n++
		}
	}
	return n
}

// NeedsRetry reports whether a generated answer drifted off-subject and a
// corrective retry is warranted. Drift is only guarded on Portuguese
// questions: an answer with a strong mathematics vocabulary and almost no
// Portuguese vocabulary is treated as drifted.
func NeedsRetry(subjectCode, answer string) bool {
	if subjectCode != util.SubjectCodePortuguese {
		return false
	}
	lower := strings.ToLower(answer)
	return countSignals(lower, mathematicsSignals) >= 3 && countSignals(lower, portugueseSignals) < 2
}
