package pedagogy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aluno_ai_backend/internal/util"
)

func TestNeedsRetryMathHeavyAnswerOnPortuguese(t *testing.T) {
	answer := "Aplique a fórmula na equação para achar o número x = 5 ± 2."
	assert.True(t, NeedsRetry(util.SubjectCodePortuguese, answer))
}

func TestNeedsRetryIsCaseInsensitive(t *testing.T) {
	answer := "A FÓRMULA da EQUAÇÃO define a FUNÇÃO quadrática."
	assert.True(t, NeedsRetry(util.SubjectCodePortuguese, answer))
}

func TestNeedsRetryNeverFiresOnMathematics(t *testing.T) {
	answer := "Aplique a fórmula na equação para achar o número x."
	assert.False(t, NeedsRetry(util.SubjectCodeMathematics, answer))
}

func TestNeedsRetryToleratesMixedVocabulary(t *testing.T) {
	// Three mathematics signals but two Portuguese signals: no drift.
	answer := "A interpretação do texto pede a fórmula da equação e um número."
	assert.False(t, NeedsRetry(util.SubjectCodePortuguese, answer))
}

func TestNeedsRetryAcceptsOnSubjectAnswer(t *testing.T) {
	answer := "A leitura atenta do texto mostra a coesão entre os parágrafos."
	assert.False(t, NeedsRetry(util.SubjectCodePortuguese, answer))
}

func TestNeedsRetryBelowMathThreshold(t *testing.T) {
	answer := "Pense na fórmula e no número certo."
	assert.False(t, NeedsRetry(util.SubjectCodePortuguese, answer))
}
