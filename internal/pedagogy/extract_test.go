package pedagogy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `--- Page 1 ---
Questão 12 - Matemática
Habilidade: Resolver equações do 2º grau em contextos diversos
Conteúdo: Equações quadráticas

Resposta comentada
Use a fórmula de Bhaskara para resolver. O discriminante vale Δ = b² − 4ac
e as raízes saem de x = (−b ± √Δ) ÷ 2a.

Passo 1: Identifique os coeficientes a, b e c
Passo 2: Calcule o discriminante
Passo 3: Aplique a fórmula e simplifique
QUESTÃO SEGUINTE
`

func TestExtractEmptyInput(t *testing.T) {
	assert.Nil(t, Extract(""))
	assert.Nil(t, Extract("   \n\t  "))
}

func TestExtractSections(t *testing.T) {
	c := Extract(sampleDocument)
	require.NotNil(t, c)

	assert.Equal(t, "Resolver equações do 2º grau em contextos diversos", c.Skill)
	assert.Equal(t, "Equações quadráticas", c.Topic)
	assert.Contains(t, c.CommentedAnswer, "Bhaskara")
	assert.Contains(t, c.Steps[0], "Identifique os coeficientes")
	assert.Contains(t, c.Steps[1], "Calcule o discriminante")
	assert.Contains(t, c.Steps[2], "Aplique a fórmula")
	assert.Empty(t, c.Explanation)
	assert.False(t, c.Empty())
}

func TestExtractSkillFromCurriculumCode(t *testing.T) {
	c := Extract("(EM13MAT302) Construir modelos com funções polinomiais\nSegue o enunciado")
	require.NotNil(t, c)
	assert.Equal(t, "Construir modelos com funções polinomiais", c.Skill)
}

func TestExtractExplanationFallback(t *testing.T) {
	text := "Questão 5\nVeja como resolver: some os termos semelhantes e isole x\nFIM"
	c := Extract(text)
	require.NotNil(t, c)

	assert.Empty(t, c.CommentedAnswer)
	assert.Contains(t, c.Explanation, "some os termos semelhantes")
}

func TestExtractCapsSectionSizes(t *testing.T) {
	long := strings.Repeat("a", 6000)
	c := Extract("Resposta comentada " + long)
	require.NotNil(t, c)

	assert.LessOrEqual(t, len([]rune(c.FullText)), 3000)
	assert.LessOrEqual(t, len([]rune(c.CommentedAnswer)), 2000)
}

func TestExtractWithoutHeadingsStillKeepsFullText(t *testing.T) {
	c := Extract("um documento sem nenhuma das seções esperadas")
	require.NotNil(t, c)
	assert.True(t, c.Empty())
	assert.NotEmpty(t, c.FullText)
}

func TestFallbackContent(t *testing.T) {
	long := strings.Repeat("x", 3000)
	c := Fallback(long, "Mathematics", 7)

	assert.Equal(t, "Question 7 of Mathematics", c.Skill)
	assert.Len(t, []rune(c.FullText), 2000)
	assert.Len(t, []rune(c.CommentedAnswer), 1500)
	assert.False(t, c.Empty())
}
