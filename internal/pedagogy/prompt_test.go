package pedagogy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildProfessorPromptCarriesIdentityAndScope(t *testing.T) {
	c := &Content{
		Skill:           "Resolver equações do 2º grau",
		Topic:           "Equações quadráticas",
		CommentedAnswer: "Use a fórmula de Bhaskara",
	}

	prompt := BuildProfessorPrompt(c, "Como calculo o delta?", "Mathematics", 12)

	assert.Contains(t, prompt, "FABI, a high school MATHEMATICS specialist teacher")
	assert.Contains(t, prompt, "QUESTION 12 of MATHEMATICS")
	assert.Contains(t, prompt, "Skill assessed: Resolver equações do 2º grau")
	assert.Contains(t, prompt, "Main content: Equações quadráticas")
	assert.Contains(t, prompt, "Use a fórmula de Bhaskara")
	assert.Contains(t, prompt, "STUDENT'S QUESTION: Como calculo o delta?")
	assert.Contains(t, prompt, "UNICODE SYMBOLS")
}

func TestBuildProfessorPromptDefaultsMissingSections(t *testing.T) {
	prompt := BuildProfessorPrompt(&Content{}, "pergunta", "Portuguese", 3)

	assert.Contains(t, prompt, "Skill assessed: Not specified")
	assert.Contains(t, prompt, "Main content: Not specified")
}

func TestBuildProfessorPromptCapsKnowledgeBase(t *testing.T) {
	c := &Content{
		CommentedAnswer: strings.Repeat("a", 2000),
		Explanation:     strings.Repeat("b", 1500),
	}

	prompt := BuildProfessorPrompt(c, "q", "Mathematics", 1)

	assert.NotContains(t, prompt, strings.Repeat("a", 1001))
	assert.Contains(t, prompt, strings.Repeat("a", 1000))
	assert.NotContains(t, prompt, strings.Repeat("b", 801))
	assert.Contains(t, prompt, strings.Repeat("b", 800))
}

func TestStrictRetryMessages(t *testing.T) {
	sys := StrictRetrySystem()
	assert.Contains(t, sys, "ONLY about PORTUGUESE")
	assert.Contains(t, sys, "português, texto, leitura, interpretação, gramática")

	user := StrictRetryPrompt("original prompt body", 9)
	assert.True(t, strings.HasPrefix(user, "Answering about QUESTION 9 of PORTUGUESE:\n"))
	assert.Contains(t, user, "original prompt body")
}

func TestTutorSystemEmbedsScores(t *testing.T) {
	sys := TutorSystem("Maria Silva", 14, 11)
	assert.Contains(t, sys, "You are LU")
	assert.Contains(t, sys, "Maria Silva has 14 correct in Portuguese and 11 in Mathematics")
}

func TestTutorGreetingUsesFirstName(t *testing.T) {
	msg := TutorGreeting("João Pedro Santos", 10, 8)
	assert.Contains(t, msg, "Hello João!")
	assert.Contains(t, msg, "10 Portuguese questions and 8 Mathematics questions")
}

func TestTutorFallbackTruncatesEcho(t *testing.T) {
	long := strings.Repeat("z", 100)
	msg := TutorFallback("Ana", long)

	assert.Contains(t, msg, "Hello Ana!")
	assert.Contains(t, msg, strings.Repeat("z", 30)+"...")
	assert.NotContains(t, msg, strings.Repeat("z", 31))
}
