package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/internal/util"
)

const questionDocument = `--- Page 1 ---
Habilidade: Identificar mecanismos de coesão textual
Conteúdo: Coesão textual

Resposta comentada
O pronome retoma o termo anterior, garantindo a coesão do texto.
`

func newProfessorFixture(t *testing.T, ai *fakeAI, docs *fakeDocuments) (*ProfessorService, *repository.ProgressRepository, *repository.ProfessorRepository) {
	db := newTestDB(t)
	dataset := newTestDataset(t)

	progressRepo := repository.NewProgressRepository(db)
	professorRepo := repository.NewProfessorRepository(db)
	students := NewStudentService(dataset)
	gamificationService := NewGamificationService(progressRepo, dataset)

	return NewProfessorService(ai, docs, students, professorRepo, gamificationService), progressRepo, professorRepo
}

func TestProfessorAskUnknownQuestion(t *testing.T) {
	svc, _, _ := newProfessorFixture(t, &fakeAI{available: true}, &fakeDocuments{})

	_, err := svc.Ask(context.Background(), 123456, "s1", "PORT", 17, "Por que errei?")
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestProfessorAskWithoutKey(t *testing.T) {
	ai := &fakeAI{available: false}
	svc, _, professorRepo := newProfessorFixture(t, ai, &fakeDocuments{text: questionDocument})

	answer, err := svc.Ask(context.Background(), 123456, "s1", "PORT", 2, "Por que errei?")
	require.NoError(t, err)
	assert.Contains(t, answer, "temporarily unavailable")
	assert.Empty(t, ai.calls)

	turns, err := professorRepo.FindByQuestion(123456, "s1", 2)
	require.NoError(t, err)
	assert.Empty(t, turns, "degraded exchanges are not recorded")
}

func TestProfessorAskMaterialUnavailable(t *testing.T) {
	ai := &fakeAI{available: true, answers: []string{"irrelevant"}}
	docs := &fakeDocuments{err: errors.New("drive returned non-pdf content")}
	svc, progressRepo, _ := newProfessorFixture(t, ai, docs)

	answer, err := svc.Ask(context.Background(), 123456, "s1", "PORT", 2, "Por que errei?")
	require.NoError(t, err)
	assert.Contains(t, answer, "Could not access material for question 2")
	assert.Empty(t, ai.calls)

	progress, err := progressRepo.FindOrCreate(123456)
	require.NoError(t, err)
	assert.Zero(t, progress.ProfessorQuestions)
}

func TestProfessorAskSuccess(t *testing.T) {
	onSubject := "O texto usa pronomes para garantir a coesão. A leitura atenta mostra a interpretação correta."
	ai := &fakeAI{available: true, answers: []string{onSubject}}
	svc, progressRepo, professorRepo := newProfessorFixture(t, ai, &fakeDocuments{text: questionDocument})

	answer, err := svc.Ask(context.Background(), 123456, "s1", "PORT", 2, "Por que a alternativa B está certa?")
	require.NoError(t, err)
	assert.Equal(t, onSubject, answer)

	require.Len(t, ai.calls, 1)
	call := ai.calls[0]
	assert.Contains(t, call.System, "Portuguese specialist teacher")
	assert.InDelta(t, 0.7, call.Temperature, 0.001)
	assert.Equal(t, 800, call.MaxTokens)
	require.Len(t, call.Messages, 1)
	assert.Contains(t, call.Messages[0].Content, "QUESTION 2 of PORTUGUESE")
	assert.Contains(t, call.Messages[0].Content, "coesão do texto")
	assert.Contains(t, call.Messages[0].Content, "Por que a alternativa B está certa?")

	turns, err := professorRepo.FindByQuestion(123456, "s1", 2)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, onSubject, turns[0].Answer)

	progress, err := progressRepo.FindOrCreate(123456)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.ProfessorQuestions)
	assert.Equal(t, 8, progress.Points)
}

func TestProfessorAskDriftTriggersSingleRetry(t *testing.T) {
	drifted := "Aplique a fórmula na equação para achar o número x."
	corrected := "A coesão do texto depende da interpretação dos conectivos."
	ai := &fakeAI{available: true, answers: []string{drifted, corrected}}
	svc, _, professorRepo := newProfessorFixture(t, ai, &fakeDocuments{text: questionDocument})

	answer, err := svc.Ask(context.Background(), 123456, "s1", "PORT", 2, "Por que errei?")
	require.NoError(t, err)
	assert.Equal(t, corrected, answer)

	require.Len(t, ai.calls, 2)
	retry := ai.calls[1]
	assert.Contains(t, retry.System, "ONLY about PORTUGUESE")
	assert.InDelta(t, 0.5, retry.Temperature, 0.001)
	assert.Contains(t, retry.Messages[0].Content, "QUESTION 2 of PORTUGUESE")

	turns, err := professorRepo.FindByQuestion(123456, "s1", 2)
	require.NoError(t, err)
	require.Len(t, turns, 1, "only the final answer is recorded")
	assert.Equal(t, corrected, turns[0].Answer)
}

func TestProfessorDriftRetryFailureKeepsFirstAnswer(t *testing.T) {
	drifted := "Aplique a fórmula na equação para achar o número x."
	ai := &fakeAI{
		available: true,
		answers:   []string{drifted},
		err:       errors.New("AI API error (status 500): upstream"),
		errAfter:  1,
	}
	svc, progressRepo, professorRepo := newProfessorFixture(t, ai, &fakeDocuments{text: questionDocument})

	// a failed corrective retry falls back to the first answer instead of
	// discarding the exchange
	answer, err := svc.Ask(context.Background(), 123456, "s1", "PORT", 2, "Por que errei?")
	require.NoError(t, err)
	assert.Equal(t, drifted, answer)
	assert.Len(t, ai.calls, 2)

	turns, err := professorRepo.FindByQuestion(123456, "s1", 2)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, drifted, turns[0].Answer)

	progress, err := progressRepo.FindOrCreate(123456)
	require.NoError(t, err)
	assert.Equal(t, 8, progress.Points)
}

func TestProfessorSessionHistoryPagination(t *testing.T) {
	svc, _, professorRepo := newProfessorFixture(t, &fakeAI{available: true}, &fakeDocuments{})

	for i := 1; i <= 5; i++ {
		require.NoError(t, professorRepo.Create(&model.ProfessorTurn{
			RA:             123456,
			SessionID:      "s1",
			QuestionNumber: i,
			Subject:        "Português",
			Question:       fmt.Sprintf("pergunta %d", i),
			Answer:         fmt.Sprintf("resposta %d", i),
		}))
	}
	// another session's turn stays out of the page and the total
	require.NoError(t, professorRepo.Create(&model.ProfessorTurn{
		RA: 123456, SessionID: "s2", QuestionNumber: 9, Subject: "Português",
		Question: "outra", Answer: "outra",
	}))

	turns, total, err := svc.SessionHistory(123456, "s1", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, turns, 2)
	assert.Equal(t, 3, turns[0].QuestionNumber)
	assert.Equal(t, 4, turns[1].QuestionNumber)

	// past the last page comes back empty, not an error
	turns, total, err = svc.SessionHistory(123456, "s1", 4, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, turns)
}

func TestProfessorAskNoDriftGuardOnMathematics(t *testing.T) {
	mathAnswer := "Aplique a fórmula na equação para achar o número x."
	ai := &fakeAI{available: true, answers: []string{mathAnswer}}
	svc, _, _ := newProfessorFixture(t, ai, &fakeDocuments{text: questionDocument})

	answer, err := svc.Ask(context.Background(), 123456, "s1", "MAT", 3, "Como resolvo?")
	require.NoError(t, err)
	assert.Equal(t, mathAnswer, answer)
	assert.Len(t, ai.calls, 1)
}

func TestProfessorAskModelFailure(t *testing.T) {
	ai := &fakeAI{available: true, err: errors.New("AI API error (status 500): upstream")}
	svc, progressRepo, _ := newProfessorFixture(t, ai, &fakeDocuments{text: questionDocument})

	answer, err := svc.Ask(context.Background(), 123456, "s1", "PORT", 2, "Por que errei?")
	require.NoError(t, err)
	assert.Contains(t, answer, "There was an error processing your question")

	progress, err := progressRepo.FindOrCreate(123456)
	require.NoError(t, err)
	assert.Zero(t, progress.Points)
}
