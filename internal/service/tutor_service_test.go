package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aluno_ai_backend/internal/repository"
)

func newTutorFixture(t *testing.T, ai *fakeAI) (*TutorService, *GamificationService) {
	db := newTestDB(t)
	dataset := newTestDataset(t)
	students := NewStudentService(dataset)
	gamificationService := NewGamificationService(repository.NewProgressRepository(db), dataset)
	return NewTutorService(ai, students, repository.NewTutorRepository(db), gamificationService), gamificationService
}

func TestTutorHistorySeedsGreetingOnce(t *testing.T) {
	svc, _ := newTutorFixture(t, &fakeAI{available: true})

	messages, err := svc.History(123456, "s1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "assistant", messages[0].Role)
	assert.Contains(t, messages[0].Content, "Hello Maria!")
	assert.Contains(t, messages[0].Content, "1 Portuguese questions and 1 Mathematics questions")

	again, err := svc.History(123456, "s1")
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestTutorChatScoresAndPersists(t *testing.T) {
	ai := &fakeAI{available: true, answers: []string{"Que tal revisar Funções de 2º grau hoje?"}}
	svc, gamificationService := newTutorFixture(t, ai)

	answer, err := svc.Chat(context.Background(), 123456, "s1", "O que devo estudar?")
	require.NoError(t, err)
	assert.Contains(t, answer, "Funções")

	require.Len(t, ai.calls, 1)
	call := ai.calls[0]
	assert.Contains(t, call.System, "You are LU")
	assert.InDelta(t, 0.8, call.Temperature, 0.001)
	assert.Equal(t, 400, call.MaxTokens)
	assert.Equal(t, "O que devo estudar?", call.Messages[len(call.Messages)-1].Content)

	messages, err := svc.History(123456, "s1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].Role)
	assert.Equal(t, "assistant", messages[1].Role)

	widget, err := gamificationService.Widget(123456)
	require.NoError(t, err)
	assert.Equal(t, 3, widget.Points)
}

func TestTutorContextWindowIsBounded(t *testing.T) {
	ai := &fakeAI{available: true, answers: []string{"ok"}}
	svc, _ := newTutorFixture(t, ai)

	for i := 0; i < 8; i++ {
		_, err := svc.Chat(context.Background(), 123456, "s1", fmt.Sprintf("mensagem %d", i))
		require.NoError(t, err)
	}

	last := ai.calls[len(ai.calls)-1]
	assert.Len(t, last.Messages, tutorHistoryWindow+1)
}

func TestTutorChatBasicMode(t *testing.T) {
	ai := &fakeAI{available: false}
	svc, _ := newTutorFixture(t, ai)

	answer, err := svc.Chat(context.Background(), 123456, "s1", "Oi LU")
	require.NoError(t, err)
	assert.Contains(t, answer, "basic mode")
	assert.Empty(t, ai.calls)
}

func TestTutorChatFallsBackOnModelFailure(t *testing.T) {
	ai := &fakeAI{available: true, err: errors.New("AI API error (status 500): upstream")}
	svc, _ := newTutorFixture(t, ai)

	answer, err := svc.Chat(context.Background(), 123456, "s1", "Como estudar funções?")
	require.NoError(t, err)
	assert.Contains(t, answer, "Hello Maria!")
	assert.Contains(t, answer, "Como estudar funções?")

	messages, histErr := svc.History(123456, "s1")
	require.NoError(t, histErr)
	assert.Len(t, messages, 2, "fallback reply is still recorded")
}
