package service

import (
	"context"
	"fmt"

	"aluno_ai_backend/internal/gamification"
	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/internal/pedagogy"
	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/internal/util"
	"aluno_ai_backend/pkg/logger"
	"aluno_ai_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// chatClient is the slice of AIService the conversation services need,
// narrowed so tests can fake the model.
type chatClient interface {
	Available() bool
	Chat(ctx context.Context, system string, messages []AIChatMessage, temperature float64, maxTokens int) (string, error)
	ChatStream(ctx context.Context, system string, messages []AIChatMessage, temperature float64, maxTokens int) (<-chan string, <-chan error)
}

// documentFetcher is the slice of DocumentService the professor needs.
type documentFetcher interface {
	FetchQuestionText(ctx context.Context, url string) (string, error)
}

const (
	professorTemperature      = 0.7
	professorRetryTemperature = 0.5
	professorMaxTokens        = 800

	professorUnavailableMessage = "⚠️ AI Professor is temporarily unavailable. Configure OpenAI to use this functionality."
)

func professorMaterialMessage(questionNumber int) string {
	return fmt.Sprintf("❌ Could not access material for question %d. The PDF may be unavailable.", questionNumber)
}

func professorErrorMessage(err error) string {
	return fmt.Sprintf("⚠️ There was an error processing your question. Details: %s", util.Truncate(err.Error(), 200))
}

// ProfessorService answers a student's question about one specific
// assessment question, grounded on the question's official commented-answer
// document.
type ProfessorService struct {
	AI            chatClient
	Documents     documentFetcher
	Students      *StudentService
	ProfessorRepo *repository.ProfessorRepository
	Gamification  *GamificationService
}

func NewProfessorService(ai chatClient, documents documentFetcher, students *StudentService, professorRepo *repository.ProfessorRepository, gamificationService *GamificationService) *ProfessorService {
	return &ProfessorService{
		AI:            ai,
		Documents:     documents,
		Students:      students,
		ProfessorRepo: professorRepo,
		Gamification:  gamificationService,
	}
}

// Ask runs the full pipeline: fetch the question's document, extract the
// pedagogical sections, build the grounded prompt, call the model, guard
// against subject drift with at most one corrective retry, and record the
// exchange. Degraded outcomes (no key, missing material, model failure) are
// returned as user-facing messages, not errors; errors are reserved for an
// unknown student or question.
func (s *ProfessorService) Ask(ctx context.Context, ra int, sessionID, subjectCode string, questionNumber int, question string) (string, error) {
	row, err := s.Students.Question(ra, subjectCode, questionNumber)
	if err != nil {
		return "", err
	}

	if !s.AI.Available() {
		return professorUnavailableMessage, nil
	}

	text, err := s.Documents.FetchQuestionText(ctx, row.QuestionURL)
	if err != nil {
		logger.Log.Warn("question material unavailable",
			zap.Int("ra", ra),
			zap.Int("question", questionNumber),
			zap.Error(err))
		return professorMaterialMessage(questionNumber), nil
	}

	content := pedagogy.Extract(text)
	if content == nil || content.Empty() {
		content = pedagogy.Fallback(text, row.Subject, questionNumber)
	}

	prompt := pedagogy.BuildProfessorPrompt(content, question, row.Subject, questionNumber)

	monitoring.AIRequestCounter.WithLabelValues("professor").Inc()
	answer, err := s.AI.Chat(ctx, pedagogy.ProfessorSystem(row.Subject),
		[]AIChatMessage{{Role: "user", Content: prompt}},
		professorTemperature, professorMaxTokens)
	if err != nil {
		logger.Log.Error("professor completion failed", zap.Int("ra", ra), zap.Error(err))
		return professorErrorMessage(err), nil
	}

	if pedagogy.NeedsRetry(subjectCode, answer) {
		monitoring.DriftRetryCounter.Inc()
		logger.Log.Warn("subject drift detected, retrying",
			zap.Int("ra", ra),
			zap.Int("question", questionNumber))

		monitoring.AIRequestCounter.WithLabelValues("professor_retry").Inc()
		retried, err := s.AI.Chat(ctx, pedagogy.StrictRetrySystem(),
			[]AIChatMessage{{Role: "user", Content: pedagogy.StrictRetryPrompt(prompt, questionNumber)}},
			professorRetryTemperature, professorMaxTokens)
		if err != nil {
			// keep the first answer rather than failing the exchange
			logger.Log.Error("drift retry failed", zap.Int("ra", ra), zap.Error(err))
		} else {
			answer = retried
		}
	}

	turn := &model.ProfessorTurn{
		RA:             ra,
		SessionID:      sessionID,
		QuestionNumber: questionNumber,
		Subject:        row.Subject,
		Question:       question,
		Answer:         answer,
	}
	if err := s.ProfessorRepo.Create(turn); err != nil {
		logger.Log.Error("failed to save professor turn", zap.Int("ra", ra), zap.Error(err))
	}

	if _, err := s.Gamification.RecordAction(ra, gamification.ActionProfessorQuestion); err != nil {
		logger.Log.Error("failed to score professor question", zap.Int("ra", ra), zap.Error(err))
	}

	return answer, nil
}

// History returns the current session's exchanges for one question.
func (s *ProfessorService) History(ra int, sessionID string, questionNumber int) ([]model.ProfessorTurn, error) {
	return s.ProfessorRepo.FindByQuestion(ra, sessionID, questionNumber)
}

// SessionHistory returns one page of the current session's professor
// exchanges plus the total count.
func (s *ProfessorService) SessionHistory(ra int, sessionID string, page, limit int) ([]model.ProfessorTurn, int64, error) {
	return s.ProfessorRepo.FindBySessionPage(ra, sessionID, page, limit)
}
