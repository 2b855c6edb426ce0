package service

import (
	"context"
	"fmt"
	"strings"

	"aluno_ai_backend/internal/gamification"
	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/internal/pedagogy"
	"aluno_ai_backend/internal/repository"
	"aluno_ai_backend/pkg/logger"
	"aluno_ai_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const (
	tutorTemperature   = 0.8
	tutorMaxTokens     = 400
	tutorHistoryWindow = 6
)

func tutorBasicModeMessage(studentName string) string {
	first := strings.SplitN(strings.TrimSpace(studentName), " ", 2)[0]
	return fmt.Sprintf("Hello %s! I'm currently in basic mode. For more intelligent conversations, configure OpenAI. Meanwhile, remember to review the questions you got wrong and use the available study resources!", first)
}

// TutorService runs the LU study-companion conversation: general study
// strategy and motivation chat, not tied to a particular question.
type TutorService struct {
	AI           chatClient
	Students     *StudentService
	TutorRepo    *repository.TutorRepository
	Gamification *GamificationService
}

func NewTutorService(ai chatClient, students *StudentService, tutorRepo *repository.TutorRepository, gamificationService *GamificationService) *TutorService {
	return &TutorService{
		AI:           ai,
		Students:     students,
		TutorRepo:    tutorRepo,
		Gamification: gamificationService,
	}
}

// History returns the session's conversation, opening it with LU's greeting
// on first access.
func (s *TutorService) History(ra int, sessionID string) ([]model.TutorMessage, error) {
	messages, err := s.TutorRepo.FindBySession(ra, sessionID)
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return messages, nil
	}

	summary, err := s.Students.Summary(ra)
	if err != nil {
		return nil, err
	}

	greeting := &model.TutorMessage{
		RA:        ra,
		SessionID: sessionID,
		Role:      "assistant",
		Content:   pedagogy.TutorGreeting(summary.Name, summary.CorrectPortuguese, summary.CorrectMathematics),
	}
	if err := s.TutorRepo.Create(greeting); err != nil {
		return nil, err
	}
	return []model.TutorMessage{*greeting}, nil
}

// window builds the model message context: the last turns of the session
// followed by the new message.
func (s *TutorService) window(ra int, sessionID, message string) ([]AIChatMessage, error) {
	recent, err := s.TutorRepo.FindRecent(ra, sessionID, tutorHistoryWindow)
	if err != nil {
		return nil, err
	}

	msgs := make([]AIChatMessage, 0, len(recent)+1)
	for _, m := range recent {
		msgs = append(msgs, AIChatMessage{Role: m.Role, Content: m.Content})
	}
	return append(msgs, AIChatMessage{Role: "user", Content: message}), nil
}

func (s *TutorService) save(ra int, sessionID, role, content string) {
	err := s.TutorRepo.Create(&model.TutorMessage{
		RA:        ra,
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	})
	if err != nil {
		logger.Log.Error("failed to save tutor message", zap.Int("ra", ra), zap.Error(err))
	}
}

// Chat answers one tutor message. Model failures degrade to a canned reply
// instead of an error so the conversation never dead-ends.
func (s *TutorService) Chat(ctx context.Context, ra int, sessionID, message string) (string, error) {
	summary, err := s.Students.Summary(ra)
	if err != nil {
		return "", err
	}

	msgs, err := s.window(ra, sessionID, message)
	if err != nil {
		return "", err
	}
	s.save(ra, sessionID, "user", message)

	var answer string
	if !s.AI.Available() {
		answer = tutorBasicModeMessage(summary.Name)
	} else {
		monitoring.AIRequestCounter.WithLabelValues("tutor").Inc()
		answer, err = s.AI.Chat(ctx,
			pedagogy.TutorSystem(summary.Name, summary.CorrectPortuguese, summary.CorrectMathematics),
			msgs, tutorTemperature, tutorMaxTokens)
		if err != nil {
			logger.Log.Error("tutor completion failed", zap.Int("ra", ra), zap.Error(err))
			answer = pedagogy.TutorFallback(summary.Name, message)
		}
	}

	s.save(ra, sessionID, "assistant", answer)

	if _, err := s.Gamification.RecordAction(ra, gamification.ActionTutorInteraction); err != nil {
		logger.Log.Error("failed to score tutor interaction", zap.Int("ra", ra), zap.Error(err))
	}

	return answer, nil
}

// ChatStream is the streaming variant. The full answer is persisted once the
// stream completes.
func (s *TutorService) ChatStream(ctx context.Context, ra int, sessionID, message string) (<-chan string, <-chan error, error) {
	summary, err := s.Students.Summary(ra)
	if err != nil {
		return nil, nil, err
	}

	msgs, err := s.window(ra, sessionID, message)
	if err != nil {
		return nil, nil, err
	}
	s.save(ra, sessionID, "user", message)

	out := make(chan string)
	errChan := make(chan error, 1)

	if !s.AI.Available() {
		go func() {
			defer close(out)
			defer close(errChan)
			answer := tutorBasicModeMessage(summary.Name)
			out <- answer
			s.finishStream(ra, sessionID, answer)
		}()
		return out, errChan, nil
	}

	monitoring.AIRequestCounter.WithLabelValues("tutor").Inc()
	stream, streamErr := s.AI.ChatStream(ctx,
		pedagogy.TutorSystem(summary.Name, summary.CorrectPortuguese, summary.CorrectMathematics),
		msgs, tutorTemperature, tutorMaxTokens)

	go func() {
		defer close(out)
		defer close(errChan)

		var sb strings.Builder
		for chunk := range stream {
			sb.WriteString(chunk)
			out <- chunk
		}
		if err := <-streamErr; err != nil {
			logger.Log.Error("tutor stream failed", zap.Int("ra", ra), zap.Error(err))
			if sb.Len() == 0 {
				fallback := pedagogy.TutorFallback(summary.Name, message)
				out <- fallback
				s.finishStream(ra, sessionID, fallback)
				return
			}
			errChan <- err
		}
		if sb.Len() > 0 {
			s.finishStream(ra, sessionID, sb.String())
		}
	}()

	return out, errChan, nil
}

func (s *TutorService) finishStream(ra int, sessionID, answer string) {
	s.save(ra, sessionID, "assistant", answer)
	if _, err := s.Gamification.RecordAction(ra, gamification.ActionTutorInteraction); err != nil {
		logger.Log.Error("failed to score tutor interaction", zap.Int("ra", ra), zap.Error(err))
	}
}
