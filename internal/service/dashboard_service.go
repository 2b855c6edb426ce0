package service

import (
	"aluno_ai_backend/internal/gamification"
	"aluno_ai_backend/pkg/logger"

	"go.uber.org/zap"
)

// Dashboard is the single payload the frontend renders after login.
type Dashboard struct {
	Summary          *StudentSummary      `json:"summary"`
	Widget           *gamification.Widget `json:"widget"`
	Gauges           []GaugeChart         `json:"gauges"`
	PriorityContents []ContentErrors      `json:"priorityContents"`
	Motivation       string               `json:"motivation"`
}

type DashboardService struct {
	Students     *StudentService
	Gamification *GamificationService
	Charts       *ChartService
	Motivations  *MotivationService
}

func NewDashboardService(students *StudentService, gamificationService *GamificationService, charts *ChartService, motivations *MotivationService) *DashboardService {
	return &DashboardService{
		Students:     students,
		Gamification: gamificationService,
		Charts:       charts,
		Motivations:  motivations,
	}
}

// Build composes the dashboard for one student. The motivation quote is
// decorative, so its failure never fails the dashboard.
func (s *DashboardService) Build(ra int) (*Dashboard, error) {
	summary, err := s.Students.Summary(ra)
	if err != nil {
		return nil, err
	}

	widget, err := s.Gamification.Widget(ra)
	if err != nil {
		return nil, err
	}

	quote, err := s.Motivations.GetCurrentMotivation()
	if err != nil {
		logger.Log.Warn("no motivation quote available", zap.Error(err))
	}

	return &Dashboard{
		Summary:          summary,
		Widget:           widget,
		Gauges:           s.Charts.SubjectGauges(summary),
		PriorityContents: s.Charts.PriorityContents(summary),
		Motivation:       quote,
	}, nil
}
