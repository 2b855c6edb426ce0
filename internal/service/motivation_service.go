package service

import (
	"errors"
	"math/rand"
	"time"

	"aluno_ai_backend/internal/model"
	"aluno_ai_backend/internal/repository"
)

// rotation interval for the dashboard quote
const motivationRotation = 12 * time.Hour

type MotivationService struct {
	MotivationRepo *repository.MotivationRepository
}

func NewMotivationService(motivationRepo *repository.MotivationRepository) *MotivationService {
	return &MotivationService{MotivationRepo: motivationRepo}
}

func (s *MotivationService) GetAllMotivations() ([]*model.Motivation, error) {
	return s.MotivationRepo.GetAll()
}

// GetCurrentMotivation returns the quote to display, rotating to a random
// different enabled quote once the rotation interval has passed.
func (s *MotivationService) GetCurrentMotivation() (string, error) {
	current, err := s.MotivationRepo.GetCurrent()
	if err != nil {
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil || len(enabled) == 0 {
			return "", err
		}
		s.MotivationRepo.SetCurrent(enabled[0].ID)
		return enabled[0].Content, nil
	}

	elapsed := time.Since(current.LastUsedAt)
	enabled, err := s.MotivationRepo.GetEnabled()

	if err == nil && len(enabled) > 1 && elapsed >= motivationRotation {
		var candidates []*model.Motivation
		for _, m := range enabled {
			if m.ID != current.ID {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) > 0 {
			next := candidates[rand.Intn(len(candidates))]
			s.MotivationRepo.SetCurrent(next.ID)
			return next.Content, nil
		}
	}

	return current.Content, nil
}

func (s *MotivationService) CreateMotivation(content string) error {
	return s.MotivationRepo.Create(&model.Motivation{
		Content:   content,
		IsEnabled: true,
	})
}

// UpdateMotivation edits a quote; disabling the currently displayed quote is
// rejected when it is the only enabled one.
func (s *MotivationService) UpdateMotivation(id uint, content string, isEnabled bool) error {
	var motivation model.Motivation
	if err := s.MotivationRepo.DB.First(&motivation, id).Error; err != nil {
		return err
	}

	current, err := s.MotivationRepo.GetCurrent()
	if err == nil && current.ID == id && !isEnabled {
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil {
			return err
		}
		if len(enabled) <= 1 {
			return errors.New("at least one enabled motivation quote is required")
		}
	}

	motivation.Content = content
	motivation.IsEnabled = isEnabled
	return s.MotivationRepo.Update(&motivation)
}

func (s *MotivationService) DeleteMotivation(id uint) error {
	current, err := s.MotivationRepo.GetCurrent()
	if err == nil && current.ID == id {
		enabled, err := s.MotivationRepo.GetEnabled()
		if err != nil {
			return err
		}
		if len(enabled) <= 1 {
			return errors.New("at least one enabled motivation quote is required")
		}
	}

	return s.MotivationRepo.Delete(id)
}

// SwitchToMotivation forces a specific enabled quote to display now.
func (s *MotivationService) SwitchToMotivation(id uint) error {
	motivations, err := s.MotivationRepo.GetAll()
	if err != nil {
		return err
	}

	for _, m := range motivations {
		if m.ID == id {
			if !m.IsEnabled {
				return errors.New("motivation quote is disabled")
			}
			return s.MotivationRepo.SetCurrent(id)
		}
	}
	return errors.New("motivation quote not found")
}
