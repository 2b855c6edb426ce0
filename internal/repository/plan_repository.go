package repository

import (
	"errors"

	"aluno_ai_backend/internal/model"

	"gorm.io/gorm"
)

type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

// Find returns the student's plan record, or nil when none exists yet.
func (r *PlanRepository) Find(ra int) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.DB.Where("ra = ?", ra).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) Create(plan *model.StudyPlan) error {
	return r.DB.Create(plan).Error
}

func (r *PlanRepository) Update(plan *model.StudyPlan) error {
	return r.DB.Save(plan).Error
}

// CompletedWeeks returns the checkpoint weeks the student has marked done.
func (r *PlanRepository) CompletedWeeks(ra int) ([]int, error) {
	var completions []model.CheckpointCompletion
	err := r.DB.Where("ra = ?", ra).Order("week ASC").Find(&completions).Error
	if err != nil {
		return nil, err
	}
	weeks := make([]int, 0, len(completions))
	for _, c := range completions {
		weeks = append(weeks, c.Week)
	}
	return weeks, nil
}

// CompleteWeek records a checkpoint completion. Returns false when the week
// was already completed.
func (r *PlanRepository) CompleteWeek(ra, week int) (bool, error) {
	var existing model.CheckpointCompletion
	err := r.DB.Where("ra = ? AND week = ?", ra, week).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.DB.Create(&model.CheckpointCompletion{RA: ra, Week: week}).Error; err != nil {
		return false, err
	}
	return true, nil
}
