package repository

import (
	"errors"

	"aluno_ai_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindOrCreate returns the student's progress record, creating a fresh
// level-1 record on first access.
func (r *ProgressRepository) FindOrCreate(ra int) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.Where("ra = ?", ra).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = model.Progress{RA: ra, Level: 1}
		if err := r.DB.Create(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) Update(progress *model.Progress) error {
	return r.DB.Save(progress).Error
}

// Achievements returns the student's unlocked badges in unlock order.
func (r *ProgressRepository) Achievements(ra int) ([]model.UnlockedAchievement, error) {
	var achievements []model.UnlockedAchievement
	err := r.DB.Where("ra = ?", ra).Order("id ASC").Find(&achievements).Error
	return achievements, err
}

// SaveAchievements inserts newly unlocked badges together with the updated
// progress record in one transaction.
func (r *ProgressRepository) SaveAchievements(progress *model.Progress, unlocked []model.UnlockedAchievement) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if len(unlocked) > 0 {
			if err := tx.Create(&unlocked).Error; err != nil {
				return err
			}
		}
		return tx.Save(progress).Error
	})
}
