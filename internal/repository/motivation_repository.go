package repository

import (
	"time"

	"aluno_ai_backend/internal/model"

	"gorm.io/gorm"
)

type MotivationRepository struct {
	DB *gorm.DB
}

func NewMotivationRepository(db *gorm.DB) *MotivationRepository {
	return &MotivationRepository{DB: db}
}

func (r *MotivationRepository) GetAll() ([]*model.Motivation, error) {
	var motivations []*model.Motivation
	err := r.DB.Find(&motivations).Error
	return motivations, err
}

func (r *MotivationRepository) GetEnabled() ([]*model.Motivation, error) {
	var motivations []*model.Motivation
	err := r.DB.Where("is_enabled = ?", true).Find(&motivations).Error
	return motivations, err
}

func (r *MotivationRepository) GetCurrent() (*model.Motivation, error) {
	var motivation model.Motivation
	err := r.DB.Where("is_currently_used = ?", true).First(&motivation).Error
	return &motivation, err
}

func (r *MotivationRepository) Create(motivation *model.Motivation) error {
	return r.DB.Create(motivation).Error
}

func (r *MotivationRepository) Update(motivation *model.Motivation) error {
	return r.DB.Save(motivation).Error
}

func (r *MotivationRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Motivation{}, id).Error
}

// SetCurrent marks one quote as the displayed quote, clearing the previous
// mark in the same transaction.
func (r *MotivationRepository) SetCurrent(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Motivation{}).
			Where("is_currently_used = ?", true).
			Update("is_currently_used", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Motivation{}).Where("id = ?", id).Updates(map[string]interface{}{
			"is_currently_used": true,
			"last_used_at":      time.Now(),
		}).Error
	})
}

func (r *MotivationRepository) HasEnabled() (bool, error) {
	var count int64
	err := r.DB.Model(&model.Motivation{}).Where("is_enabled = ?", true).Count(&count).Error
	return count > 0, err
}
