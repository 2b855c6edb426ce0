package repository

import (
	"aluno_ai_backend/internal/model"

	"gorm.io/gorm"
)

type TutorRepository struct {
	DB *gorm.DB
}

func NewTutorRepository(db *gorm.DB) *TutorRepository {
	return &TutorRepository{DB: db}
}

func (r *TutorRepository) Create(message *model.TutorMessage) error {
	return r.DB.Create(message).Error
}

// FindBySession returns the full conversation of one session in order.
func (r *TutorRepository) FindBySession(ra int, sessionID string) ([]model.TutorMessage, error) {
	var messages []model.TutorMessage
	err := r.DB.Where("ra = ? AND session_id = ?", ra, sessionID).
		Order("id ASC").Find(&messages).Error
	return messages, err
}

// FindRecent returns the last limit messages of a session, oldest first,
// for building the model context window.
func (r *TutorRepository) FindRecent(ra int, sessionID string, limit int) ([]model.TutorMessage, error) {
	var messages []model.TutorMessage
	err := r.DB.Where("ra = ? AND session_id = ?", ra, sessionID).
		Order("id DESC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
