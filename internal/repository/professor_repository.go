package repository

import (
	"aluno_ai_backend/internal/model"

	"gorm.io/gorm"
)

type ProfessorRepository struct {
	DB *gorm.DB
}

func NewProfessorRepository(db *gorm.DB) *ProfessorRepository {
	return &ProfessorRepository{DB: db}
}

func (r *ProfessorRepository) Create(turn *model.ProfessorTurn) error {
	return r.DB.Create(turn).Error
}

// FindBySession returns the turns of the current session in ask order.
func (r *ProfessorRepository) FindBySession(ra int, sessionID string) ([]model.ProfessorTurn, error) {
	var turns []model.ProfessorTurn
	err := r.DB.Where("ra = ? AND session_id = ?", ra, sessionID).
		Order("id ASC").Find(&turns).Error
	return turns, err
}

// FindBySessionPage returns one page of the session's turns in ask order,
// along with the total turn count.
func (r *ProfessorRepository) FindBySessionPage(ra int, sessionID string, page, limit int) ([]model.ProfessorTurn, int64, error) {
	var total int64
	if err := r.DB.Model(&model.ProfessorTurn{}).
		Where("ra = ? AND session_id = ?", ra, sessionID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var turns []model.ProfessorTurn
	err := r.DB.Where("ra = ? AND session_id = ?", ra, sessionID).
		Order("id ASC").Offset((page - 1) * limit).Limit(limit).Find(&turns).Error
	return turns, total, err
}

// FindByQuestion returns a session's turns for one question only.
func (r *ProfessorRepository) FindByQuestion(ra int, sessionID string, questionNumber int) ([]model.ProfessorTurn, error) {
	var turns []model.ProfessorTurn
	err := r.DB.Where("ra = ? AND session_id = ? AND question_number = ?", ra, sessionID, questionNumber).
		Order("id ASC").Find(&turns).Error
	return turns, err
}
