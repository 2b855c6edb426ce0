package model

import (
	"time"
)

// ProfessorTurn stores one question/answer exchange with the AI professor,
// scoped to a question number. SessionID marks session boundaries so the UI
// can show only the current session's conversation.
type ProfessorTurn struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RA             int       `gorm:"index" json:"ra"`
	SessionID      string    `gorm:"size:50;index" json:"sessionId"`
	QuestionNumber int       `gorm:"index" json:"questionNumber"`
	Subject        string    `gorm:"size:20" json:"subject"`
	Question       string    `gorm:"type:text;not null" json:"question"`
	Answer         string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt      time.Time `gorm:"index" json:"createdAt"`
}

func (ProfessorTurn) TableName() string {
	return "professor_turns"
}
