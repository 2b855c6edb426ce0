package model

import (
	"time"
)

// TutorMessage is one message in the general tutor (LU) conversation log.
type TutorMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RA        int       `gorm:"index" json:"ra"`
	SessionID string    `gorm:"size:50;index" json:"sessionId"`
	Role      string    `gorm:"size:20;not null" json:"role"` // user or assistant
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (TutorMessage) TableName() string {
	return "tutor_messages"
}
