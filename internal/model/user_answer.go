package model

import (
	"time"

	"gorm.io/gorm"
)

// UserAnswer is one graded answer row. Rows are insert-only; retried questions
// produce additional rows for the same (MockIDRef, Question) pair and the
// summary keeps only the most recent batch.
type UserAnswer struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	MockIDRef     string         `json:"mock_id_ref" gorm:"not null;index"`
	Question      string         `json:"question" gorm:"type:text;not null"`
	CorrectAnswer string         `json:"correct_answer" gorm:"type:text"`
	UserAnswer    string         `json:"user_answer" gorm:"type:text"`
	Feedback      string         `json:"feedback" gorm:"type:text"`
	Rating        int            `json:"rating" gorm:"not null"`
	UserEmail     string         `json:"user_email"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
