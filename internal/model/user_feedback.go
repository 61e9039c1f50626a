package model

import (
	"time"

	"gorm.io/gorm"
)

// UserFeedback is product feedback submitted from the site, unrelated to
// interview grading.
type UserFeedback struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserName     string         `json:"user_name"`
	UserEmail    string         `json:"user_email"`
	FeedbackType string         `json:"feedback_type" gorm:"not null"` // "general", "feature", "bug", "improvement"
	FeedbackText string         `json:"feedback_text" gorm:"type:text;not null"`
	Status       string         `json:"status" gorm:"default:'pending'"`
	Priority     string         `json:"priority" gorm:"default:'medium'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
