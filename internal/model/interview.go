package model

import (
	"time"

	"gorm.io/gorm"
)

// Interview is one practice session: a fixed question set generated up front,
// identified externally by its opaque MockID token.
type Interview struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	MockID        string         `json:"mock_id" gorm:"not null;uniqueIndex"`
	QuestionsJSON string         `json:"questions_json" gorm:"type:text;not null"`
	JobPosition   string         `json:"job_position" gorm:"not null"`
	JobDesc       string         `json:"job_desc" gorm:"type:text"`
	JobExperience string         `json:"job_experience"`
	CreatedBy     string         `json:"created_by" gorm:"index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
