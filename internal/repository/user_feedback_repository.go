package repository

import (
	"github.com/lshigami/Mocktail/internal/model"
	"gorm.io/gorm"
)

type UserFeedbackRepository interface {
	Create(feedback *model.UserFeedback) error
	FindAll(status, feedbackType string) ([]model.UserFeedback, error)
}

type userFeedbackRepository struct {
	db *gorm.DB
}

func NewUserFeedbackRepository(db *gorm.DB) UserFeedbackRepository {
	return &userFeedbackRepository{db: db}
}

func (r *userFeedbackRepository) Create(feedback *model.UserFeedback) error {
	return r.db.Create(feedback).Error
}

func (r *userFeedbackRepository) FindAll(status, feedbackType string) ([]model.UserFeedback, error) {
	var feedbacks []model.UserFeedback
	query := r.db.Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if feedbackType != "" {
		query = query.Where("feedback_type = ?", feedbackType)
	}
	if err := query.Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}
