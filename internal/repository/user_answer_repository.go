package repository

import (
	"github.com/lshigami/Mocktail/internal/model"
	"gorm.io/gorm"
)

type UserAnswerRepository interface {
	Create(answer *model.UserAnswer) error
	FindByMockID(mockID string) ([]model.UserAnswer, error)
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

// Create appends a graded answer row. Rows are never updated in place.
func (r *userAnswerRepository) Create(answer *model.UserAnswer) error {
	return r.db.Create(answer).Error
}

func (r *userAnswerRepository) FindByMockID(mockID string) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	if err := r.db.Where("mock_id_ref = ?", mockID).Order("id ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
