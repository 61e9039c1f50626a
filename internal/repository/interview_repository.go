package repository

import (
	"github.com/lshigami/Mocktail/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(interview *model.Interview) error
	FindByMockID(mockID string) (*model.Interview, error)
	FindAllByCreator(createdBy string) ([]model.Interview, error)
	DeleteByMockID(mockID string) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *model.Interview) error {
	return r.db.Create(interview).Error
}

func (r *interviewRepository) FindByMockID(mockID string) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.Where("mock_id = ?", mockID).First(&interview).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindAllByCreator(createdBy string) ([]model.Interview, error) {
	var interviews []model.Interview
	query := r.db.Order("created_at desc")
	if createdBy != "" {
		query = query.Where("created_by = ?", createdBy)
	}
	if err := query.Find(&interviews).Error; err != nil {
		return nil, err
	}
	return interviews, nil
}

// DeleteByMockID removes a session and all answer rows recorded against it.
func (r *interviewRepository) DeleteByMockID(mockID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mock_id_ref = ?", mockID).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		return tx.Where("mock_id = ?", mockID).Delete(&model.Interview{}).Error
	})
}
