package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Mocktail/internal/dto"
	"github.com/lshigami/Mocktail/internal/model"
	"github.com/lshigami/Mocktail/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserFeedbackService stores and lists product feedback from the site.
type UserFeedbackService interface {
	SubmitFeedback(req dto.UserFeedbackCreateDTO) (*dto.UserFeedbackResponseDTO, error)
	ListFeedback(status, feedbackType string) (*dto.UserFeedbackListDTO, error)
}

type userFeedbackService struct {
	feedbackRepo repository.UserFeedbackRepository
}

func NewUserFeedbackService(feedbackRepo repository.UserFeedbackRepository) UserFeedbackService {
	return &userFeedbackService{feedbackRepo: feedbackRepo}
}

func (s *userFeedbackService) SubmitFeedback(req dto.UserFeedbackCreateDTO) (*dto.UserFeedbackResponseDTO, error) {
	feedback := &model.UserFeedback{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		FeedbackType: req.FeedbackType,
		FeedbackText: req.FeedbackText,
		Status:       "pending",
		Priority:     "medium",
	}
	if err := s.feedbackRepo.Create(feedback); err != nil {
		log.Error().Err(err).Msg("Failed to store user feedback")
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}

	var resp dto.UserFeedbackResponseDTO
	copier.Copy(&resp, feedback)
	return &resp, nil
}

func (s *userFeedbackService) ListFeedback(status, feedbackType string) (*dto.UserFeedbackListDTO, error) {
	feedbacks, err := s.feedbackRepo.FindAll(status, feedbackType)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list user feedback")
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}

	resp := &dto.UserFeedbackListDTO{Count: len(feedbacks)}
	copier.Copy(&resp.Feedbacks, &feedbacks)
	return resp, nil
}
