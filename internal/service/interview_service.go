package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Mocktail/internal/dto"
	"github.com/lshigami/Mocktail/internal/model"
	"github.com/lshigami/Mocktail/internal/repository"
	"github.com/rs/zerolog/log"
)

// InterviewService reads and deletes stored sessions and aggregates their
// graded answers into a score summary.
type InterviewService interface {
	GetInterview(mockID string) (*dto.InterviewResponseDTO, error)
	GetQuestions(mockID string) ([]model.Question, *model.Interview, error)
	ListInterviews(createdBy string) ([]dto.InterviewSummaryDTO, error)
	DeleteInterview(mockID string) error
	GetFeedbackSummary(mockID string) (*dto.FeedbackSummaryDTO, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	answerRepo    repository.UserAnswerRepository
}

func NewInterviewService(interviewRepo repository.InterviewRepository, answerRepo repository.UserAnswerRepository) InterviewService {
	return &interviewService{interviewRepo: interviewRepo, answerRepo: answerRepo}
}

func (s *interviewService) GetInterview(mockID string) (*dto.InterviewResponseDTO, error) {
	questions, interview, err := s.GetQuestions(mockID)
	if err != nil {
		return nil, err
	}

	resp := &dto.InterviewResponseDTO{
		MockID:        interview.MockID,
		JobPosition:   interview.JobPosition,
		JobDesc:       interview.JobDesc,
		JobExperience: interview.JobExperience,
		CreatedBy:     interview.CreatedBy,
		CreatedAt:     interview.CreatedAt,
	}
	copier.Copy(&resp.Questions, &questions)
	return resp, nil
}

// GetQuestions loads a session and decodes its stored question set.
func (s *interviewService) GetQuestions(mockID string) ([]model.Question, *model.Interview, error) {
	interview, err := s.interviewRepo.FindByMockID(mockID)
	if err != nil {
		log.Warn().Err(err).Str("mockID", mockID).Msg("Interview not found")
		return nil, nil, fmt.Errorf("interview not found with id %s: %w", mockID, err)
	}

	var questions []model.Question
	if err := json.Unmarshal([]byte(interview.QuestionsJSON), &questions); err != nil {
		log.Error().Err(err).Str("mockID", mockID).Msg("Stored question set is corrupt")
		return nil, nil, fmt.Errorf("stored question set for %s is not valid JSON: %w", mockID, err)
	}
	return questions, interview, nil
}

func (s *interviewService) ListInterviews(createdBy string) ([]dto.InterviewSummaryDTO, error) {
	interviews, err := s.interviewRepo.FindAllByCreator(createdBy)
	if err != nil {
		log.Error().Err(err).Str("createdBy", createdBy).Msg("Failed to list interviews")
		return nil, fmt.Errorf("error fetching interviews: %w", err)
	}

	summaries := make([]dto.InterviewSummaryDTO, 0, len(interviews))
	for _, iv := range interviews {
		var questions []model.Question
		// A corrupt row still lists, just with a zero count.
		json.Unmarshal([]byte(iv.QuestionsJSON), &questions)
		summaries = append(summaries, dto.InterviewSummaryDTO{
			MockID:        iv.MockID,
			JobPosition:   iv.JobPosition,
			JobExperience: iv.JobExperience,
			CreatedBy:     iv.CreatedBy,
			QuestionCount: len(questions),
			CreatedAt:     iv.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *interviewService) DeleteInterview(mockID string) error {
	if _, err := s.interviewRepo.FindByMockID(mockID); err != nil {
		return fmt.Errorf("interview not found with id %s: %w", mockID, err)
	}
	if err := s.interviewRepo.DeleteByMockID(mockID); err != nil {
		log.Error().Err(err).Str("mockID", mockID).Msg("Failed to delete interview")
		return fmt.Errorf("error deleting interview: %w", err)
	}
	return nil
}

// GetFeedbackSummary aggregates graded answers for a session. When a session
// holds answers from several attempts, only the rows sharing the most recent
// creation date count as "the" completed attempt; older batches are dropped
// from the score.
func (s *interviewService) GetFeedbackSummary(mockID string) (*dto.FeedbackSummaryDTO, error) {
	if _, err := s.interviewRepo.FindByMockID(mockID); err != nil {
		return nil, fmt.Errorf("interview not found with id %s: %w", mockID, err)
	}

	answers, err := s.answerRepo.FindByMockID(mockID)
	if err != nil {
		log.Error().Err(err).Str("mockID", mockID).Msg("Failed to fetch graded answers")
		return nil, fmt.Errorf("error fetching feedback: %w", err)
	}

	latest := latestAttempt(answers)

	summary := &dto.FeedbackSummaryDTO{
		MockID:      mockID,
		AnswerCount: len(latest),
		Answers:     make([]dto.AnswerResponseDTO, 0, len(latest)),
	}

	ratingSum := 0
	for _, ans := range latest {
		var ansDTO dto.AnswerResponseDTO
		copier.Copy(&ansDTO, &ans)
		summary.Answers = append(summary.Answers, ansDTO)
		ratingSum += ans.Rating
	}
	if len(latest) > 0 {
		summary.OverallRating = float64(ratingSum) / float64(len(latest))
	}
	return summary, nil
}

// latestAttempt keeps only the rows created on the most recent calendar date.
func latestAttempt(answers []model.UserAnswer) []model.UserAnswer {
	if len(answers) == 0 {
		return answers
	}

	var maxDate time.Time
	for _, ans := range answers {
		day := truncateToDay(ans.CreatedAt)
		if day.After(maxDate) {
			maxDate = day
		}
	}

	latest := make([]model.UserAnswer, 0, len(answers))
	for _, ans := range answers {
		if truncateToDay(ans.CreatedAt).Equal(maxDate) {
			latest = append(latest, ans)
		}
	}
	return latest
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
