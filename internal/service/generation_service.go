package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Mocktail/config"
	"github.com/lshigami/Mocktail/internal/dto"
	"github.com/lshigami/Mocktail/internal/model"
	"github.com/lshigami/Mocktail/internal/repository"
	"github.com/lshigami/Mocktail/internal/resume"
	"github.com/rs/zerolog/log"
)

// InterviewGenerationService creates new sessions by asking the oracle for a
// question set. Generation failures are recoverable: nothing is persisted and
// the caller may retry.
type InterviewGenerationService interface {
	GenerateInterview(ctx context.Context, req dto.InterviewCreateDTO) (*dto.InterviewResponseDTO, error)
	GenerateFromResume(ctx context.Context, pdfData []byte, jobPosition, resumeText, createdBy string) (*dto.ResumeInterviewResponseDTO, error)
}

type interviewGenerationService struct {
	gemini        GeminiLLMService
	interviewRepo repository.InterviewRepository
	cfg           *config.Config
}

func NewInterviewGenerationService(gemini GeminiLLMService, interviewRepo repository.InterviewRepository, cfg *config.Config) InterviewGenerationService {
	return &interviewGenerationService{gemini: gemini, interviewRepo: interviewRepo, cfg: cfg}
}

func (s *interviewGenerationService) GenerateInterview(ctx context.Context, req dto.InterviewCreateDTO) (*dto.InterviewResponseDTO, error) {
	prompt := buildGenerationPrompt(req.JobPosition, req.JobDesc, req.JobExperience, s.cfg.Interview.QuestionCount)

	raw, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("jobPosition", req.JobPosition).Msg("Question generation oracle call failed")
		return nil, fmt.Errorf("failed to generate interview questions: %w", err)
	}

	questions, err := parseQuestionSet(raw, s.cfg.Interview.MinQuestionCount)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Generated question set rejected")
		return nil, fmt.Errorf("failed to parse generated questions: %w", err)
	}

	interview, err := s.persistInterview(questions, req.JobPosition, req.JobDesc, req.JobExperience, req.CreatedBy)
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

// GenerateFromResume sends the PDF inline to the oracle with the two-round
// prompt. The optional plain-text rendition of the resume only feeds the
// heuristic skills scan; the oracle reads the PDF itself.
func (s *interviewGenerationService) GenerateFromResume(ctx context.Context, pdfData []byte, jobPosition, resumeText, createdBy string) (*dto.ResumeInterviewResponseDTO, error) {
	prompt := buildResumePrompt(jobPosition, s.cfg.Interview.ResumeQuestionCount)

	raw, err := s.gemini.GenerateFromPDF(ctx, pdfData, prompt)
	if err != nil {
		log.Error().Err(err).Str("jobPosition", jobPosition).Msg("Resume question generation oracle call failed")
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	// Resume sets are larger, so the floor is higher than for plain interviews.
	minCount := s.cfg.Interview.ResumeQuestionCount * 2 / 3
	if minCount < s.cfg.Interview.MinQuestionCount {
		minCount = s.cfg.Interview.MinQuestionCount
	}
	questions, err := parseQuestionSet(raw, minCount)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Resume question set rejected")
		return nil, fmt.Errorf("failed to parse interview questions from AI response: %w", err)
	}

	interview, err := s.persistInterview(questions, jobPosition, "Generated from resume", "", createdBy)
	if err != nil {
		return nil, err
	}

	meta := dto.ResumeMeta{QuestionCount: len(questions)}
	for _, q := range questions {
		switch q.Round {
		case "Technical":
			meta.TechnicalQuestions++
		case "HR":
			meta.HRQuestions++
		}
	}
	if resumeText != "" {
		profile := resume.Extract(resumeText)
		meta.Skills = profile.Skills
		meta.Education = profile.Education
	}

	resp := &dto.ResumeInterviewResponseDTO{MockID: interview.MockID, Metadata: meta}
	copier.Copy(&resp.Questions, &questions)
	return resp, nil
}

func (s *interviewGenerationService) persistInterview(questions []model.Question, jobPosition, jobDesc, jobExperience, createdBy string) (*model.Interview, error) {
	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode question set: %w", err)
	}

	interview := &model.Interview{
		MockID:        uuid.NewString(),
		QuestionsJSON: string(questionsJSON),
		JobPosition:   jobPosition,
		JobDesc:       jobDesc,
		JobExperience: jobExperience,
		CreatedBy:     createdBy,
	}
	if err := s.interviewRepo.Create(interview); err != nil {
		log.Error().Err(err).Msg("Failed to create interview in database")
		return nil, fmt.Errorf("database error creating interview: %w", err)
	}
	log.Info().Str("mockID", interview.MockID).Int("questionCount", len(questions)).Msg("Interview created")
	return interview, nil
}

func buildGenerationPrompt(jobPosition, jobDesc, jobExperience string, count int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Job role: %s\n", jobPosition))
	b.WriteString(fmt.Sprintf("Job description: %s\n", jobDesc))
	b.WriteString(fmt.Sprintf("Years of experience: %s\n\n", jobExperience))
	b.WriteString(fmt.Sprintf("Based on this information, give me %d interview questions with answers in JSON format.\n", count))
	b.WriteString("Return ONLY a JSON array where each element has \"question\" and \"answer\" fields.\n")
	return b.String()
}

func buildResumePrompt(jobPosition string, count int) string {
	technical := count * 8 / 15
	hr := count - technical

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Analyze this resume PDF and generate exactly %d comprehensive interview questions for a %s position.\n\n", count, jobPosition))
	b.WriteString(fmt.Sprintf("ROUND 1 - TECHNICAL ROUND (%d questions):\n", technical))
	b.WriteString("Ask about concepts and technologies from the resume, how specific features were implemented in their projects, and their problem-solving approach. Do NOT ask the candidate to write code.\n\n")
	b.WriteString(fmt.Sprintf("ROUND 2 - HR ROUND (%d questions):\n", hr))
	b.WriteString("Ask short, conversational questions about career motivation, personal experiences and challenges, interest in the role, and soft skills.\n\n")
	b.WriteString("Return the questions as a JSON array in this exact shape:\n")
	b.WriteString(`[{"question": "...", "answer": "Expected answer or key points to look for", "round": "Technical", "questionNumber": 1}]`)
	b.WriteString("\n\nMake sure to reference specific skills, projects, and experiences from the resume, ")
	b.WriteString(fmt.Sprintf("return exactly %d Technical questions followed by %d HR questions, and return valid JSON only.\n", technical, hr))
	return b.String()
}
