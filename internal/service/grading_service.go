package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/Mocktail/config"
	"github.com/lshigami/Mocktail/internal/model"
	"github.com/lshigami/Mocktail/internal/repository"
	"github.com/rs/zerolog/log"
)

// fallbackFeedback is stored when the oracle fails outright or returns
// nothing usable. The session must always be able to proceed.
const fallbackFeedback = "Your answer has been recorded. Keep practicing to improve your interview skills!"

// genericFeedback is used when the oracle produced a rating but no feedback text.
const genericFeedback = "Good effort! Keep practicing to improve your interview skills."

// GradingService converts a question, reference answer and candidate
// transcript into a persisted graded answer. Grade never fails: oracle and
// parse errors collapse into a neutral fallback grade so session progression
// is never blocked.
type GradingService interface {
	Grade(ctx context.Context, question model.Question, transcript string) (rating int, feedback string)
	GradeAndStore(ctx context.Context, mockID, userEmail string, question model.Question, transcript string) (*model.UserAnswer, error)
}

type gradingService struct {
	gemini     GeminiLLMService
	answerRepo repository.UserAnswerRepository
	cfg        *config.Config
}

func NewGradingService(gemini GeminiLLMService, answerRepo repository.UserAnswerRepository, cfg *config.Config) GradingService {
	return &gradingService{gemini: gemini, answerRepo: answerRepo, cfg: cfg}
}

func (s *gradingService) Grade(ctx context.Context, question model.Question, transcript string) (int, string) {
	prompt := buildGradingPrompt(question, transcript)

	raw, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("question", question.Question).Msg("Grading oracle call failed, using fallback grade")
		return neutralRating, fallbackFeedback
	}

	rating, feedback, err := parseGrade(raw)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse grading response, using fallback grade")
		return neutralRating, fallbackFeedback
	}

	if strings.TrimSpace(feedback) == "" {
		feedback = genericFeedback
	}
	return clampRating(rating), feedback
}

// GradeAndStore grades the transcript and appends the graded answer row.
// Transcripts at or below the minimum length are never written.
func (s *gradingService) GradeAndStore(ctx context.Context, mockID, userEmail string, question model.Question, transcript string) (*model.UserAnswer, error) {
	if len(transcript) <= s.cfg.Interview.MinTranscriptChars {
		log.Info().Str("mockID", mockID).Int("transcriptLen", len(transcript)).Msg("Transcript too short, skipping grading")
		return nil, fmt.Errorf("transcript must be longer than %d characters", s.cfg.Interview.MinTranscriptChars)
	}

	rating, feedback := s.Grade(ctx, question, transcript)

	answer := &model.UserAnswer{
		MockIDRef:     mockID,
		Question:      question.Question,
		CorrectAnswer: question.Answer,
		UserAnswer:    transcript,
		Feedback:      feedback,
		Rating:        rating,
		UserEmail:     userEmail,
	}
	if err := s.answerRepo.Create(answer); err != nil {
		log.Error().Err(err).Str("mockID", mockID).Msg("Failed to persist graded answer")
		return nil, fmt.Errorf("failed to save graded answer: %w", err)
	}
	return answer, nil
}

func buildGradingPrompt(question model.Question, transcript string) string {
	round := question.Round
	if round == "" {
		round = "General"
	}

	var b strings.Builder
	b.WriteString("You are an experienced and empathetic interviewer evaluating a candidate's response. Focus on CONTENT and UNDERSTANDING rather than grammar or speech patterns.\n\n")
	b.WriteString(fmt.Sprintf("Question Type: %s Round Question\n", round))
	b.WriteString(fmt.Sprintf("Question: %s\n", question.Question))
	b.WriteString(fmt.Sprintf("Candidate's Answer: %s\n", transcript))
	b.WriteString(fmt.Sprintf("Expected Answer: %s\n\n", question.Answer))

	b.WriteString(fmt.Sprintf("ROUND-SPECIFIC EVALUATION FOR %s ROUND:\n", strings.ToUpper(round)))
	switch round {
	case "Technical":
		b.WriteString("- Technical accuracy and understanding of concepts\n")
		b.WriteString("- Problem-solving approach and methodology\n")
		b.WriteString("- Knowledge of relevant technologies/tools\n")
		b.WriteString("- Ability to explain technical concepts\n")
		b.WriteString("- Practical experience and implementation details\n")
	case "HR":
		b.WriteString("- Communication skills and clarity of thought\n")
		b.WriteString("- Self-awareness and reflection\n")
		b.WriteString("- Cultural fit and motivation\n")
		b.WriteString("- Leadership and teamwork examples\n")
		b.WriteString("- Career goals and growth mindset\n")
	default:
		b.WriteString("- Overall understanding of the topic\n")
		b.WriteString("- Relevant experience and examples\n")
		b.WriteString("- Clear communication of ideas\n")
		b.WriteString("- Problem-solving approach\n")
	}

	b.WriteString("\nEVALUATION CRITERIA:\n")
	b.WriteString("1. Does the candidate demonstrate understanding of the core concepts?\n")
	b.WriteString("2. Are the key points covered, even if not perfectly articulated?\n")
	b.WriteString("3. Is the answer relevant to the question asked?\n")
	b.WriteString("4. The answer comes from speech-to-text, so ignore minor grammar issues, repetitions, filler words, or incomplete sentences.\n")
	b.WriteString("5. Be encouraging and constructive - this is a learning experience.\n\n")

	b.WriteString("RATING SCALE (1-10) - BE GENEROUS AND ENCOURAGING:\n")
	b.WriteString("- 9-10: Exceptional understanding, comprehensive answer with excellent depth\n")
	b.WriteString("- 7-8: Very good understanding, covers most key points well\n")
	b.WriteString("- 5-6: Good understanding, covers basic concepts adequately\n")
	b.WriteString("- 3-4: Fair understanding, shows some knowledge but has gaps\n")
	b.WriteString("- 1-2: Poor understanding, answer is mostly irrelevant or incorrect\n\n")

	b.WriteString("Please provide a JSON response with two fields:\n")
	b.WriteString("- \"rating\": A number from 1 to 10 based on CONTENT UNDERSTANDING\n")
	b.WriteString("- \"feedback\": Positive, encouraging feedback (2-3 sentences) that starts with what they did well, gives one specific actionable suggestion, and ends with encouragement.\n\n")
	b.WriteString("Remember: This is practice - focus on building confidence and encouraging learning, not perfect answers.\n")

	return b.String()
}
