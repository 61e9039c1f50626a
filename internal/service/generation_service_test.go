package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/lshigami/Mocktail/internal/dto"
	"github.com/lshigami/Mocktail/internal/model"
)

func interviewCreateReq() dto.InterviewCreateDTO {
	return dto.InterviewCreateDTO{
		JobPosition:   "Backend Engineer",
		JobDesc:       "Go services with PostgreSQL",
		JobExperience: "3",
		CreatedBy:     "dev@example.com",
	}
}

type stubInterviewRepo struct {
	created   []model.Interview
	createErr error
	byMockID  map[string]*model.Interview
}

func (s *stubInterviewRepo) Create(interview *model.Interview) error {
	if s.createErr != nil {
		return s.createErr
	}
	interview.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *interview)
	return nil
}

func (s *stubInterviewRepo) FindByMockID(mockID string) (*model.Interview, error) {
	if iv, ok := s.byMockID[mockID]; ok {
		return iv, nil
	}
	return nil, errors.New("record not found")
}

func (s *stubInterviewRepo) FindAllByCreator(string) ([]model.Interview, error) {
	return s.created, nil
}

func (s *stubInterviewRepo) DeleteByMockID(string) error { return nil }

func questionsJSON(t *testing.T, n int) string {
	t.Helper()
	qs := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, model.Question{
			Question: "Question text",
			Answer:   "Reference answer",
		})
	}
	data, err := json.Marshal(qs)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestGenerateInterviewPersistsQuestionSet(t *testing.T) {
	gemini := &stubGemini{response: "```json\n" + questionsJSON(t, 5) + "\n```"}
	repo := &stubInterviewRepo{}
	svc := NewInterviewGenerationService(gemini, repo, testConfig())

	resp, err := svc.GenerateInterview(context.Background(), interviewCreateReq())
	if err != nil {
		t.Fatalf("GenerateInterview returned error: %v", err)
	}
	if resp.MockID == "" {
		t.Error("expected a generated mock ID")
	}
	if len(resp.Questions) != 5 {
		t.Errorf("expected 5 questions, got %d", len(resp.Questions))
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted interview, got %d", len(repo.created))
	}

	// The stored JSON must round-trip back into the same question set.
	var stored []model.Question
	if err := json.Unmarshal([]byte(repo.created[0].QuestionsJSON), &stored); err != nil {
		t.Fatalf("stored question set does not decode: %v", err)
	}
	if len(stored) != 5 {
		t.Errorf("stored %d questions, want 5", len(stored))
	}
}

func TestGenerateInterviewOracleFailureDoesNotPersist(t *testing.T) {
	gemini := &stubGemini{err: errors.New("connection reset")}
	repo := &stubInterviewRepo{}
	svc := NewInterviewGenerationService(gemini, repo, testConfig())

	if _, err := svc.GenerateInterview(context.Background(), interviewCreateReq()); err == nil {
		t.Fatal("expected error when oracle fails")
	}
	if len(repo.created) != 0 {
		t.Errorf("failed generation must not persist, got %d rows", len(repo.created))
	}
}

func TestGenerateInterviewTooFewQuestionsRejected(t *testing.T) {
	gemini := &stubGemini{response: questionsJSON(t, 3)}
	repo := &stubInterviewRepo{}
	svc := NewInterviewGenerationService(gemini, repo, testConfig())

	if _, err := svc.GenerateInterview(context.Background(), interviewCreateReq()); err == nil {
		t.Fatal("expected error for undersized question set")
	}
	if len(repo.created) != 0 {
		t.Errorf("rejected set must not persist, got %d rows", len(repo.created))
	}
}

func TestGenerateFromResumeCountsRounds(t *testing.T) {
	qs := make([]model.Question, 0, 15)
	for i := 0; i < 8; i++ {
		qs = append(qs, model.Question{Question: "T", Answer: "A", Round: "Technical", QuestionNumber: i + 1})
	}
	for i := 0; i < 7; i++ {
		qs = append(qs, model.Question{Question: "H", Answer: "A", Round: "HR", QuestionNumber: i + 9})
	}
	data, _ := json.Marshal(qs)

	gemini := &stubGemini{response: string(data)}
	repo := &stubInterviewRepo{}
	svc := NewInterviewGenerationService(gemini, repo, testConfig())

	resp, err := svc.GenerateFromResume(context.Background(), []byte("%PDF-1.4"), "Backend Engineer", "", "dev@example.com")
	if err != nil {
		t.Fatalf("GenerateFromResume returned error: %v", err)
	}
	if resp.Metadata.QuestionCount != 15 {
		t.Errorf("question count = %d, want 15", resp.Metadata.QuestionCount)
	}
	if resp.Metadata.TechnicalQuestions != 8 || resp.Metadata.HRQuestions != 7 {
		t.Errorf("round split = %d/%d, want 8/7", resp.Metadata.TechnicalQuestions, resp.Metadata.HRQuestions)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted interview, got %d", len(repo.created))
	}
	if repo.created[0].JobPosition != "Backend Engineer" {
		t.Errorf("job position = %q", repo.created[0].JobPosition)
	}
}

func TestGenerateFromResumeExtractsProfile(t *testing.T) {
	gemini := &stubGemini{response: questionsJSON(t, 12)}
	svc := NewInterviewGenerationService(gemini, &stubInterviewRepo{}, testConfig())

	resumeText := "Senior developer with Go, PostgreSQL and Docker.\nBachelor of Science in Computer Science, 2019."
	resp, err := svc.GenerateFromResume(context.Background(), []byte("%PDF-1.4"), "Backend Engineer", resumeText, "")
	if err != nil {
		t.Fatalf("GenerateFromResume returned error: %v", err)
	}
	if len(resp.Metadata.Skills) == 0 {
		t.Error("expected skills extracted from resume text")
	}
	if len(resp.Metadata.Education) == 0 {
		t.Error("expected education extracted from resume text")
	}
}

func TestGenerateFromResumeBelowFloorRejected(t *testing.T) {
	// Floor for a 15-question resume set is 10.
	gemini := &stubGemini{response: questionsJSON(t, 9)}
	repo := &stubInterviewRepo{}
	svc := NewInterviewGenerationService(gemini, repo, testConfig())

	if _, err := svc.GenerateFromResume(context.Background(), []byte("%PDF-1.4"), "Backend Engineer", "", ""); err == nil {
		t.Fatal("expected error for resume set below floor")
	}
	if len(repo.created) != 0 {
		t.Errorf("rejected set must not persist, got %d rows", len(repo.created))
	}
}
