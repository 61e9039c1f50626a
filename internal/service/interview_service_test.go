package service

import (
	"testing"
	"time"

	"github.com/lshigami/Mocktail/internal/model"
)

func day(yyyy int, mm time.Month, dd, hour int) time.Time {
	return time.Date(yyyy, mm, dd, hour, 30, 0, 0, time.UTC)
}

func answerRow(rating int, createdAt time.Time) model.UserAnswer {
	return model.UserAnswer{
		MockIDRef: "mock-1",
		Question:  "Q",
		Rating:    rating,
		CreatedAt: createdAt,
	}
}

func storedInterview(t *testing.T) *stubInterviewRepo {
	t.Helper()
	return &stubInterviewRepo{
		byMockID: map[string]*model.Interview{
			"mock-1": {
				MockID:        "mock-1",
				JobPosition:   "Backend Engineer",
				QuestionsJSON: questionsJSON(t, 3),
			},
		},
	}
}

func TestGetQuestionsDecodesStoredSet(t *testing.T) {
	svc := NewInterviewService(storedInterview(t), &stubAnswerRepo{})

	questions, interview, err := svc.GetQuestions("mock-1")
	if err != nil {
		t.Fatalf("GetQuestions returned error: %v", err)
	}
	if len(questions) != 3 {
		t.Errorf("question count = %d, want 3", len(questions))
	}
	if interview.JobPosition != "Backend Engineer" {
		t.Errorf("job position = %q", interview.JobPosition)
	}
}

func TestGetQuestionsUnknownInterview(t *testing.T) {
	svc := NewInterviewService(&stubInterviewRepo{}, &stubAnswerRepo{})
	if _, _, err := svc.GetQuestions("nope"); err == nil {
		t.Fatal("expected error for unknown interview")
	}
}

func TestGetQuestionsCorruptStoredSet(t *testing.T) {
	repo := &stubInterviewRepo{
		byMockID: map[string]*model.Interview{
			"mock-1": {MockID: "mock-1", QuestionsJSON: "not json"},
		},
	}
	svc := NewInterviewService(repo, &stubAnswerRepo{})
	if _, _, err := svc.GetQuestions("mock-1"); err == nil {
		t.Fatal("expected error for corrupt stored question set")
	}
}

func TestFeedbackSummaryAveragesLatestAttempt(t *testing.T) {
	answers := &stubAnswerRepo{rows: []model.UserAnswer{
		// An older attempt that must not count.
		answerRow(2, day(2025, time.January, 1, 9)),
		answerRow(3, day(2025, time.January, 1, 10)),
		// The most recent attempt, spread across the day.
		answerRow(8, day(2025, time.January, 5, 8)),
		answerRow(6, day(2025, time.January, 5, 21)),
	}}
	svc := NewInterviewService(storedInterview(t), answers)

	summary, err := svc.GetFeedbackSummary("mock-1")
	if err != nil {
		t.Fatalf("GetFeedbackSummary returned error: %v", err)
	}
	if summary.AnswerCount != 2 {
		t.Fatalf("answer count = %d, want 2 (latest attempt only)", summary.AnswerCount)
	}
	if summary.OverallRating != 7.0 {
		t.Errorf("overall rating = %v, want 7.0", summary.OverallRating)
	}
	for _, ans := range summary.Answers {
		if ans.Rating != 8 && ans.Rating != 6 {
			t.Errorf("answer from an old attempt leaked into the summary: %+v", ans)
		}
	}
}

func TestFeedbackSummaryEmpty(t *testing.T) {
	svc := NewInterviewService(storedInterview(t), &stubAnswerRepo{})

	summary, err := svc.GetFeedbackSummary("mock-1")
	if err != nil {
		t.Fatalf("GetFeedbackSummary returned error: %v", err)
	}
	if summary.AnswerCount != 0 || summary.OverallRating != 0 {
		t.Errorf("empty summary = %+v", summary)
	}
}

func TestFeedbackSummaryUnknownInterview(t *testing.T) {
	svc := NewInterviewService(&stubInterviewRepo{}, &stubAnswerRepo{})
	if _, err := svc.GetFeedbackSummary("nope"); err == nil {
		t.Fatal("expected error for unknown interview")
	}
}

func TestLatestAttemptSingleDay(t *testing.T) {
	rows := []model.UserAnswer{
		answerRow(5, day(2025, time.March, 3, 9)),
		answerRow(7, day(2025, time.March, 3, 17)),
	}
	latest := latestAttempt(rows)
	if len(latest) != 2 {
		t.Errorf("latest attempt size = %d, want 2", len(latest))
	}
}

func TestListInterviewsCountsQuestions(t *testing.T) {
	repo := &stubInterviewRepo{}
	repo.created = []model.Interview{
		{MockID: "a", JobPosition: "Dev", QuestionsJSON: questionsJSON(t, 5)},
		{MockID: "b", JobPosition: "Dev", QuestionsJSON: "corrupt"},
	}
	svc := NewInterviewService(repo, &stubAnswerRepo{})

	summaries, err := svc.ListInterviews("")
	if err != nil {
		t.Fatalf("ListInterviews returned error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summary count = %d, want 2", len(summaries))
	}
	if summaries[0].QuestionCount != 5 {
		t.Errorf("question count = %d, want 5", summaries[0].QuestionCount)
	}
	// Corrupt rows still list, with a zero count.
	if summaries[1].QuestionCount != 0 {
		t.Errorf("corrupt row question count = %d, want 0", summaries[1].QuestionCount)
	}
}
