package service

import (
	"testing"

	"github.com/lshigami/Mocktail/internal/dto"
	"github.com/lshigami/Mocktail/internal/model"
)

type stubFeedbackRepo struct {
	created []model.UserFeedback
	lastQ   [2]string
	rows    []model.UserFeedback
}

func (s *stubFeedbackRepo) Create(feedback *model.UserFeedback) error {
	feedback.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *feedback)
	return nil
}

func (s *stubFeedbackRepo) FindAll(status, feedbackType string) ([]model.UserFeedback, error) {
	s.lastQ = [2]string{status, feedbackType}
	return s.rows, nil
}

func TestSubmitFeedbackDefaultsWorkflowFields(t *testing.T) {
	repo := &stubFeedbackRepo{}
	svc := NewUserFeedbackService(repo)

	resp, err := svc.SubmitFeedback(dto.UserFeedbackCreateDTO{
		UserName:     "Dana",
		UserEmail:    "dana@example.com",
		FeedbackType: "bug",
		FeedbackText: "The resume upload hangs on large files.",
	})
	if err != nil {
		t.Fatalf("SubmitFeedback returned error: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 stored row, got %d", len(repo.created))
	}

	row := repo.created[0]
	if row.Status != "pending" || row.Priority != "medium" {
		t.Errorf("workflow defaults wrong: status=%q priority=%q", row.Status, row.Priority)
	}
	if resp.FeedbackType != "bug" || resp.FeedbackText == "" {
		t.Errorf("response = %+v", resp)
	}
}

func TestListFeedbackPassesFilters(t *testing.T) {
	repo := &stubFeedbackRepo{rows: []model.UserFeedback{
		{FeedbackType: "bug", Status: "pending"},
		{FeedbackType: "bug", Status: "pending"},
	}}
	svc := NewUserFeedbackService(repo)

	resp, err := svc.ListFeedback("pending", "bug")
	if err != nil {
		t.Fatalf("ListFeedback returned error: %v", err)
	}
	if resp.Count != 2 || len(resp.Feedbacks) != 2 {
		t.Errorf("count = %d, feedbacks = %d", resp.Count, len(resp.Feedbacks))
	}
	if repo.lastQ != [2]string{"pending", "bug"} {
		t.Errorf("filters not forwarded: %v", repo.lastQ)
	}
}
