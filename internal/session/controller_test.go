package session

import (
	"context"
	"sync"
	"testing"

	"github.com/lshigami/Mocktail/internal/model"
)

// fakeGrader records GradeAndStore calls instead of hitting a database.
type fakeGrader struct {
	mu    sync.Mutex
	calls []gradeCall
}

type gradeCall struct {
	mockID     string
	question   model.Question
	transcript string
}

func (g *fakeGrader) GradeAndStore(_ context.Context, mockID, _ string, question model.Question, transcript string) (*model.UserAnswer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, gradeCall{mockID: mockID, question: question, transcript: transcript})
	return &model.UserAnswer{MockIDRef: mockID, Rating: 7}, nil
}

func (g *fakeGrader) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func threeQuestions() []model.Question {
	return []model.Question{
		{Question: "Q0", Answer: "A0"},
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}
}

func newTestController(t *testing.T, grader Grader) *Controller {
	t.Helper()
	ctrl, err := NewController("mock-1", "dev@example.com", threeQuestions(), grader, 10)
	if err != nil {
		t.Fatalf("NewController returned error: %v", err)
	}
	return ctrl
}

func TestNewControllerRejectsEmptyQuestionSet(t *testing.T) {
	if _, err := NewController("mock-1", "", nil, &fakeGrader{}, 10); err == nil {
		t.Fatal("expected error for empty question set")
	}
}

func TestAdvanceWalksToCompletion(t *testing.T) {
	ctrl := newTestController(t, &fakeGrader{})

	if snap := ctrl.Snapshot(); snap.State != StateInProgress || snap.Index != 0 {
		t.Fatalf("fresh session state = %+v", snap)
	}

	ctrl.Advance()
	ctrl.Advance()
	if snap := ctrl.Snapshot(); snap.Index != 2 || snap.State != StateInProgress {
		t.Fatalf("after two advances: %+v", snap)
	}

	// Past the last question the session completes.
	ctrl.Advance()
	snap := ctrl.Snapshot()
	if snap.State != StateCompleted {
		t.Fatalf("state = %v, want completed", snap.State)
	}
	if snap.Current != nil {
		t.Error("completed session must not expose a current question")
	}

	// Completed is terminal; further navigation is a no-op.
	ctrl.Advance()
	ctrl.Retreat()
	if snap := ctrl.Snapshot(); snap.State != StateCompleted {
		t.Errorf("state after extra navigation = %v", snap.State)
	}
	if err := ctrl.JumpTo(1); err == nil {
		t.Error("expected JumpTo to fail on a completed session")
	}
}

func TestRetreatStopsAtFirstQuestion(t *testing.T) {
	ctrl := newTestController(t, &fakeGrader{})

	ctrl.Retreat()
	if snap := ctrl.Snapshot(); snap.Index != 0 {
		t.Errorf("retreat at index 0 moved to %d", snap.Index)
	}

	ctrl.Advance()
	ctrl.Retreat()
	if snap := ctrl.Snapshot(); snap.Index != 0 {
		t.Errorf("index = %d, want 0", snap.Index)
	}
}

func TestJumpToBounds(t *testing.T) {
	ctrl := newTestController(t, &fakeGrader{})

	if err := ctrl.JumpTo(2); err != nil {
		t.Fatalf("JumpTo(2) returned error: %v", err)
	}
	if snap := ctrl.Snapshot(); snap.Index != 2 {
		t.Errorf("index = %d, want 2", snap.Index)
	}

	if err := ctrl.JumpTo(3); err == nil {
		t.Error("expected error for index past the end")
	}
	if err := ctrl.JumpTo(-1); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestStopRecordingGradesTranscript(t *testing.T) {
	grader := &fakeGrader{}
	ctrl := newTestController(t, grader)

	if err := ctrl.StartRecording(); err != nil {
		t.Fatalf("StartRecording returned error: %v", err)
	}
	if err := ctrl.PushFragment("A slice is a view over "); err != nil {
		t.Fatalf("PushFragment returned error: %v", err)
	}
	if err := ctrl.PushFragment("a backing array."); err != nil {
		t.Fatalf("PushFragment returned error: %v", err)
	}

	ctrl.StopRecording()
	ctrl.WaitGrading()

	if grader.callCount() != 1 {
		t.Fatalf("grade calls = %d, want 1", grader.callCount())
	}
	call := grader.calls[0]
	if call.transcript != "A slice is a view over a backing array." {
		t.Errorf("transcript = %q", call.transcript)
	}
	if call.question.Question != "Q0" {
		t.Errorf("graded question = %q, want Q0", call.question.Question)
	}

	// The buffer was consumed by the grade.
	if snap := ctrl.Snapshot(); snap.TranscriptChars != 0 {
		t.Errorf("transcript chars after stop = %d, want 0", snap.TranscriptChars)
	}
}

func TestStopRecordingIsIdempotent(t *testing.T) {
	grader := &fakeGrader{}
	ctrl := newTestController(t, grader)

	if err := ctrl.StartRecording(); err != nil {
		t.Fatal(err)
	}
	if err := ctrl.PushFragment("a transcript long enough to grade"); err != nil {
		t.Fatal(err)
	}

	ctrl.StopRecording()
	ctrl.StopRecording()
	ctrl.StopRecording()
	ctrl.WaitGrading()

	if grader.callCount() != 1 {
		t.Errorf("grade calls = %d, want exactly 1", grader.callCount())
	}
}

func TestStopRecordingShortTranscriptNotGraded(t *testing.T) {
	grader := &fakeGrader{}
	ctrl := newTestController(t, grader)

	if err := ctrl.StartRecording(); err != nil {
		t.Fatal(err)
	}
	// Ten bytes, right at the threshold.
	if err := ctrl.PushFragment("ten chars!"); err != nil {
		t.Fatal(err)
	}

	ctrl.StopRecording()
	ctrl.WaitGrading()

	if grader.callCount() != 0 {
		t.Errorf("grade calls = %d, want 0 for a short transcript", grader.callCount())
	}
}

func TestNavigationClearsTranscript(t *testing.T) {
	grader := &fakeGrader{}
	ctrl := newTestController(t, grader)

	if err := ctrl.StartRecording(); err != nil {
		t.Fatal(err)
	}
	if err := ctrl.PushFragment("carried over from question zero"); err != nil {
		t.Fatal(err)
	}

	// Moving on without stopping discards the capture.
	ctrl.Advance()
	ctrl.WaitGrading()

	snap := ctrl.Snapshot()
	if snap.Index != 1 {
		t.Fatalf("index = %d, want 1", snap.Index)
	}
	if snap.Recording {
		t.Error("recording must stop on navigation")
	}
	if snap.TranscriptChars != 0 {
		t.Errorf("transcript chars = %d, want 0 after navigation", snap.TranscriptChars)
	}
	if grader.callCount() != 0 {
		t.Errorf("navigation must not grade, got %d calls", grader.callCount())
	}
}

func TestStartRecordingAfterCompletionFails(t *testing.T) {
	ctrl := newTestController(t, &fakeGrader{})
	ctrl.Advance()
	ctrl.Advance()
	ctrl.Advance() // completes

	if err := ctrl.StartRecording(); err == nil {
		t.Error("expected StartRecording to fail on a completed session")
	}
}

func TestMarkUnsupportedDisablesRecording(t *testing.T) {
	ctrl := newTestController(t, &fakeGrader{})
	ctrl.MarkUnsupported()

	if err := ctrl.StartRecording(); err == nil {
		t.Fatal("expected StartRecording to fail after MarkUnsupported")
	}

	// Navigation still works without capture.
	ctrl.Advance()
	if snap := ctrl.Snapshot(); snap.Index != 1 {
		t.Errorf("index = %d, want 1", snap.Index)
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(&fakeGrader{}, 10)

	if _, err := m.Get("absent"); err == nil {
		t.Error("expected error for unknown session")
	}

	first, err := m.Start("mock-1", "", threeQuestions())
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	got, err := m.Get("mock-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != first {
		t.Error("Get returned a different controller")
	}

	// Starting again replaces the session at question zero.
	first.Advance()
	second, err := m.Start("mock-1", "", threeQuestions())
	if err != nil {
		t.Fatalf("restart returned error: %v", err)
	}
	if second == first {
		t.Error("restart must build a fresh controller")
	}
	if snap := second.Snapshot(); snap.Index != 0 {
		t.Errorf("restarted session index = %d, want 0", snap.Index)
	}

	m.End("mock-1")
	if _, err := m.Get("mock-1"); err == nil {
		t.Error("expected error after End")
	}
}
