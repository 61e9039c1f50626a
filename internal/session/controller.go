package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/lshigami/Mocktail/internal/model"
	"github.com/rs/zerolog/log"
)

// State names the phases of a live practice session. Setup is not modeled
// here: a Controller only exists once a question set has been generated.
type State string

const (
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

// Grader persists a graded answer for a transcript. Implementations must
// never block session progression; see the grading service.
type Grader interface {
	GradeAndStore(ctx context.Context, mockID, userEmail string, question model.Question, transcript string) (*model.UserAnswer, error)
}

// Controller is the session state machine. It owns the question index, the
// capture recorder and the answer accumulator, and triggers grading when a
// recording stops with enough transcript behind it. All session state lives
// here, passed to subcomponents explicitly.
type Controller struct {
	mockID    string
	userEmail string
	questions []model.Question
	grader    Grader
	minChars  int

	mu       sync.Mutex
	state    State
	index    int
	grading  bool // one grading in flight at a time, gated by stop
	inflight sync.WaitGroup

	rec *Recorder
}

// Snapshot is a point-in-time view of the controller for the API layer.
type Snapshot struct {
	MockID          string
	State           State
	Index           int
	QuestionCount   int
	Current         *model.Question
	Recording       bool
	TranscriptChars int
}

// NewController builds a session over a non-empty question set, starting at
// the first question.
func NewController(mockID, userEmail string, questions []model.Question, grader Grader, minChars int) (*Controller, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("session %s has no questions", mockID)
	}
	return &Controller{
		mockID:    mockID,
		userEmail: userEmail,
		questions: questions,
		grader:    grader,
		minChars:  minChars,
		state:     StateInProgress,
		rec:       NewRecorder(&Accumulator{}),
	}, nil
}

// Advance moves to the next question, or to Completed past the last one.
// Skipping an unanswered question is allowed. Advance after Completed is a
// no-op.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateCompleted {
		return
	}
	if c.index+1 < len(c.questions) {
		c.moveTo(c.index + 1)
		return
	}
	c.rec.Stop()
	c.rec.ResetTranscript()
	c.state = StateCompleted
	log.Info().Str("mockID", c.mockID).Msg("Session completed")
}

// Retreat moves back one question; a no-op on the first question or after
// completion.
func (c *Controller) Retreat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateCompleted || c.index == 0 {
		return
	}
	c.moveTo(c.index - 1)
}

// JumpTo moves directly to a question by index.
func (c *Controller) JumpTo(k int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateCompleted {
		return fmt.Errorf("session %s is completed", c.mockID)
	}
	if k < 0 || k >= len(c.questions) {
		return fmt.Errorf("question index %d out of range [0,%d)", k, len(c.questions))
	}
	c.moveTo(k)
	return nil
}

// moveTo changes the active question; the caller holds the lock. Capture is
// stopped and the buffer cleared so fragments can never leak across
// questions. An in-flight grading for the previous question is left to
// finish; its row carries its own question text.
func (c *Controller) moveTo(k int) {
	c.rec.Stop()
	c.rec.ResetTranscript()
	c.index = k
	c.grading = false
}

// StartRecording begins speech capture for the active question.
func (c *Controller) StartRecording() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateCompleted {
		return fmt.Errorf("session %s is completed", c.mockID)
	}
	return c.rec.Start()
}

// PushFragment appends a finalized transcript fragment.
func (c *Controller) PushFragment(text string) error {
	return c.rec.Push(text)
}

// PushInterim stores the latest provisional transcript.
func (c *Controller) PushInterim(text string) error {
	return c.rec.PushInterim(text)
}

// MarkUnsupported permanently disables recording for this session.
func (c *Controller) MarkUnsupported() {
	c.rec.Stop()
	c.rec.MarkUnsupported()
}

// StopRecording ends capture and, when the accumulated transcript is long
// enough, grades it asynchronously. The grading request is not cancelled by
// later navigation; it persists its own row whenever it completes. Stopping
// when already stopped does nothing and never produces a duplicate grade.
func (c *Controller) StopRecording() {
	c.mu.Lock()
	defer c.mu.Unlock()

	wasRecording := c.rec.Recording()
	c.rec.Stop()
	if !wasRecording {
		return
	}

	transcript := c.rec.Transcript()
	if len(transcript) <= c.minChars {
		log.Info().Str("mockID", c.mockID).Int("transcriptLen", len(transcript)).Msg("Recording too short, nothing to grade")
		return
	}
	if c.grading {
		return
	}
	c.grading = true
	c.rec.ResetTranscript()

	question := c.questions[c.index]
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		_, err := c.grader.GradeAndStore(context.Background(), c.mockID, c.userEmail, question, transcript)
		c.mu.Lock()
		c.grading = false
		c.mu.Unlock()
		if err != nil {
			log.Error().Err(err).Str("mockID", c.mockID).Str("question", question.Question).Msg("Failed to store graded answer")
		}
	}()
}

// WaitGrading blocks until in-flight grading requests have finished. Used by
// tests and graceful shutdown.
func (c *Controller) WaitGrading() {
	c.inflight.Wait()
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		MockID:          c.mockID,
		State:           c.state,
		Index:           c.index,
		QuestionCount:   len(c.questions),
		Recording:       c.rec.Recording(),
		TranscriptChars: c.rec.TranscriptLen(),
	}
	if c.state == StateInProgress {
		q := c.questions[c.index]
		snap.Current = &q
	}
	return snap
}
