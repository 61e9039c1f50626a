package dto

import "time"

// AnswerSubmitDTO grades one answer directly, outside a live session. The
// transcript must exceed the configured minimum length to be graded at all.
type AnswerSubmitDTO struct {
	QuestionIndex int    `json:"question_index"`
	Transcript    string `json:"transcript" binding:"required"`
	UserEmail     string `json:"user_email"`
}

// AnswerResponseDTO is one graded answer row.
type AnswerResponseDTO struct {
	ID            uint      `json:"id"`
	Question      string    `json:"question"`
	CorrectAnswer string    `json:"correct_answer,omitempty"`
	UserAnswer    string    `json:"user_answer"`
	Feedback      string    `json:"feedback"`
	Rating        int       `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// FeedbackSummaryDTO aggregates the most recent attempt of a session.
type FeedbackSummaryDTO struct {
	MockID        string              `json:"mock_id"`
	OverallRating float64             `json:"overall_rating"`
	AnswerCount   int                 `json:"answer_count"`
	Answers       []AnswerResponseDTO `json:"answers"`
}
