package dto

// SessionStateDTO reflects the live state of a practice session.
type SessionStateDTO struct {
	MockID          string       `json:"mock_id"`
	State           string       `json:"state"` // "in_progress", "completed"
	QuestionIndex   int          `json:"question_index"`
	QuestionCount   int          `json:"question_count"`
	CurrentQuestion *QuestionDTO `json:"current_question,omitempty"`
	Recording       bool         `json:"recording"`
	TranscriptChars int          `json:"transcript_chars"`
}

// SessionStartDTO identifies who is answering in this live session.
type SessionStartDTO struct {
	UserEmail string `json:"user_email"`
}

// SessionJumpDTO targets a question index directly.
type SessionJumpDTO struct {
	Index int `json:"index"`
}

// FragmentDTO is one increment of transcribed speech pushed by the client.
type FragmentDTO struct {
	Text string `json:"text" binding:"required"`
}
