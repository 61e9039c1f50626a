package model

// Question is one entry of a session's generated question set. Question sets
// are owned by their Interview and stored denormalized as JSON, so this is a
// value type, not a table.
type Question struct {
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	Round          string `json:"round,omitempty"` // "Technical", "HR", empty for general
	QuestionNumber int    `json:"questionNumber,omitempty"`
}
