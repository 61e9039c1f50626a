package dto

import "time"

// InterviewCreateDTO is the request body for generating a new mock interview
// from a job description.
type InterviewCreateDTO struct {
	JobPosition   string `json:"job_position" binding:"required"`
	JobDesc       string `json:"job_desc" binding:"required"`
	JobExperience string `json:"job_experience" binding:"required"`
	CreatedBy     string `json:"created_by"`
}

// QuestionDTO is one generated question as shown to the candidate.
type QuestionDTO struct {
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	Round          string `json:"round,omitempty"`
	QuestionNumber int    `json:"questionNumber,omitempty"`
}

// InterviewResponseDTO is the full session including its parsed question set.
type InterviewResponseDTO struct {
	MockID        string        `json:"mock_id"`
	JobPosition   string        `json:"job_position"`
	JobDesc       string        `json:"job_desc,omitempty"`
	JobExperience string        `json:"job_experience,omitempty"`
	CreatedBy     string        `json:"created_by,omitempty"`
	Questions     []QuestionDTO `json:"questions"`
	CreatedAt     time.Time     `json:"created_at"`
}

// InterviewSummaryDTO is used when listing a user's sessions.
type InterviewSummaryDTO struct {
	MockID        string    `json:"mock_id"`
	JobPosition   string    `json:"job_position"`
	JobExperience string    `json:"job_experience,omitempty"`
	CreatedBy     string    `json:"created_by,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// ResumeInterviewResponseDTO is returned when an interview is generated from
// an uploaded resume PDF.
type ResumeInterviewResponseDTO struct {
	MockID    string        `json:"mock_id"`
	Questions []QuestionDTO `json:"questions"`
	Metadata  ResumeMeta    `json:"metadata"`
}

// ResumeMeta reports how the generated set splits across rounds, plus what
// the heuristic text scan found in the resume.
type ResumeMeta struct {
	QuestionCount      int      `json:"question_count"`
	TechnicalQuestions int      `json:"technical_questions"`
	HRQuestions        int      `json:"hr_questions"`
	Skills             []string `json:"skills,omitempty"`
	Education          []string `json:"education,omitempty"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
