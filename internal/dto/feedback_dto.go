package dto

import "time"

// UserFeedbackCreateDTO is the request body for submitting site feedback.
type UserFeedbackCreateDTO struct {
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	FeedbackType string `json:"feedback_type" binding:"required,oneof=general feature bug improvement"`
	FeedbackText string `json:"feedback_text" binding:"required"`
}

type UserFeedbackResponseDTO struct {
	ID           uint      `json:"id"`
	UserName     string    `json:"user_name,omitempty"`
	UserEmail    string    `json:"user_email,omitempty"`
	FeedbackType string    `json:"feedback_type"`
	FeedbackText string    `json:"feedback_text"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserFeedbackListDTO wraps the feedback listing with its count.
type UserFeedbackListDTO struct {
	Feedbacks []UserFeedbackResponseDTO `json:"feedbacks"`
	Count     int                       `json:"count"`
}
