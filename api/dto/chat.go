package dto

import "time"

// ChatMessageDTO is one turn of the conversation being suggested against.
type ChatMessageDTO struct {
	Role      string    `json:"role" example:"user"`
	Content   string    `json:"content" example:"What does clause 7 mean?"`
	Timestamp time.Time `json:"timestamp"`
}

// SuggestionRequestDTO carries the chat context for a suggestion call.
// Category values outside the known set are accepted and degrade to the
// general fallback set.
type SuggestionRequestDTO struct {
	SessionID string           `json:"session_id" example:"f3b9c2..."`
	UserID    string           `json:"user_id,omitempty"`
	Category  string           `json:"category" example:"lease-help"`
	Messages  []ChatMessageDTO `json:"messages"`
}

// SuggestionResponseDTO returns 3-4 short follow-up questions. Source tells
// whether they came from the model or from the static fallback table.
type SuggestionResponseDTO struct {
	SessionID   string   `json:"session_id"`
	Suggestions []string `json:"suggestions"`
	Source      string   `json:"source" example:"model"`
}
