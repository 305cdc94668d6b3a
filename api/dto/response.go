package dto

// ErrorResponseDTO is the shared error envelope for all endpoints.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"invalid_request"`
}

// MessageResponseDTO is the shared plain-message envelope.
type MessageResponseDTO struct {
	Message string `json:"message" example:"view count incremented successfully"`
}
