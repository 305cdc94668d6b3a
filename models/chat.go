package models

import "time"

// Category is the closed set of support-conversation topics. Values outside
// the known set degrade to CategoryGeneral at fallback time, never to an
// empty suggestion list.
type Category string

const (
	CategoryLeaseHelp    Category = "lease-help"
	CategoryPlatformHelp Category = "platform-help"
	CategoryLegalAdvice  Category = "legal-advice"
	CategoryGeneral      Category = "general"
)

// KnownCategory reports whether c is one of the defined categories.
func KnownCategory(c Category) bool {
	switch c {
	case CategoryLeaseHelp, CategoryPlatformHelp, CategoryLegalAdvice, CategoryGeneral:
		return true
	}
	return false
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn of a support conversation. Insertion order is
// significant; the most recent message comes last.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatContext is the state of an in-progress support conversation at the
// moment a suggestion is requested. It is built fresh per request and never
// persisted by this service.
type ChatContext struct {
	UserID           string        `json:"user_id,omitempty"`
	SessionID        string        `json:"session_id"`
	Category         Category      `json:"category"`
	PreviousMessages []ChatMessage `json:"previous_messages"`
}
