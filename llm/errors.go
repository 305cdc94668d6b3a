package llm

import "fmt"

type ErrorType string

const (
	ErrTypeConfig    ErrorType = "CONFIG"
	ErrTypeNetwork   ErrorType = "NETWORK"
	ErrTypeProvider  ErrorType = "PROVIDER"
	ErrTypeRateLimit ErrorType = "RATE_LIMIT"
)

// InvocationError is the single failure kind the rest of the application
// sees when a model call goes wrong. Network errors, non-2xx statuses and
// empty completions all collapse into it; Type keeps the distinction for
// diagnostics.
type InvocationError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *InvocationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("llm %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("llm %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *InvocationError) Unwrap() error { return e.Cause }

func NewConfigError(msg string) *InvocationError {
	return &InvocationError{Type: ErrTypeConfig, Operation: "config", Message: msg}
}

func NewProviderError(operation, msg string, cause error) *InvocationError {
	return &InvocationError{Type: ErrTypeProvider, Operation: operation, Message: msg, Cause: cause}
}
