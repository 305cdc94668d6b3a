package services

// APIError carries a normalized HTTP status and a stable snake_case error
// code alongside the underlying cause. Handlers translate it straight into
// the shared error envelope.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Cause      error
}

func (e *APIError) Error() string {
	if e == nil {
		return "internal_error"
	}
	return e.ErrorCode
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
