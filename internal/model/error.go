package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidName        = "INVALID_NAME"
	ErrCodeInvalidPhone       = "INVALID_PHONE"
	ErrCodeEmptyMessage       = "EMPTY_MESSAGE"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeNotRegistered      = "NOT_REGISTERED"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeBackendUnreachable = "BACKEND_UNREACHABLE"
	ErrCodeSessionClosed      = "SESSION_CLOSED"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidName        = NewDomainError(ErrCodeInvalidName, "Name must be at least 2 characters")
	ErrInvalidPhone       = NewDomainError(ErrCodeInvalidPhone, "Mobile number must be exactly 10 digits")
	ErrEmptyMessage       = NewDomainError(ErrCodeEmptyMessage, "Message must not be empty")
	ErrBackendUnreachable = NewDomainError(ErrCodeBackendUnreachable, "Backend is unreachable")
	ErrSessionClosed      = NewDomainError(ErrCodeSessionClosed, "Session is closed")
	ErrUnauthorised       = NewDomainError(ErrCodeUnauthorised, "Invalid or missing credentials")
)
