package internal

import (
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeTransport    ErrorType = "TRANSPORT_ERROR"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeServer       ErrorType = "SERVER_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeMissingField     ErrorCode = "MISSING_FIELD"
	ErrCodeMissingFile      ErrorCode = "MISSING_FILE"
	ErrCodeNoDepartments    ErrorCode = "NO_DEPARTMENTS_SELECTED"
	ErrCodeIllegalState     ErrorCode = "ILLEGAL_STATE"

	ErrCodeNotAuthenticated   ErrorCode = "NOT_AUTHENTICATED"
	ErrCodeAdminRequired      ErrorCode = "ADMIN_REQUIRED"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeSessionExpired     ErrorCode = "SESSION_EXPIRED"

	ErrCodeRequestFailed ErrorCode = "REQUEST_FAILED"
	ErrCodeDecodeFailed  ErrorCode = "DECODE_FAILED"
	ErrCodeServerError   ErrorCode = "SERVER_ERROR"
)

// AppError carries a typed cause from the API layer up to the command that
// surfaces it, so callers and tests can branch on kind instead of message text.
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

func NewFieldError(field string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewTransportError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeTransport,
		Code:    ErrCodeRequestFailed,
		Message: message,
		Cause:   cause,
	}
}

func NewServerError(message string, statusCode int) *AppError {
	return &AppError{
		Type:       ErrorTypeServer,
		Code:       ErrCodeServerError,
		Message:    message,
		StatusCode: statusCode,
	}
}

// FromStatus maps a non-success HTTP status and the server's detail message
// into a typed error. Unknown 4xx statuses fall back to validation kind, which
// matches how the backend reports bad input (400 with a detail string).
func FromStatus(statusCode int, detail string) *AppError {
	if detail == "" {
		detail = http.StatusText(statusCode)
	}

	e := &AppError{
		Message:    detail,
		StatusCode: statusCode,
	}

	switch {
	case statusCode == http.StatusUnauthorized:
		e.Type = ErrorTypeUnauthorized
		e.Code = ErrCodeNotAuthenticated
	case statusCode == http.StatusForbidden:
		e.Type = ErrorTypeForbidden
		e.Code = ErrCodeAdminRequired
	case statusCode == http.StatusNotFound:
		e.Type = ErrorTypeNotFound
		e.Code = ErrCodeRequestFailed
	case statusCode == http.StatusConflict:
		e.Type = ErrorTypeConflict
		e.Code = ErrCodeRequestFailed
	case statusCode >= 500:
		e.Type = ErrorTypeServer
		e.Code = ErrCodeServerError
	default:
		e.Type = ErrorTypeValidation
		e.Code = ErrCodeRequestFailed
	}

	return e
}

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an AppError of the given type.
func IsKind(err error, t ErrorType) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Type == t
}
