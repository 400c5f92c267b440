package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindNotFound           Kind = "NOT_FOUND"
	KindConflict           Kind = "CONFLICT"
	KindValidation         Kind = "VALIDATION_ERROR"
	KindUnauthorized       Kind = "UNAUTHORIZED"
	KindServiceUnavailable Kind = "SERVICE_UNAVAILABLE"
	KindExternalService    Kind = "EXTERNAL_SERVICE_ERROR"
	KindInternal           Kind = "INTERNAL_ERROR"
)

// AppError carries a client-safe message and the HTTP status it maps to.
type AppError struct {
	Kind    Kind
	Message string
	Details []FieldError
	Err     error
}

// FieldError describes one failed input field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag,omitempty"`
	Message string `json:"message"`
}

// Response is the JSON body written for a failed request.
type Response struct {
	Error      string       `json:"error"`
	Message    string       `json:"message"`
	StatusCode int          `json:"status_code"`
	Details    []FieldError `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ErrorCode() string {
	return string(e.Kind)
}

func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case KindExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Response omits the wrapped cause; only Message reaches the client.
func (e *AppError) Response() Response {
	return Response{
		Error:      e.ErrorCode(),
		Message:    e.Message,
		StatusCode: e.StatusCode(),
		Details:    e.Details,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

func Conflict(message string, err error) *AppError {
	return &AppError{Kind: KindConflict, Message: message, Err: err}
}

func Validation(message string, details ...FieldError) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

func Unauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func ServiceUnavailable(message string, err error) *AppError {
	return &AppError{Kind: KindServiceUnavailable, Message: message, Err: err}
}

func ExternalService(message string, err error) *AppError {
	return &AppError{Kind: KindExternalService, Message: message, Err: err}
}

func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// As returns the AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the Kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}
