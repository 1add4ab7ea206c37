package apierror

import (
	"encoding/json"
	"errors"
	"net/http"

	"ascend-local-store/internal/repository"
)

// Error represents a structured API error response.
type Error struct {
	StatusCode int          `json:"-"`
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// WithDetails adds field-level error details.
func (e *Error) WithDetails(details ...FieldError) *Error {
	e.Details = details
	return e
}

// ToJSON converts the error to JSON bytes.
func (e *Error) ToJSON() []byte {
	response := map[string]interface{}{
		"success": false,
		"error": map[string]interface{}{
			"code":    e.Code,
			"message": e.Message,
		},
	}

	if len(e.Details) > 0 {
		response["error"].(map[string]interface{})["details"] = e.Details
	}

	data, _ := json.Marshal(response)
	return data
}

// BadRequest creates a 400 Bad Request error.
func BadRequest(message string) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       "BAD_REQUEST",
		Message:    message,
	}
}

// ValidationError creates a 400 error with validation details.
func ValidationError(message string, details ...FieldError) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       "VALIDATION_ERROR",
		Message:    message,
		Details:    details,
	}
}

// NotFound creates a 404 Not Found error.
func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{
		StatusCode: http.StatusNotFound,
		Code:       "NOT_FOUND",
		Message:    message,
	}
}

// InternalError creates a 500 Internal Server Error.
func InternalError(message string) *Error {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &Error{
		StatusCode: http.StatusInternalServerError,
		Code:       "INTERNAL_ERROR",
		Message:    message,
	}
}

// StorageUnavailable creates a 503 error for an unopenable store.
func StorageUnavailable(message string) *Error {
	if message == "" {
		message = "Local store unavailable"
	}
	return &Error{
		StatusCode: http.StatusServiceUnavailable,
		Code:       "STORAGE_UNAVAILABLE",
		Message:    message,
	}
}

// FromStorage maps the storage error taxonomy onto API errors.
func FromStorage(err error) *Error {
	var pErr *repository.PersistenceError
	switch {
	case errors.Is(err, repository.ErrStorageUnavailable):
		return StorageUnavailable(err.Error())
	case errors.As(err, &pErr):
		return &Error{
			StatusCode: http.StatusInternalServerError,
			Code:       "PERSISTENCE_ERROR",
			Message:    pErr.Error(),
		}
	}
	return InternalError("")
}
