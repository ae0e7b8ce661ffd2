package vectorizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrMissingCredentials  = errors.New("missing API credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrRateLimited         = errors.New("rate limited")
	ErrServer              = errors.New("server error")
)

// FieldError describes a single rejected parameter.
type FieldError struct {
	// Field is the API parameter name, e.g. "output.file_format".
	Field string `json:"field"`

	// Message is the human-readable reason.
	Message string `json:"message"`
}

// ValidationError is returned before any network call when request
// parameters are rejected. It matches ErrInvalidParameter.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "invalid parameter"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return "invalid parameter: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: fmt.Sprintf(format, args...)}}}
}

// APIError is returned for every non-2xx response.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the service's numeric error code, zero if the body had none.
	Code int

	// Message is the service's error message, or the raw body when the body
	// was not the documented JSON shape.
	Message string

	// Body is the raw response body.
	Body []byte
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("vectorizer API error (status %d, code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("vectorizer API error (status %d): %s", e.StatusCode, e.Message)
}

// Is maps well-known statuses onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrInsufficientCredits:
		return e.StatusCode == http.StatusPaymentRequired
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrServer:
		return e.StatusCode >= 500
	}
	return false
}

type apiErrorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status, Body: body}

	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		e.Code = parsed.Error.Code
		e.Message = parsed.Error.Message
		return e
	}

	e.Message = strings.TrimSpace(string(body))
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}
