package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Supply pipeline errors
	CodeRateLimited     ErrorCode = "RATE_LIMITED"
	CodeExhausted       ErrorCode = "SUPPLY_EXHAUSTED"
	CodeGenerationParse ErrorCode = "GENERATION_PARSE_ERROR"
	CodeUpstreamCall    ErrorCode = "UPSTREAM_CALL_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewRateLimitedError reports that the caller exceeded the per-minute
// request cadence. The message text is part of the wire contract.
func NewRateLimitedError(limit int) *DomainError {
	return NewError(CodeRateLimited, fmt.Sprintf("Rate limit of %d requests per minute exceeded.", limit), nil)
}

// NewExhaustedError reports that neither the stock nor the upstream
// budget can supply a quiz until the next day.
func NewExhaustedError() *DomainError {
	return NewError(CodeExhausted, "Daily API limit reached and no quizzes are available.", nil)
}

// NewGenerationParseError reports an unparseable generator response.
// The raw payload is retained in Context for postmortem logging; the
// budget reservation for the call stays consumed.
func NewGenerationParseError(rawResponse string, cause error) *DomainError {
	err := NewError(CodeGenerationParse, "Generator returned an unparseable response.", cause)
	err.Context = map[string]interface{}{"raw_response": rawResponse}
	return err
}

// NewUpstreamCallError reports a network or auth failure calling the
// generator, as opposed to a parse failure of its output.
func NewUpstreamCallError(cause error) *DomainError {
	return NewError(CodeUpstreamCall, "Failed to call the quiz generator.", cause)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}
