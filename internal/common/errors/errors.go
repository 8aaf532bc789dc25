// Package errors provides the standardized error taxonomy for the assistant.
// Data-access failures never reach callers as structured errors — the
// executor converts them to a canned answer string — so this package exists
// for logging, metrics labels and the failure alerter.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeDataAccessFailed   ErrorCode = "DATA_ACCESS_FAILED"
	ErrCodeQueryTimeout       ErrorCode = "QUERY_TIMEOUT"
	ErrCodeInvalidRequest     ErrorCode = "INVALID_REQUEST"
	ErrCodeHistoryWriteFailed ErrorCode = "HISTORY_WRITE_FAILED"
	ErrCodeAlertPublishFailed ErrorCode = "ALERT_PUBLISH_FAILED"
	ErrCodeConfigInvalid      ErrorCode = "CONFIG_INVALID"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// StandardError is a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// NewDataAccessFailedError wraps a store/transport failure. Retryable from
// the collaborator's point of view, but the executor never retries — the
// flag feeds the alerter and ops dashboards.
func NewDataAccessFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDataAccessFailed,
		Message:   "Data access collaborator failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewQueryTimeoutError marks a data-access round-trip that exceeded its
// context deadline.
func NewQueryTimeoutError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Data access round-trip timed out",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewInvalidRequestError marks a request body that failed schema validation.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Request body failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewHistoryWriteFailedError marks a best-effort query-log write failure.
func NewHistoryWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeHistoryWriteFailed,
		Message:   "Query history write failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewAlertPublishFailedError marks an SNS publish failure.
func NewAlertPublishFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAlertPublishFailed,
		Message:   "Alert notification publish failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// CodeOf extracts the ErrorCode from err, or ErrCodeInternal when err is not
// a StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ErrCodeInternal
}

// IsRetryable reports whether err carries a retryable code.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Retryable
	}
	return false
}
