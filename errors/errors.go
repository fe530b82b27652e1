package errors

import (
	"fmt"
	"net/http"
)

// AppError is the application error type carried across all layers
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped error for errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// Transcript Source Errors

// ErrSourceUnavailable indicates the transcript source is unreachable or
// responded with a non-success status.
func ErrSourceUnavailable(status int, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_SOURCE_UNAVAILABLE,
		Message:  "Transcript source unavailable",
	}.WithDetail("upstream_status", fmt.Sprintf("%d", status))
}

// ErrSourceProtocol indicates the transcript source answered successfully but
// reported a data-level error (e.g. a GraphQL errors list).
func ErrSourceProtocol(providerMessage string) AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_SOURCE_PROTOCOL,
		Message:  "Transcript source reported an error",
	}.WithDetail("provider_message", providerMessage)
}

// ErrDetailFetchFailed indicates a single meeting's detail fetch failed.
// Callers skip the meeting instead of aborting the batch.
func ErrDetailFetchFailed(meetingID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_DETAIL_FETCH_FAILED,
		Message:  "Failed to fetch meeting detail",
	}.WithDetail("meeting_id", meetingID)
}

// Analysis Errors

func ErrNoMeetings() AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NO_MEETINGS,
		Message:  "No meetings found for the selected period",
	}
}

func ErrNoLeadStatements() AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_NO_LEAD_STATEMENTS,
		Message:  "No lead statements found in the selected meetings",
	}
}

func ErrAIAnalysisFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_ANALYSIS_FAILED,
		Message:  "AI analysis failed",
	}
}

// Export Errors

func ErrExportFailed(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXPORT_FAILED,
		Message:  "Failed to export report",
	}.WithDetail("format", format)
}

// Config Errors

func ErrConfigInvalid(message string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CONFIG_INVALID,
		Message:  message,
	}
}
