package api

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgSubmitted     = "Form submitted successfully!"
	MsgBadRequest    = "Invalid request body"
	MsgMissingFields = "Missing required fields"
	MsgSubmitFailed  = "Failed to submit form"
	MsgUnknownError  = "Unknown error"
)

// ErrorResponse is the body of every non-2xx answer. Details is only set
// for upstream failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Submitted() SubmitResponse {
	return SubmitResponse{
		Success: true,
		Message: MsgSubmitted,
	}
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// UpstreamError reports a failed append, carrying the cause when there is one.
func UpstreamError(details string) ErrorResponse {
	if details == "" {
		details = MsgUnknownError
	}
	return ErrorResponse{
		Error:   MsgSubmitFailed,
		Details: details,
	}
}

func MissingFields(fields []string) ErrorResponse {
	if len(fields) == 0 {
		return ErrorResponse{Error: MsgMissingFields}
	}
	return ErrorResponse{Error: MsgMissingFields + ": " + strings.Join(fields, ", ")}
}

// ValidationError names the fields that failed the required check.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	return MissingFields(FieldNames(errs))
}

// FieldNames returns the request keys of the failed fields.
func FieldNames(errs validator.ValidationErrors) []string {
	fields := make([]string, 0, len(errs))
	for _, err := range errs {
		fields = append(fields, err.Field())
	}
	return fields
}
