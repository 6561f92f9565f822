package service

import (
	"strings"
)

// ValidationError reports required fields that were missing or empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// UpstreamError reports a failure talking to the spreadsheet service,
// either while authenticating or while appending.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Op + ": upstream: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
