package repo

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	ErrNotFound         = errors.New("spreadsheet or sheet not found")
	ErrPermissionDenied = errors.New("service account has no access to the spreadsheet")
)

// formatErr tags well-known API failures with a sentinel while keeping the
// underlying API message.
func formatErr(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.Code {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}
