package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"landing-leads/internal/http/api"
	"landing-leads/internal/lib/sl"

	"github.com/stretchr/testify/assert"
)

func NewLogger() *slog.Logger {
	return sl.Discard()
}

func DecodeErrorResponse(t *testing.T, body *bytes.Buffer) api.ErrorResponse {
	var resp api.ErrorResponse
	err := json.NewDecoder(body).Decode(&resp)
	assert.NoError(t, err)
	return resp
}
