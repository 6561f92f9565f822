package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"landing-leads/internal/http/api"
	"landing-leads/internal/lib"
)

const SubmitPath = "/api/submit-form"

const fallbackMessage = "Failed to submit form"

// ErrTransport marks failures where no usable response was received.
var ErrTransport = errors.New("transport failure")

// ResponseError is a non-2xx answer from the submission endpoint.
type ResponseError struct {
	Status  int
	Message string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("submit form: status %d: %s", e.Status, e.Message)
}

func (e *ResponseError) ResponseMessage() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts fields as JSON to the submission endpoint.
func (c *Client) Submit(ctx context.Context, fields map[string]string) error {
	const op = "client.Submit"

	body, err := json.Marshal(fields)
	if err != nil {
		return lib.Err(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SubmitPath, bytes.NewReader(body))
	if err != nil {
		return lib.Err(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return lib.Err(op, fmt.Errorf("%w: %w", ErrTransport, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp api.ErrorResponse
		// a body that is not an error envelope still yields the fallback
		_ = json.NewDecoder(resp.Body).Decode(&errResp)

		msg := errResp.Error
		if msg == "" {
			msg = fallbackMessage
		}
		return &ResponseError{Status: resp.StatusCode, Message: msg}
	}

	var ok api.SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
		return lib.Err(op, fmt.Errorf("%w: decode response: %w", ErrTransport, err))
	}

	return nil
}
