package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-portfolio-backend/pkg/validation"
)

// ErrNotReady means Submit was called while the gate was closed (already
// sending, missing CAPTCHA token, or a field marked invalid).
var ErrNotReady = errors.New("form: not ready to submit")

// ErrInvalid means local whole-form validation failed; per-field errors are
// recorded on the form.
var ErrInvalid = errors.New("form: validation failed")

// APIError is a non-2xx response from the contact endpoint, decoded from the
// {"error": ..., "details": [...]} shape.
type APIError struct {
	Status  int
	Message string
	Details []validation.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("contact API: %d %s", e.Status, e.Message)
}

// Client submits to the contact endpoint over HTTP. It implements Submitter.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient points at the API base URL (e.g. "https://api.fmemije.com").
// httpClient may be nil.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, client: httpClient}
}

type successResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// Submit posts the payload and returns the server's confirmation message.
func (c *Client) Submit(ctx context.Context, payload Payload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/contact", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		var ok successResponse
		if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
			return "", err
		}
		return ok.Message, nil
	}

	var apiErr errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		return "", &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return "", &APIError{Status: resp.StatusCode, Message: apiErr.Error, Details: apiErr.Details}
}
