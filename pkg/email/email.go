// Package email sends the localized contact confirmation through the Resend
// transactional email API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go-portfolio-backend/pkg/notify"
)

const defaultAPIURL = "https://api.resend.com/emails"

// Service posts confirmation emails via the Resend HTTP API. The sender
// address is fixed per deployment.
type Service struct {
	apiKey    string
	apiURL    string
	fromEmail string
	client    *http.Client
	log       *slog.Logger
}

// ConfirmationData is what the confirmation template needs. Message is the
// full (validated, trimmed) message; the template embeds a bounded snippet.
type ConfirmationData struct {
	Name    string
	Email   string
	Project string
	Message string
	Locale  string
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// NewService creates the Resend-backed mailer. client may be nil; apiURL
// overrides are for tests.
func NewService(apiKey, fromEmail, apiURL string, client *http.Client, log *slog.Logger) *Service {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		apiKey:    apiKey,
		apiURL:    apiURL,
		fromEmail: fromEmail,
		client:    client,
		log:       log,
	}
}

// IsConfigured reports whether the service can send at all.
func (s *Service) IsConfigured() bool {
	return s.apiKey != "" && s.fromEmail != ""
}

// SendConfirmation renders the locale's template and sends it to the
// submitter. Best-effort: the outcome is a value, never a hard failure.
func (s *Service) SendConfirmation(ctx context.Context, data ConfirmationData) notify.Outcome {
	if !s.IsConfigured() {
		s.log.Warn("Confirmation email skipped: Resend is not configured")
		return notify.Skipped()
	}

	html, err := renderConfirmation(data)
	if err != nil {
		return notify.Failed(fmt.Errorf("failed to render confirmation template: %w", err))
	}

	payload, err := json.Marshal(sendRequest{
		From:    s.fromEmail,
		To:      []string{data.Email},
		Subject: subjectFor(data.Locale),
		HTML:    html,
	})
	if err != nil {
		return notify.Failed(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return notify.Failed(err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return notify.Failed(fmt.Errorf("resend request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return notify.Failed(fmt.Errorf("resend API returned %d: %s", resp.StatusCode, string(body)))
	}

	var result sendResponse
	_ = json.NewDecoder(resp.Body).Decode(&result)
	s.log.Info("Confirmation email sent", "to", data.Email, "resend_id", result.ID, "locale", data.Locale)
	return notify.SentOutcome()
}
