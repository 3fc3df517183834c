package domain

import "context"

// ContactRequest represents a contact form submission as received on the wire.
// Schema validation is owned by pkg/validation (the canonical rule set shared
// with the client form), not by binding tags, so client and server can never
// drift apart.
type ContactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Project      string `json:"project"`
	Message      string `json:"message"`
	CaptchaToken string `json:"cf-turnstile-response"`
	Locale       string `json:"locale,omitempty"`
}

// RequestMeta carries best-effort metadata derived from the HTTP request.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// ContactResult reports what actually happened during a submission. The HTTP
// response only depends on validation and CAPTCHA; the rest is informational
// for logging and tests.
type ContactResult struct {
	SubmissionID string // empty when persistence failed or is disabled
	Persisted    bool
	EmailSent    bool
	ChatNotified bool
}

// ContactUsecase orchestrates the submission pipeline.
type ContactUsecase interface {
	// Submit runs schema validation, CAPTCHA verification, persistence and
	// notification for one contact attempt. Validation and CAPTCHA failures
	// return *apperror.AppError; later stages are best-effort and never fail
	// the call.
	Submit(ctx context.Context, req *ContactRequest, meta RequestMeta) (*ContactResult, error)
}

// AdminUsecase exposes the operator surface over persisted submissions.
type AdminUsecase interface {
	ListSubmissions(ctx context.Context, limit, offset int) ([]ContactSubmission, int64, error)
	GetSubmission(ctx context.Context, id string) (*ContactSubmission, error)
	UpdateSubmission(ctx context.Context, id string, status string, notes *string) error
}
