package domain

import (
	"context"
	"time"
)

// Submission lifecycle statuses. A submission is created as "new" and only the
// admin surface moves it forward; nothing in this service ever deletes one.
const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

// ValidStatus reports whether s is one of the recognized lifecycle statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusArchived:
		return true
	}
	return false
}

// ContactSubmission is one persisted contact attempt. The ID is assigned on
// insert and immutable afterwards.
type ContactSubmission struct {
	ID                string     `json:"id"`
	CreatedAt         time.Time  `json:"created_at"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Project           string     `json:"project"`
	Message           string     `json:"message"`
	Locale            string     `json:"locale"`
	IPAddress         string     `json:"ip_address,omitempty"`
	UserAgent         string     `json:"user_agent,omitempty"`
	TurnstileVerified bool       `json:"turnstile_verified"`
	EmailSent         bool       `json:"email_sent"`
	EmailSentAt       *time.Time `json:"email_sent_at,omitempty"`
	Status            string     `json:"status"`
	Notes             string     `json:"notes,omitempty"`
}

// SubmissionRepository persists contact submissions. Insert assigns ID and
// CreatedAt on the passed record. UpdateEmailStatus records the outcome of the
// confirmation-email attempt after the fact; callers treat its failure as
// log-only. Neither operation retries.
type SubmissionRepository interface {
	Insert(ctx context.Context, sub *ContactSubmission) error
	UpdateEmailStatus(ctx context.Context, id string, sent bool, sentAt time.Time) error
	Fetch(ctx context.Context, limit, offset int) ([]ContactSubmission, int64, error)
	GetByID(ctx context.Context, id string) (*ContactSubmission, error)
	UpdateStatus(ctx context.Context, id string, status string, notes *string) error
}
