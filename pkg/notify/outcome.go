// Package notify defines the shared result type for best-effort notification
// channels (confirmation email, operator chat).
package notify

// Outcome is the result of one notification attempt. Failure is a value, not
// an error return, so callers must consciously decide to ignore it; nothing in
// the pipeline retries.
type Outcome struct {
	Sent bool
	Err  error
}

// SentOutcome is a successful outcome.
func SentOutcome() Outcome { return Outcome{Sent: true} }

// Failed wraps an attempt that did not go through.
func Failed(err error) Outcome { return Outcome{Err: err} }

// Skipped marks a channel that was not configured or not applicable.
func Skipped() Outcome { return Outcome{} }
