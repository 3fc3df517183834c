// Package form implements the contact form's client-side lifecycle: per-field
// incremental validation with debounce, CAPTCHA gating, submission and
// auto-resetting success/error states. It runs the exact same rule set as the
// server (pkg/validation), so everything the form accepts the API accepts.
package form

import (
	"context"
	"sync"
	"time"

	"go-portfolio-backend/pkg/i18n"
	"go-portfolio-backend/pkg/validation"
)

// Status is the overall form lifecycle state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// FieldState is the per-field UX indicator.
type FieldState string

const (
	FieldIdle    FieldState = "idle"
	FieldValid   FieldState = "valid"
	FieldInvalid FieldState = "invalid"
)

// Fields the form tracks, in display order.
var formFields = []string{validation.FieldName, validation.FieldEmail, validation.FieldProject, validation.FieldMessage}

// Submitter delivers a completed submission, typically over HTTP (see
// Client). Tests substitute fakes.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) (string, error)
}

// Payload is the wire body the form transmits.
type Payload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Project      string `json:"project"`
	Message      string `json:"message"`
	CaptchaToken string `json:"cf-turnstile-response"`
	Locale       string `json:"locale,omitempty"`
}

// Options tunes form timing and environment.
type Options struct {
	// Debounce before validating a changed field. Zero means the default.
	Debounce time.Duration
	// ResetDelay before success/error auto-resets to idle. Zero means the default.
	ResetDelay time.Duration
	// Locale selects the message catalog and is transmitted with the payload.
	Locale string
	// CaptchaBypass lifts the token gate (development only, mirrors the
	// server's bypass flag).
	CaptchaBypass bool
}

const (
	defaultDebounce   = 400 * time.Millisecond
	defaultResetDelay = 3 * time.Second
)

// Form is a single contact form session. Safe for concurrent use; each field
// has at most one pending validation timer (new input cancels and replaces).
type Form struct {
	mu sync.Mutex

	submitter Submitter
	opts      Options

	values       map[string]string
	states       map[string]FieldState
	fieldErrs    map[string]*validation.FieldError
	status       Status
	captchaToken string

	timers     map[string]*time.Timer
	resetTimer *time.Timer

	// onStatus, when set, observes lifecycle transitions.
	onStatus func(Status)
}

// New creates an idle form session.
func New(submitter Submitter, opts Options) *Form {
	if opts.Debounce == 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.ResetDelay == 0 {
		opts.ResetDelay = defaultResetDelay
	}
	opts.Locale = i18n.Normalize(opts.Locale)

	f := &Form{
		submitter: submitter,
		opts:      opts,
		values:    make(map[string]string),
		states:    make(map[string]FieldState),
		fieldErrs: make(map[string]*validation.FieldError),
		timers:    make(map[string]*time.Timer),
		status:    StatusIdle,
	}
	for _, field := range formFields {
		f.states[field] = FieldIdle
	}
	return f
}

// OnStatus registers a lifecycle observer. Must be set before use.
func (f *Form) OnStatus(fn func(Status)) { f.onStatus = fn }

// SetField records a keystroke-level change and schedules a debounced
// validation. Any pending timer for the field is canceled first, so only one
// timer is ever live per field.
func (f *Form) SetField(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[field] = value
	f.states[field] = FieldIdle
	delete(f.fieldErrs, field)

	if t, ok := f.timers[field]; ok {
		t.Stop()
	}
	f.timers[field] = time.AfterFunc(f.opts.Debounce, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.validateFieldLocked(field)
	})
}

// Blur validates the field immediately, canceling any pending debounce.
func (f *Form) Blur(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.timers[field]; ok {
		t.Stop()
		delete(f.timers, field)
	}
	f.validateFieldLocked(field)
}

func (f *Form) validateFieldLocked(field string) {
	if err := validation.Field(field, f.values[field]); err != nil {
		f.states[field] = FieldInvalid
		f.fieldErrs[field] = err
	} else {
		f.states[field] = FieldValid
		delete(f.fieldErrs, field)
	}
}

// SetCaptchaToken records the token produced by the CAPTCHA widget's success
// callback.
func (f *Form) SetCaptchaToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.captchaToken = token
}

// ClearCaptchaToken handles the widget's expire/error callbacks: submission
// is gated again until a fresh token arrives.
func (f *Form) ClearCaptchaToken() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.captchaToken = ""
}

// FieldState returns the UX indicator for a field.
func (f *Form) FieldState(field string) FieldState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.states[field]
}

// FieldError returns the localized error message for a field, or "" when the
// field has no recorded error.
func (f *Form) FieldError(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.fieldErrs[field]; ok {
		if err.Kind != "" {
			return i18n.FieldMessage(f.opts.Locale, err.Field, err.Kind)
		}
		// Server-reported details carry only the rendered message
		return err.Message
	}
	return ""
}

// Status returns the overall lifecycle state.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// CanSubmit reports whether the submit control should be enabled: not already
// sending, a CAPTCHA token obtained (unless bypassed), and no field currently
// marked invalid.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmitLocked()
}

func (f *Form) canSubmitLocked() bool {
	if f.status == StatusSending {
		return false
	}
	if f.captchaToken == "" && !f.opts.CaptchaBypass {
		return false
	}
	for _, field := range formFields {
		if f.states[field] == FieldInvalid {
			return false
		}
	}
	return true
}

// Submit validates the whole form and delivers it. On success the fields are
// cleared and the CAPTCHA token dropped so the next attempt needs a fresh
// one; success and error states auto-reset to idle after the configured
// delay.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.canSubmitLocked() {
		f.mu.Unlock()
		return ErrNotReady
	}

	in := validation.Input{
		Name:         f.values[validation.FieldName],
		Email:        f.values[validation.FieldEmail],
		Project:      f.values[validation.FieldProject],
		Message:      f.values[validation.FieldMessage],
		CaptchaToken: f.captchaToken,
		Locale:       f.opts.Locale,
	}
	if f.opts.CaptchaBypass && in.CaptchaToken == "" {
		in.CaptchaToken = "bypass"
	}
	if errs := validation.Validate(&in); len(errs) > 0 {
		f.applyFieldErrorsLocked(errs)
		f.mu.Unlock()
		return ErrInvalid
	}

	f.setStatusLocked(StatusSending)
	payload := Payload{
		Name:         in.Name,
		Email:        in.Email,
		Project:      in.Project,
		Message:      in.Message,
		CaptchaToken: in.CaptchaToken,
		Locale:       in.Locale,
	}
	f.mu.Unlock()

	_, err := f.submitter.Submit(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && len(apiErr.Details) > 0 {
			f.applyFieldErrorsLocked(apiErr.Details)
		}
		f.setStatusLocked(StatusError)
		f.scheduleResetLocked()
		return err
	}

	// Fresh token required for the next attempt
	f.captchaToken = ""
	for _, field := range formFields {
		delete(f.values, field)
		f.states[field] = FieldIdle
		delete(f.fieldErrs, field)
	}
	f.setStatusLocked(StatusSuccess)
	f.scheduleResetLocked()
	return nil
}

func (f *Form) applyFieldErrorsLocked(errs []validation.FieldError) {
	for i := range errs {
		err := errs[i]
		f.states[err.Field] = FieldInvalid
		f.fieldErrs[err.Field] = &err
	}
}

func (f *Form) setStatusLocked(s Status) {
	f.status = s
	if f.onStatus != nil {
		f.onStatus(s)
	}
}

func (f *Form) scheduleResetLocked() {
	if f.resetTimer != nil {
		f.resetTimer.Stop()
	}
	f.resetTimer = time.AfterFunc(f.opts.ResetDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.status == StatusSuccess || f.status == StatusError {
			f.setStatusLocked(StatusIdle)
		}
	})
}

// StatusMessage returns the localized status line for the current state.
func (f *Form) StatusMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.status {
	case StatusSending:
		return i18n.Translate(f.opts.Locale, "form.sending")
	case StatusSuccess:
		return i18n.Translate(f.opts.Locale, "form.successMessage")
	case StatusError:
		return i18n.Translate(f.opts.Locale, "form.errorMessage")
	default:
		return i18n.Translate(f.opts.Locale, "form.submit")
	}
}
