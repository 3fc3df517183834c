package usecase

import (
	"context"
	"log/slog"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/notify"
	"go-portfolio-backend/pkg/telegram"
	"go-portfolio-backend/pkg/validation"
)

// CaptchaVerifier is the verdict-only view of pkg/captcha the pipeline needs.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) bool
}

// ConfirmationMailer sends the localized confirmation email to the submitter.
// An unconfigured mailer reports a skipped outcome rather than an error.
type ConfirmationMailer interface {
	SendConfirmation(ctx context.Context, data email.ConfirmationData) notify.Outcome
}

// ChatNotifier posts a submission summary to the operator channel.
type ChatNotifier interface {
	Notify(ctx context.Context, msg telegram.Message) notify.Outcome
}

type contactUsecase struct {
	repo          domain.SubmissionRepository
	verifier      CaptchaVerifier
	mailer        ConfirmationMailer
	chat          ChatNotifier
	defaultLocale string
	log           *slog.Logger
}

// NewContactUsecase wires the submission pipeline. All collaborators are
// injected so tests can substitute fakes; none may be nil except via the
// memory repository fallback handled in main.
func NewContactUsecase(
	repo domain.SubmissionRepository,
	verifier CaptchaVerifier,
	mailer ConfirmationMailer,
	chat ChatNotifier,
	defaultLocale string,
	log *slog.Logger,
) domain.ContactUsecase {
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	if log == nil {
		log = slog.Default()
	}
	return &contactUsecase{
		repo:          repo,
		verifier:      verifier,
		mailer:        mailer,
		chat:          chat,
		defaultLocale: defaultLocale,
		log:           log,
	}
}

// Submit runs the linear pipeline: schema validation, CAPTCHA verification,
// persistence, notifications, email-status update. Only the first two stages
// can fail the call; everything after is best-effort and logged.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest, meta domain.RequestMeta) (*domain.ContactResult, error) {
	in := validation.Input{
		Name:         req.Name,
		Email:        req.Email,
		Project:      req.Project,
		Message:      req.Message,
		CaptchaToken: req.CaptchaToken,
		Locale:       req.Locale,
	}

	// Authoritative schema validation. The client runs the same rules, but
	// this is the trust boundary: direct API calls bypass the client.
	if errs := validation.Validate(&in); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	locale := in.Locale
	if locale == "" {
		locale = uc.defaultLocale
	}

	// Validation precedes CAPTCHA, so a malformed body never costs an
	// outbound verification call.
	if !uc.verifier.Verify(ctx, in.CaptchaToken) {
		return nil, apperror.Captcha()
	}

	result := &domain.ContactResult{}

	sub := &domain.ContactSubmission{
		Name:              in.Name,
		Email:             in.Email,
		Project:           in.Project,
		Message:           in.Message,
		Locale:            locale,
		IPAddress:         meta.IPAddress,
		UserAgent:         meta.UserAgent,
		TurnstileVerified: true,
		Status:            domain.StatusNew,
	}

	// Persistence is non-fatal: the confirmation email is the more
	// user-visible guarantee, so a storage outage must not block the user.
	if err := uc.repo.Insert(ctx, sub); err != nil {
		uc.log.Error("Failed to persist contact submission", "error", err, "email", sub.Email)
		sub.ID = ""
	} else {
		result.Persisted = true
		result.SubmissionID = sub.ID
	}

	uc.log.Info("New contact form submission",
		"name", sub.Name, "email", sub.Email, "project", sub.Project,
		"locale", sub.Locale, "ip", sub.IPAddress, "submission_id", sub.ID)

	emailOutcome := uc.mailer.SendConfirmation(ctx, email.ConfirmationData{
		Name:    sub.Name,
		Email:   sub.Email,
		Project: sub.Project,
		Message: sub.Message,
		Locale:  sub.Locale,
	})
	if emailOutcome.Err != nil {
		uc.log.Error("Failed to send confirmation email", "error", emailOutcome.Err, "email", sub.Email)
	}
	result.EmailSent = emailOutcome.Sent

	chatOutcome := uc.chat.Notify(ctx, telegram.Message{
		Name:         sub.Name,
		Email:        sub.Email,
		Project:      sub.Project,
		Message:      sub.Message,
		Locale:       sub.Locale,
		IP:           sub.IPAddress,
		SubmissionID: sub.ID,
	})
	if chatOutcome.Err != nil {
		uc.log.Error("Failed to send Telegram notification", "error", chatOutcome.Err)
	}
	result.ChatNotified = chatOutcome.Sent

	// No identifier means the insert failed; recording the email outcome is
	// then a no-op rather than an update against a null id.
	if sub.ID != "" {
		if err := uc.repo.UpdateEmailStatus(ctx, sub.ID, emailOutcome.Sent, time.Now().UTC()); err != nil {
			uc.log.Error("Failed to update email status", "error", err, "submission_id", sub.ID)
		}
	}

	return result, nil
}
