package postgres

import (
	"context"
	"fmt"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type submissionRepo struct {
	db *pgxpool.Pool
}

func NewSubmissionRepository(db *pgxpool.Pool) domain.SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Insert(ctx context.Context, sub *domain.ContactSubmission) error {
	id := uuid.NewString()
	query := `INSERT INTO contact_submissions
              (id, name, email, project, message, locale, ip_address, user_agent, turnstile_verified, email_sent, status, notes)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
              RETURNING created_at`
	err := r.db.QueryRow(ctx, query,
		id, sub.Name, sub.Email, sub.Project, sub.Message, sub.Locale,
		nullIfEmpty(sub.IPAddress), nullIfEmpty(sub.UserAgent),
		sub.TurnstileVerified, sub.EmailSent, sub.Status, nullIfEmpty(sub.Notes),
	).Scan(&sub.CreatedAt)
	if err != nil {
		return err
	}
	sub.ID = id
	return nil
}

func (r *submissionRepo) UpdateEmailStatus(ctx context.Context, id string, sent bool, sentAt time.Time) error {
	var at *time.Time
	if sent {
		at = &sentAt
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE contact_submissions SET email_sent = $2, email_sent_at = $3 WHERE id = $1`,
		id, sent, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return nil
}

func (r *submissionRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, int64, error) {
	query := `SELECT id, created_at, name, email, project, message, locale, ip_address, user_agent,
                     turnstile_verified, email_sent, email_sent_at, status, notes
              FROM contact_submissions ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subs []domain.ContactSubmission
	for rows.Next() {
		sub, err := scanSubmission(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

func (r *submissionRepo) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	query := `SELECT id, created_at, name, email, project, message, locale, ip_address, user_agent,
                     turnstile_verified, email_sent, email_sent_at, status, notes
              FROM contact_submissions WHERE id = $1`
	return scanSubmission(r.db.QueryRow(ctx, query, id).Scan)
}

// UpdateStatus moves a submission through its lifecycle. A nil notes pointer
// leaves the existing notes untouched.
func (r *submissionRepo) UpdateStatus(ctx context.Context, id string, status string, notes *string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE contact_submissions SET status = $2, notes = COALESCE($3, notes) WHERE id = $1`,
		id, status, notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return nil
}

func scanSubmission(scan func(dest ...any) error) (*domain.ContactSubmission, error) {
	var sub domain.ContactSubmission
	var ip, ua, notes *string
	err := scan(
		&sub.ID, &sub.CreatedAt, &sub.Name, &sub.Email, &sub.Project, &sub.Message, &sub.Locale,
		&ip, &ua, &sub.TurnstileVerified, &sub.EmailSent, &sub.EmailSentAt, &sub.Status, &notes,
	)
	if err != nil {
		return nil, err
	}
	if ip != nil {
		sub.IPAddress = *ip
	}
	if ua != nil {
		sub.UserAgent = *ua
	}
	if notes != nil {
		sub.Notes = *notes
	}
	return &sub, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
