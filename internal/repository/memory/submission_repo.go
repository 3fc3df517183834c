// Package memory provides an in-memory SubmissionRepository. It backs tests
// and deployments without a DATABASE_URL, where losing submissions on restart
// is acceptable because the email and chat notifications still go out.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

type submissionRepo struct {
	mu   sync.RWMutex
	subs map[string]domain.ContactSubmission
}

func NewSubmissionRepository() domain.SubmissionRepository {
	return &submissionRepo{
		subs: make(map[string]domain.ContactSubmission),
	}
}

func (r *submissionRepo) Insert(ctx context.Context, sub *domain.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now().UTC()
	r.subs[sub.ID] = *sub
	return nil
}

func (r *submissionRepo) UpdateEmailStatus(ctx context.Context, id string, sent bool, sentAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subs[id]
	if !ok {
		return fmt.Errorf("submission %s not found", id)
	}
	sub.EmailSent = sent
	if sent {
		sub.EmailSentAt = &sentAt
	}
	r.subs[id] = sub
	return nil
}

func (r *submissionRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.ContactSubmission, 0, len(r.subs))
	for _, sub := range r.subs {
		all = append(all, sub)
	}
	// Newest first, matching the SQL implementation
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *submissionRepo) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.subs[id]
	if !ok {
		return nil, fmt.Errorf("submission %s not found", id)
	}
	return &sub, nil
}

func (r *submissionRepo) UpdateStatus(ctx context.Context, id string, status string, notes *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subs[id]
	if !ok {
		return fmt.Errorf("submission %s not found", id)
	}
	sub.Status = status
	if notes != nil {
		sub.Notes = *notes
	}
	r.subs[id] = sub
	return nil
}
