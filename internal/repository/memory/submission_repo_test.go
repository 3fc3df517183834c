package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-portfolio-backend/internal/domain"
)

func seed(t *testing.T, repo domain.SubmissionRepository, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sub := &domain.ContactSubmission{
			Name:    fmt.Sprintf("Person %d", i),
			Email:   fmt.Sprintf("person%d@example.com", i),
			Project: "Consulting",
			Message: "A message long enough to be realistic.",
			Locale:  "en",
			Status:  domain.StatusNew,
		}
		require.NoError(t, repo.Insert(context.Background(), sub))
		require.NotEmpty(t, sub.ID)
		ids = append(ids, sub.ID)
		time.Sleep(time.Millisecond)
	}
	return ids
}

func TestInsertAssignsIdentity(t *testing.T) {
	repo := NewSubmissionRepository()
	sub := &domain.ContactSubmission{Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, repo.Insert(context.Background(), sub))
	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.CreatedAt.IsZero())

	got, err := repo.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestFetchNewestFirstWithPaging(t *testing.T) {
	repo := NewSubmissionRepository()
	ids := seed(t, repo, 5)

	page, total, err := repo.Fetch(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, ids[4], page[0].ID)
	assert.Equal(t, ids[3], page[1].ID)

	page, total, err = repo.Fetch(context.Background(), 2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 1)
	assert.Equal(t, ids[0], page[0].ID)

	page, total, err = repo.Fetch(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, page)
}

func TestUpdateEmailStatus(t *testing.T) {
	repo := NewSubmissionRepository()
	ids := seed(t, repo, 1)
	sentAt := time.Now().UTC()

	require.NoError(t, repo.UpdateEmailStatus(context.Background(), ids[0], true, sentAt))
	got, err := repo.GetByID(context.Background(), ids[0])
	require.NoError(t, err)
	assert.True(t, got.EmailSent)
	require.NotNil(t, got.EmailSentAt)
	assert.Equal(t, sentAt, *got.EmailSentAt)

	assert.Error(t, repo.UpdateEmailStatus(context.Background(), "missing", true, sentAt))
}

func TestUpdateStatus(t *testing.T) {
	repo := NewSubmissionRepository()
	ids := seed(t, repo, 1)
	notes := "replied on Monday"

	require.NoError(t, repo.UpdateStatus(context.Background(), ids[0], domain.StatusReplied, &notes))
	got, err := repo.GetByID(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReplied, got.Status)
	assert.Equal(t, "replied on Monday", got.Notes)

	// nil notes leaves the existing value alone
	require.NoError(t, repo.UpdateStatus(context.Background(), ids[0], domain.StatusArchived, nil))
	got, err = repo.GetByID(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArchived, got.Status)
	assert.Equal(t, "replied on Monday", got.Notes)

	assert.Error(t, repo.UpdateStatus(context.Background(), "missing", domain.StatusRead, nil))
}
