package usecase

import (
	"context"
	"fmt"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type adminUsecase struct {
	repo domain.SubmissionRepository
}

// NewAdminUsecase exposes the operator surface over persisted submissions.
func NewAdminUsecase(repo domain.SubmissionRepository) domain.AdminUsecase {
	return &adminUsecase{repo: repo}
}

func (uc *adminUsecase) ListSubmissions(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, int64, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.Fetch(ctx, limit, offset)
}

func (uc *adminUsecase) GetSubmission(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	sub, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Submission not found")
	}
	return sub, nil
}

func (uc *adminUsecase) UpdateSubmission(ctx context.Context, id string, status string, notes *string) error {
	if !domain.ValidStatus(status) {
		return apperror.BadRequest(fmt.Sprintf("Invalid status: %s", status))
	}
	if err := uc.repo.UpdateStatus(ctx, id, status, notes); err != nil {
		return apperror.NotFound("Submission not found")
	}
	return nil
}
