package repository

import (
	"context"

	"github.com/electronduke5/SalaryCounter/internal/domain"
)

type SyncRunRepo interface {
	Create(ctx context.Context, run *domain.SyncRun) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.SyncRun, error)
}
