package usecase

import (
	"context"

	"github.com/nazorathub/nazorat-hub/internal/entity"
)

type LeadRepositoryInterface interface {
	All(ctx context.Context) ([]entity.Lead, error)
	UnassignedPool(ctx context.Context) ([]entity.Lead, error)
	PoolForOperator(ctx context.Context, operatorID string) ([]entity.Lead, error)
	BulkAdd(ctx context.Context, leads []entity.Lead, operatorID string) error
	Update(ctx context.Context, l entity.Lead) error
	Purge(ctx context.Context, match func(entity.Lead) bool) error
}

type UserRepositoryInterface interface {
	All(ctx context.Context) ([]entity.User, error)
	Save(ctx context.Context, u entity.User) error
	Delete(ctx context.Context, userID string) error
	FindByID(ctx context.Context, userID string) (*entity.User, error)
}

type ReportRepositoryInterface interface {
	All(ctx context.Context) ([]entity.Report, error)
	Append(ctx context.Context, report entity.Report) error
}

// ReportAnalyzer produces free-text commentary over a report set.
type ReportAnalyzer interface {
	Analyze(ctx context.Context, reports []entity.Report) (string, error)
}
