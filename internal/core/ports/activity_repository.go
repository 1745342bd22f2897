package ports

import (
	"context"

	"github.com/projclock/projclock/internal/core/domain"
)

// ActivityRepository defines persistence operations for project activities.
type ActivityRepository interface {
	Create(ctx context.Context, a *domain.ProjectActivity) (*domain.ProjectActivity, error)
	FindByID(ctx context.Context, id int64) (*domain.ProjectActivity, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.ProjectActivity, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.ProjectActivity, error)
	ListByProjectAndUser(ctx context.Context, projectID, userID int64) ([]domain.ProjectActivity, error)
	Update(ctx context.Context, a *domain.ProjectActivity) error
	Delete(ctx context.Context, id int64) error
}
