package ports

import (
	"context"

	"github.com/projclock/projclock/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	// FindByID retrieves a project with its current membership roster.
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	// ListByMember returns the projects whose roster contains userID.
	ListByMember(ctx context.Context, userID int64) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
}
