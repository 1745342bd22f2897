package ports

import (
	"context"
	"time"

	"github.com/projclock/projclock/internal/core/authz"
	"github.com/projclock/projclock/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a new project.
type CreateProjectInput struct {
	Title       string
	Description string
	Technology  []string
	Members     []int64
	StartDate   time.Time
	EndDate     *time.Time
}

// UpdateProjectInput carries a partial update; nil fields are left untouched.
// Members and Technology replace the stored value when non-nil.
type UpdateProjectInput struct {
	Title       *string
	Description *string
	Technology  []string
	Members     []int64
	EndDate     *time.Time
}

// ProjectService defines use-case operations for projects. Mutations are
// admin-only; retrievals are open to any authenticated actor.
type ProjectService interface {
	Create(ctx context.Context, actor authz.Actor, in CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, actor authz.Actor, id int64) (*domain.Project, error)
	List(ctx context.Context, actor authz.Actor) ([]domain.Project, error)
	ListMine(ctx context.Context, actor authz.Actor) ([]domain.Project, error)
	Update(ctx context.Context, actor authz.Actor, id int64, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, actor authz.Actor, id int64) error
}
