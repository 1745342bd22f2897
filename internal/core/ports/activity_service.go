package ports

import (
	"context"
	"time"

	"github.com/projclock/projclock/internal/core/analytics"
	"github.com/projclock/projclock/internal/core/authz"
	"github.com/projclock/projclock/internal/core/domain"
)

// CreateActivityInput carries the declared fields of an activity creation
// request. UserID is the owner declared in the payload; it must match the
// actor or the request is denied.
type CreateActivityInput struct {
	Description string
	ProjectID   int64
	UserID      int64
}

// UpdateActivityInput carries a partial activity update; only the owner's
// description and end time are mutable.
type UpdateActivityInput struct {
	Description *string
	EndTime     *time.Time
}

// ActivityService defines use-case operations for activities and their time
// reports.
type ActivityService interface {
	Create(ctx context.Context, actor authz.Actor, in CreateActivityInput) (*domain.ProjectActivity, error)
	ListMine(ctx context.Context, actor authz.Actor) ([]domain.ProjectActivity, error)
	Update(ctx context.Context, actor authz.Actor, id int64, in UpdateActivityInput) (*domain.ProjectActivity, error)
	// Stop closes a running activity, setting its end time to now.
	Stop(ctx context.Context, actor authz.Actor, id int64) (*domain.ProjectActivity, error)
	Delete(ctx context.Context, actor authz.Actor, id int64) error

	// IndividualProjectTime reports the total time one user spent on a
	// project; allowed for admins and for the user themselves.
	IndividualProjectTime(ctx context.Context, actor authz.Actor, projectID, userID int64) (analytics.Summary, error)
	// TotalProjectTime reports the total time all users spent on a project;
	// admin only.
	TotalProjectTime(ctx context.Context, actor authz.Actor, projectID int64) (analytics.Summary, error)
}
