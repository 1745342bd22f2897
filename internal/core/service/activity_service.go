package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/projclock/projclock/internal/core/analytics"
	"github.com/projclock/projclock/internal/core/authz"
	"github.com/projclock/projclock/internal/core/domain"
	"github.com/projclock/projclock/internal/core/ports"
)

// ActivityService implements activity CRUD and the project time reports.
type ActivityService struct {
	repo     ports.ActivityRepository
	projects ports.ProjectRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
	now      func() time.Time
}

func NewActivityService(repo ports.ActivityRepository, projects ports.ProjectRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ActivityService {
	return &ActivityService{
		repo:     repo,
		projects: projects,
		audit:    audit,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create starts a new activity. The project's membership roster is fetched
// here, at authorization time, so the check always sees the current roster.
func (s *ActivityService) Create(ctx context.Context, actor authz.Actor, in ports.CreateActivityInput) (*domain.ProjectActivity, error) {
	project, err := s.projects.FindByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	decision := authz.Evaluate(actor, authz.ActionWrite,
		authz.ProjectMember(project.Members),
		authz.CurrentUser(in.UserID),
		authz.ProjectActive(project, now),
	)
	if !decision.Allowed {
		s.logger.Debug().
			Int64("user_id", actor.UserID).
			Int64("project_id", in.ProjectID).
			Str("reason", string(decision.Reason)).
			Msg("activity creation denied")
		return nil, forbidden(decision)
	}

	activity := &domain.ProjectActivity{
		Description: in.Description,
		ProjectID:   in.ProjectID,
		UserID:      in.UserID,
		StartTime:   now,
	}

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create activity")
		return nil, err
	}

	s.record(created.ID, domain.AuditActionCreate, actor.UserID)
	s.logger.Info().Int64("activity_id", created.ID).Int64("project_id", in.ProjectID).Msg("activity started")
	return created, nil
}

func (s *ActivityService) ListMine(ctx context.Context, actor authz.Actor) ([]domain.ProjectActivity, error) {
	return s.repo.ListByUser(ctx, actor.UserID)
}

func (s *ActivityService) Update(ctx context.Context, actor authz.Actor, id int64, in ports.UpdateActivityInput) (*domain.ProjectActivity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d := authz.Evaluate(actor, authz.ActionWrite, authz.Owner(activity.UserID)); !d.Allowed {
		return nil, forbidden(d)
	}

	if in.Description != nil {
		activity.Description = *in.Description
	}
	if in.EndTime != nil {
		if in.EndTime.Before(activity.StartTime) {
			return nil, domain.ErrInvalidTimeRange
		}
		activity.EndTime = in.EndTime
	}

	if err := s.repo.Update(ctx, activity); err != nil {
		s.logger.Error().Err(err).Int64("activity_id", id).Msg("failed to update activity")
		return nil, err
	}

	s.record(id, domain.AuditActionUpdate, actor.UserID)
	return activity, nil
}

// Stop closes a running activity at now. Stopping an already closed activity
// leaves its end time untouched.
func (s *ActivityService) Stop(ctx context.Context, actor authz.Actor, id int64) (*domain.ProjectActivity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d := authz.Evaluate(actor, authz.ActionWrite, authz.Owner(activity.UserID)); !d.Allowed {
		return nil, forbidden(d)
	}

	if activity.IsRunning() {
		end := s.now()
		activity.EndTime = &end
		if err := s.repo.Update(ctx, activity); err != nil {
			return nil, err
		}
		s.record(id, domain.AuditActionUpdate, actor.UserID)
		s.logger.Info().Int64("activity_id", id).Msg("activity stopped")
	}

	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if d := authz.Evaluate(actor, authz.ActionWrite, authz.Owner(activity.UserID)); !d.Allowed {
		return forbidden(d)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(id, domain.AuditActionDelete, actor.UserID)
	return nil
}

// IndividualProjectTime reports the time one user spent on a project.
// Admins may query anyone; other users only themselves.
func (s *ActivityService) IndividualProjectTime(ctx context.Context, actor authz.Actor, projectID, userID int64) (analytics.Summary, error) {
	if !actor.IsAdmin {
		if d := authz.Evaluate(actor, authz.ActionWrite, authz.Owner(userID)); !d.Allowed {
			return analytics.Summary{}, forbidden(d)
		}
	}

	activities, err := s.repo.ListByProjectAndUser(ctx, projectID, userID)
	if err != nil {
		return analytics.Summary{}, err
	}

	summary, err := analytics.Aggregate(activities, s.now())
	if errors.Is(err, analytics.ErrNoActivities) {
		return analytics.ZeroSummary(projectID), nil
	}
	return summary, err
}

// TotalProjectTime reports the time all users spent on a project combined.
func (s *ActivityService) TotalProjectTime(ctx context.Context, actor authz.Actor, projectID int64) (analytics.Summary, error) {
	if d := authz.Evaluate(actor, authz.ActionWrite, authz.AdminOnly()); !d.Allowed {
		return analytics.Summary{}, forbidden(d)
	}

	activities, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return analytics.Summary{}, err
	}

	summary, err := analytics.AggregateProject(activities, s.now())
	if errors.Is(err, analytics.ErrNoActivities) {
		return analytics.ZeroSummary(projectID), nil
	}
	return summary, err
}

func (s *ActivityService) record(activityID int64, action string, actorID int64) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Entity:    domain.AuditEntityActivity,
		EntityID:  activityID,
		Action:    action,
		ActorID:   actorID,
		Timestamp: s.now(),
	})
}
