package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/projclock/projclock/internal/core/authz"
	"github.com/projclock/projclock/internal/core/domain"
	"github.com/projclock/projclock/internal/core/ports"
)

// ProjectService implements admin-gated project CRUD.
type ProjectService struct {
	repo   ports.ProjectRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
	now    func() time.Time
}

func NewProjectService(repo ports.ProjectRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ProjectService {
	return &ProjectService{
		repo:   repo,
		audit:  audit,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// forbidden converts a denial into an error the transport layer maps to 403.
func forbidden(d authz.Decision) error {
	return &authz.DeniedError{Reason: d.Reason}
}

func (s *ProjectService) Create(ctx context.Context, actor authz.Actor, in ports.CreateProjectInput) (*domain.Project, error) {
	if d := authz.Evaluate(actor, authz.ActionWrite, authz.AdminOnly()); !d.Allowed {
		return nil, forbidden(d)
	}

	startDate := in.StartDate
	if startDate.IsZero() {
		startDate = s.now()
	}

	project := &domain.Project{
		Title:       in.Title,
		Description: in.Description,
		Technology:  in.Technology,
		Members:     in.Members,
		StartDate:   startDate,
		EndDate:     in.EndDate,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.record(domain.AuditEntityProject, created.ID, domain.AuditActionCreate, actor.UserID)
	s.logger.Info().Int64("project_id", created.ID).Str("title", created.Title).Msg("project created")
	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, actor authz.Actor, id int64) (*domain.Project, error) {
	if d := authz.Evaluate(actor, authz.ActionRead); !d.Allowed {
		return nil, forbidden(d)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, actor authz.Actor) ([]domain.Project, error) {
	if d := authz.Evaluate(actor, authz.ActionWrite, authz.AdminOnly()); !d.Allowed {
		return nil, forbidden(d)
	}
	return s.repo.List(ctx)
}

func (s *ProjectService) ListMine(ctx context.Context, actor authz.Actor) ([]domain.Project, error) {
	return s.repo.ListByMember(ctx, actor.UserID)
}

func (s *ProjectService) Update(ctx context.Context, actor authz.Actor, id int64, in ports.UpdateProjectInput) (*domain.Project, error) {
	if d := authz.Evaluate(actor, authz.ActionWrite, authz.AdminOnly()); !d.Allowed {
		return nil, forbidden(d)
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		project.Title = *in.Title
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Technology != nil {
		project.Technology = in.Technology
	}
	if in.Members != nil {
		project.Members = in.Members
	}
	if in.EndDate != nil {
		project.EndDate = in.EndDate
	}

	if err := s.repo.Update(ctx, project); err != nil {
		s.logger.Error().Err(err).Int64("project_id", id).Msg("failed to update project")
		return nil, err
	}

	s.record(domain.AuditEntityProject, id, domain.AuditActionUpdate, actor.UserID)
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	if d := authz.Evaluate(actor, authz.ActionWrite, authz.AdminOnly()); !d.Allowed {
		return forbidden(d)
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(domain.AuditEntityProject, id, domain.AuditActionDelete, actor.UserID)
	s.logger.Info().Int64("project_id", id).Msg("project deleted")
	return nil
}

func (s *ProjectService) record(entity string, entityID int64, action string, actorID int64) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		ActorID:   actorID,
		Timestamp: s.now(),
	})
}
