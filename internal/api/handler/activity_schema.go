package handler

import (
	"time"

	"github.com/projclock/projclock/internal/core/domain"
)

type createActivityRequest struct {
	Description string `json:"description" validate:"required,max=400"`
	Project     int64  `json:"project"     validate:"required,gt=0"`
	User        int64  `json:"user"        validate:"required,gt=0"`
}

type updateActivityRequest struct {
	Description *string    `json:"description,omitempty" validate:"omitempty,max=400"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

type activityResponse struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Project     int64      `json:"project"`
	User        int64      `json:"user"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Running     bool       `json:"running"`
}

func toActivityResponse(a *domain.ProjectActivity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		Description: a.Description,
		Project:     a.ProjectID,
		User:        a.UserID,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Running:     a.IsRunning(),
	}
}

func toActivityListResponse(activities []domain.ProjectActivity) []activityResponse {
	out := make([]activityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, toActivityResponse(&activities[i]))
	}
	return out
}
