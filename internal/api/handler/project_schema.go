package handler

import (
	"time"

	"github.com/projclock/projclock/internal/core/domain"
)

// dateLayout is the wire format for project dates.
const dateLayout = "2006-01-02"

type createProjectRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required,max=400"`
	Technology  []string `json:"technology"`
	Members     []int64  `json:"members"`
	StartDate   string   `json:"start_date"  validate:"omitempty,datetime=2006-01-02"`
	EndDate     string   `json:"end_date"    validate:"omitempty,datetime=2006-01-02"`
}

type updateProjectRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=400"`
	Technology  []string `json:"technology,omitempty"`
	Members     []int64  `json:"members,omitempty"`
	EndDate     string   `json:"end_date,omitempty"    validate:"omitempty,datetime=2006-01-02"`
}

// projectResponse is the transport view of a project; dates are rendered at
// day granularity to match the wire format of requests.
type projectResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Technology  []string `json:"technology"`
	Members     []int64  `json:"members"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date,omitempty"`
	Active      bool     `json:"active"`
}

func toProjectResponse(p *domain.Project, now time.Time) projectResponse {
	resp := projectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Technology:  p.Technology,
		Members:     p.Members,
		StartDate:   p.StartDate.UTC().Format(dateLayout),
		Active:      p.IsActiveAt(now),
	}
	if p.EndDate != nil {
		resp.EndDate = p.EndDate.UTC().Format(dateLayout)
	}
	return resp
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
