package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/projclock/projclock/internal/core/domain"
	"github.com/projclock/projclock/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /v1/projects (admin only).
//
// @Summary      Create a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Technology:  req.Technology,
		Members:     req.Members,
	}
	if start, err := parseDate(req.StartDate); err == nil && start != nil {
		in.StartDate = *start
	}
	if end, err := parseDate(req.EndDate); err == nil {
		in.EndDate = end
	}

	project, err := h.service.Create(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProjectResponse(project, time.Now()))
}

// Get handles GET /v1/projects/:id.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProjectResponse(project, time.Now()))
}

// List handles GET /v1/projects (admin only).
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProjectListResponse(projects))
}

// ListMine handles GET /v1/projects/me.
//
// @Summary      List projects the caller is a member of
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  projectResponse
// @Router       /v1/projects/me [get]
func (h *ProjectHandler) ListMine(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	projects, err := h.service.ListMine(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProjectListResponse(projects))
}

// Update handles PUT /v1/projects/:id (admin only).
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  projectResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Technology:  req.Technology,
		Members:     req.Members,
	}
	if end, err := parseDate(req.EndDate); err == nil {
		in.EndDate = end
	}

	project, err := h.service.Update(c.Request().Context(), actor, id, in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProjectResponse(project, time.Now()))
}

// Delete handles DELETE /v1/projects/:id (admin only).
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  int  true  "Project id"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func toProjectListResponse(projects []domain.Project) []projectResponse {
	now := time.Now()
	out := make([]projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i], now))
	}
	return out
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
