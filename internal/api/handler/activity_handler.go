package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projclock/projclock/internal/api/metrics"
	"github.com/projclock/projclock/internal/core/ports"
)

// ActivityHandler handles HTTP requests for activity operations and the
// project time reports.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Create handles POST /v1/activities.
//
// @Summary      Start a new activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createActivityRequest  true  "Activity details"
// @Success      201   {object}  activityResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	activity, err := h.service.Create(c.Request().Context(), actor, ports.CreateActivityInput{
		Description: req.Description,
		ProjectID:   req.Project,
		UserID:      req.User,
	})
	if err != nil {
		return err
	}

	metrics.ActivitiesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toActivityResponse(activity))
}

// ListMine handles GET /v1/activities.
//
// @Summary      List the caller's activities
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  activityResponse
// @Router       /v1/activities [get]
func (h *ActivityHandler) ListMine(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	activities, err := h.service.ListMine(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toActivityListResponse(activities))
}

// Update handles PUT /v1/activities/:id (owner only).
//
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Activity id"
// @Param        body  body      updateActivityRequest  true  "Fields to update"
// @Success      200   {object}  activityResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/activities/{id} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	activity, err := h.service.Update(c.Request().Context(), actor, id, ports.UpdateActivityInput{
		Description: req.Description,
		EndTime:     req.EndTime,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toActivityResponse(activity))
}

// Stop handles POST /v1/activities/:id/stop (owner only).
//
// @Summary      Stop a running activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Activity id"
// @Success      200  {object}  activityResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/activities/{id}/stop [post]
func (h *ActivityHandler) Stop(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	activity, err := h.service.Stop(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	metrics.ActivitiesStoppedTotal.Inc()
	return c.JSON(http.StatusOK, toActivityResponse(activity))
}

// Delete handles DELETE /v1/activities/:id (owner only).
//
// @Summary      Delete an activity
// @Tags         activities
// @Security     BearerAuth
// @Param        id  path  int  true  "Activity id"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/activities/{id} [delete]
func (h *ActivityHandler) Delete(c echo.Context) error {
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

// TotalProjectTime handles GET /v1/projects/:id/time (admin only).
//
// @Summary      Total time spent on a project by all users
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Project id"
// @Success      200  {object}  analytics.Summary
// @Failure      403  {object}  map[string]string
// @Router       /v1/projects/{id}/time [get]
func (h *ActivityHandler) TotalProjectTime(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	projectID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.service.TotalProjectTime(c.Request().Context(), actor, projectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}

// IndividualProjectTime handles GET /v1/projects/:id/time/:user_id.
//
// @Summary      Total time one user spent on a project
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int  true  "Project id"
// @Param        user_id  path      int  true  "User id"
// @Success      200      {object}  analytics.Summary
// @Failure      403      {object}  map[string]string
// @Router       /v1/projects/{id}/time/{user_id} [get]
func (h *ActivityHandler) IndividualProjectTime(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	projectID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	summary, err := h.service.IndividualProjectTime(c.Request().Context(), actor, projectID, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}
