package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projclock/projclock/internal/core/authz"
	"github.com/projclock/projclock/internal/core/domain"
)

// ctxActor extracts the acting identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a zero user id means
// the middleware did not run or the token carried no identity.
func ctxActor(c echo.Context) (authz.Actor, error) {
	userID, _ := c.Get("user_id").(int64)
	if userID == 0 {
		return authz.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get("role").(string)
	return authz.Actor{UserID: userID, IsAdmin: role == domain.RoleAdmin}, nil
}
