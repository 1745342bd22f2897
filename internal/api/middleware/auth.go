package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Denylist abstracts the revoked-token store consulted on every request.
type Denylist interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Auth validates the JWT and injects claims into context. A nil denylist
// disables the revocation check.
func Auth(jwtSecret string, denylist Denylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), parts[1])
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "token verification unavailable")
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			// JSON numbers decode into float64 inside MapClaims.
			userID, ok := claims["user_id"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
			}

			c.Set("user_id", int64(userID))
			c.Set("username", claims["username"])
			c.Set("role", claims["role"])
			c.Set("token", parts[1])

			return next(c)
		}
	}
}
