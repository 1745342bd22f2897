package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/projclock/projclock/internal/core/authz"
	"github.com/projclock/projclock/internal/core/domain"
)

func invokeErrorHandler(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := invokeErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest || msg != "invalid payload" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestErrorHandler_AuthzDenial(t *testing.T) {
	denied := &authz.DeniedError{Reason: authz.ReasonNotProjectMember}
	code, msg := invokeErrorHandler(t, denied)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if msg != authz.ReasonNotProjectMember.Message() {
		t.Fatalf("expected reason message, got %q", msg)
	}
}

func TestErrorHandler_WrappedDenial(t *testing.T) {
	// Denials satisfy errors.Is(err, domain.ErrForbidden) but still surface
	// their own reason, even when wrapped.
	wrapped := errors.Join(errors.New("create activity"), &authz.DeniedError{Reason: authz.ReasonProjectClosed})
	code, msg := invokeErrorHandler(t, wrapped)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if msg != authz.ReasonProjectClosed.Message() {
		t.Fatalf("expected reason message, got %q", msg)
	}
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"project not found", domain.ErrProjectNotFound, http.StatusNotFound},
		{"activity not found", domain.ErrActivityNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"invalid time range", domain.ErrInvalidTimeRange, http.StatusUnprocessableEntity},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := invokeErrorHandler(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
		})
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	code, msg := invokeErrorHandler(t, errors.New("mongo timeout"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
