package authz

import (
	"testing"
	"time"

	"github.com/projclock/projclock/internal/core/domain"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEvaluate_ReadAlwaysAllowed(t *testing.T) {
	actors := []Actor{
		{UserID: 1, IsAdmin: false},
		{UserID: 2, IsAdmin: true},
	}
	for _, actor := range actors {
		d := Evaluate(actor, ActionRead,
			Owner(99),
			ProjectMember(nil),
			CurrentUser(99),
			AdminOnly(),
		)
		if !d.Allowed {
			t.Fatalf("read denied for actor %+v: %s", actor, d.Reason)
		}
	}
}

func TestOwner(t *testing.T) {
	actor := Actor{UserID: 7}

	if d := Evaluate(actor, ActionWrite, Owner(7)); !d.Allowed {
		t.Fatalf("owner denied: %s", d.Reason)
	}

	d := Evaluate(actor, ActionWrite, Owner(8))
	if d.Allowed {
		t.Fatalf("non-owner allowed")
	}
	if d.Reason != ReasonNotOwner {
		t.Fatalf("expected %s, got %s", ReasonNotOwner, d.Reason)
	}
}

func TestProjectMember(t *testing.T) {
	members := []int64{2, 3}

	if d := Evaluate(Actor{UserID: 2}, ActionWrite, ProjectMember(members)); !d.Allowed {
		t.Fatalf("member denied: %s", d.Reason)
	}

	// Admin status does not bypass membership.
	d := Evaluate(Actor{UserID: 4, IsAdmin: true}, ActionWrite, ProjectMember(members))
	if d.Allowed {
		t.Fatalf("non-member allowed")
	}
	if d.Reason != ReasonNotProjectMember {
		t.Fatalf("expected %s, got %s", ReasonNotProjectMember, d.Reason)
	}
}

func TestCurrentUser(t *testing.T) {
	if d := Evaluate(Actor{UserID: 5}, ActionWrite, CurrentUser(5)); !d.Allowed {
		t.Fatalf("self denied: %s", d.Reason)
	}

	d := Evaluate(Actor{UserID: 5}, ActionWrite, CurrentUser(6))
	if d.Allowed {
		t.Fatalf("mismatched user allowed")
	}
	if d.Reason != ReasonUserMismatch {
		t.Fatalf("expected %s, got %s", ReasonUserMismatch, d.Reason)
	}
}

func TestProjectActive(t *testing.T) {
	now := date("2024-06-15")

	open := &domain.Project{ID: 1}
	if d := Evaluate(Actor{UserID: 1}, ActionWrite, ProjectActive(open, now)); !d.Allowed {
		t.Fatalf("project without end date denied: %s", d.Reason)
	}

	// End date equal to today still counts as active.
	today := date("2024-06-15")
	endsToday := &domain.Project{ID: 2, EndDate: &today}
	if d := Evaluate(Actor{UserID: 1}, ActionWrite, ProjectActive(endsToday, now)); !d.Allowed {
		t.Fatalf("project ending today denied: %s", d.Reason)
	}

	yesterday := date("2024-06-14")
	closed := &domain.Project{ID: 3, EndDate: &yesterday}
	d := Evaluate(Actor{UserID: 1}, ActionWrite, ProjectActive(closed, now))
	if d.Allowed {
		t.Fatalf("closed project allowed")
	}
	if d.Reason != ReasonProjectClosed {
		t.Fatalf("expected %s, got %s", ReasonProjectClosed, d.Reason)
	}
}

func TestAdminOnly(t *testing.T) {
	if d := Evaluate(Actor{UserID: 1, IsAdmin: true}, ActionWrite, AdminOnly()); !d.Allowed {
		t.Fatalf("admin denied: %s", d.Reason)
	}

	d := Evaluate(Actor{UserID: 1}, ActionWrite, AdminOnly())
	if d.Allowed {
		t.Fatalf("non-admin allowed")
	}
	if d.Reason != ReasonNotAdmin {
		t.Fatalf("expected %s, got %s", ReasonNotAdmin, d.Reason)
	}
}

func TestEvaluate_FirstFailureSurfaced(t *testing.T) {
	now := date("2024-06-15")
	yesterday := date("2024-06-14")
	closed := &domain.Project{ID: 1, Members: []int64{9}, EndDate: &yesterday}

	// Actor fails membership, current-user, and active-window; membership
	// runs first so its reason wins.
	actor := Actor{UserID: 4}
	d := Evaluate(actor, ActionWrite,
		ProjectMember(closed.Members),
		CurrentUser(9),
		ProjectActive(closed, now),
	)
	if d.Allowed {
		t.Fatalf("expected denial")
	}
	if d.Reason != ReasonNotProjectMember {
		t.Fatalf("expected first failing rule's reason, got %s", d.Reason)
	}

	// A member with matching user id is still blocked by the closed window.
	d = Evaluate(Actor{UserID: 9}, ActionWrite,
		ProjectMember(closed.Members),
		CurrentUser(9),
		ProjectActive(closed, now),
	)
	if d.Reason != ReasonProjectClosed {
		t.Fatalf("expected %s, got %s", ReasonProjectClosed, d.Reason)
	}
}

func TestEvaluate_NoRules(t *testing.T) {
	if d := Evaluate(Actor{UserID: 1}, ActionWrite); !d.Allowed {
		t.Fatalf("write with empty rule stack denied: %s", d.Reason)
	}
}

func TestDeniedError_MatchesForbidden(t *testing.T) {
	err := &DeniedError{Reason: ReasonNotOwner}
	if !err.Is(domain.ErrForbidden) {
		t.Fatalf("DeniedError should match domain.ErrForbidden")
	}
	if err.Error() == "" {
		t.Fatalf("expected a message")
	}
}
