// Package authz decides whether an actor may perform an action on a project
// or activity. Endpoints stack the rules that apply to them; Evaluate runs
// the stack with short-circuit AND and surfaces the first failing rule's
// reason. Reads bypass the stack entirely.
package authz

import (
	"time"

	"github.com/projclock/projclock/internal/core/domain"
)

// Actor is the authenticated identity a request acts as.
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// Action classifies a request as a retrieval or a mutation.
type Action int

const (
	ActionRead Action = iota
	ActionWrite
)

// Reason is a discrete code explaining a denial.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNotOwner         Reason = "not_owner"
	ReasonNotProjectMember Reason = "not_project_member"
	ReasonUserMismatch     Reason = "user_mismatch"
	ReasonProjectClosed    Reason = "project_closed"
	ReasonNotAdmin         Reason = "not_admin"
)

// Message returns the client-facing explanation for the reason code.
func (r Reason) Message() string {
	switch r {
	case ReasonNotOwner:
		return "you are not the owner of this activity"
	case ReasonNotProjectMember:
		return "you are not a member of this project"
	case ReasonUserMismatch:
		return "you cannot create an activity for another user"
	case ReasonProjectClosed:
		return "the project is not active"
	case ReasonNotAdmin:
		return "admin privileges required"
	default:
		return "access forbidden"
	}
}

// Decision is the result of an authorization check.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Allow is the positive decision.
func Allow() Decision { return Decision{Allowed: true} }

// Deny is a negative decision carrying the reason code.
func Deny(r Reason) Decision { return Decision{Reason: r} }

// Rule is an independent predicate over the acting identity. Each rule
// returns Allow or Deny with its own reason; rules never consult each other.
type Rule func(actor Actor) Decision

// Owner permits only the owner of an activity to mutate it.
func Owner(ownerID int64) Rule {
	return func(actor Actor) Decision {
		if actor.UserID == ownerID {
			return Allow()
		}
		return Deny(ReasonNotOwner)
	}
}

// ProjectMember permits only users on the project's current membership
// roster. Callers must pass a roster fetched at check time, not a snapshot
// taken earlier in the request.
func ProjectMember(memberIDs []int64) Rule {
	return func(actor Actor) Decision {
		for _, id := range memberIDs {
			if id == actor.UserID {
				return Allow()
			}
		}
		return Deny(ReasonNotProjectMember)
	}
}

// CurrentUser permits a creation only when the owner declared in the payload
// is the actor itself.
func CurrentUser(declaredUserID int64) Rule {
	return func(actor Actor) Decision {
		if actor.UserID == declaredUserID {
			return Allow()
		}
		return Deny(ReasonUserMismatch)
	}
}

// ProjectActive permits writes only while the project's active window is
// open at the given instant. The rule does not look at the actor.
func ProjectActive(p *domain.Project, now time.Time) Rule {
	return func(Actor) Decision {
		if p.IsActiveAt(now) {
			return Allow()
		}
		return Deny(ReasonProjectClosed)
	}
}

// AdminOnly permits only administrators.
func AdminOnly() Rule {
	return func(actor Actor) Decision {
		if actor.IsAdmin {
			return Allow()
		}
		return Deny(ReasonNotAdmin)
	}
}

// Evaluate runs the rules in order and returns the first denial, or Allow
// when every rule passes. Read actions are always allowed before any rule is
// consulted.
func Evaluate(actor Actor, action Action, rules ...Rule) Decision {
	if action == ActionRead {
		return Allow()
	}
	for _, rule := range rules {
		if d := rule(actor); !d.Allowed {
			return d
		}
	}
	return Allow()
}
