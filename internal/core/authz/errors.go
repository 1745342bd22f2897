package authz

import "github.com/projclock/projclock/internal/core/domain"

// DeniedError carries a denial out of the service layer. It matches
// domain.ErrForbidden under errors.Is so the transport layer maps it to 403
// while still being able to read the reason code.
type DeniedError struct {
	Reason Reason
}

func (e *DeniedError) Error() string {
	return e.Reason.Message()
}

func (e *DeniedError) Is(target error) bool {
	return target == domain.ErrForbidden
}
