package ports

import (
	"context"

	"github.com/projclock/projclock/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, e *domain.AuditEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence. Recording
// never blocks the request path and failures are non-fatal.
type AuditRecorder interface {
	Record(e domain.AuditEvent)
}
