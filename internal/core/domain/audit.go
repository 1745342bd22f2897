package domain

import "time"

// AuditEvent records a single mutation for the audit trail.
type AuditEvent struct {
	Entity    string    `bson:"entity"`
	EntityID  int64     `bson:"entity_id"`
	Action    string    `bson:"action"`
	ActorID   int64     `bson:"actor_id"`
	Timestamp time.Time `bson:"timestamp"`
}

const (
	AuditEntityProject  = "project"
	AuditEntityActivity = "activity"

	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)
