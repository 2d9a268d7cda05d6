package domain

import "time"

// Audit actions recorded against the audit_events collection.
const (
	AuditUserRegistered     = "user_registered"
	AuditTenderCreated      = "tender_created"
	AuditTenderStatusChange = "tender_status_changed"
	AuditTenderDeleted      = "tender_deleted"
	AuditBidSubmitted       = "bid_submitted"
	AuditBidAwarded         = "bid_awarded"
	AuditBidDeleted         = "bid_deleted"
)

// AuditEvent records a single successful mutation for the audit trail.
// Events are persisted asynchronously and never affect request outcomes.
type AuditEvent struct {
	EntityType string    `json:"entity_type" bson:"entity_type"`
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	Action     string    `json:"action" bson:"action"`
	ActorID    string    `json:"actor_id" bson:"actor_id"`
	Detail     string    `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
