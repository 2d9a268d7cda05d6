package ports

import (
	"context"

	"github.com/tendermarket/tendering-api/internal/core/domain"
)

// AuditRecorder accepts audit events for asynchronous persistence. Record
// must not block the calling request and must never fail it.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events to the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
