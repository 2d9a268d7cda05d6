package ports

import (
	"context"

	"github.com/tendermarket/tendering-api/internal/core/domain"
)

// TenderRepository defines persistence operations for tenders. Deleted
// tenders are tombstoned and excluded from every read.
type TenderRepository interface {
	Create(ctx context.Context, t *domain.Tender) error
	// FindByID retrieves a tender regardless of owner. Tombstoned tenders
	// resolve to domain.ErrTenderNotFound.
	FindByID(ctx context.Context, id string) (*domain.Tender, error)
	// FindOwned retrieves a tender only when ownerID matches; both an absent
	// id and an ownership mismatch resolve to domain.ErrTenderAccess.
	FindOwned(ctx context.Context, id, ownerID string) (*domain.Tender, error)
	// ListByOwner returns the caller's non-deleted tenders in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Tender, error)
	UpdateStatus(ctx context.Context, id string, status domain.TenderStatus) error
	// Delete tombstones the tender when it exists, is owned by ownerID and is
	// not already deleted; otherwise it returns domain.ErrTenderAccess.
	Delete(ctx context.Context, id, ownerID string) error
}
