package ports

import (
	"context"

	"github.com/tendermarket/tendering-api/internal/core/domain"
)

// BidRepository defines persistence operations for bids.
type BidRepository interface {
	Create(ctx context.Context, b *domain.Bid) error
	// ListByContractor returns all bids authored by contractorID in insertion order.
	ListByContractor(ctx context.Context, contractorID string) ([]*domain.Bid, error)
	// ListByTender returns all bids against tenderID in insertion order.
	ListByTender(ctx context.Context, tenderID string) ([]*domain.Bid, error)
	// FindInTender retrieves a bid only when it belongs to tenderID; both an
	// absent id and a tender mismatch resolve to domain.ErrBidNotFound.
	FindInTender(ctx context.Context, bidID, tenderID string) (*domain.Bid, error)
	// HasAwarded reports whether any bid against tenderID holds awarded status.
	HasAwarded(ctx context.Context, tenderID string) (bool, error)
	// Award transitions the bid to awarded when it exists under tenderID;
	// otherwise it returns domain.ErrBidNotFound.
	Award(ctx context.Context, tenderID, bidID string) error
	// Delete removes the bid when it exists and is authored by contractorID;
	// otherwise it returns domain.ErrBidAccess.
	Delete(ctx context.Context, bidID, contractorID string) error
}
