package ports

import (
	"context"

	"github.com/tendermarket/tendering-api/internal/core/domain"
)

// SubmitBidInput carries all data needed to submit a bid against a tender.
type SubmitBidInput struct {
	ContractorID string
	TenderID     string
	Price        float64
	DeliveryTime int
	Comments     string
}

// BidService defines the bid use cases for both roles.
type BidService interface {
	Submit(ctx context.Context, input SubmitBidInput) (*domain.Bid, error)
	ListByContractor(ctx context.Context, contractorID string) ([]*domain.Bid, error)
	// ListByTender is scoped to the tender's owning client.
	ListByTender(ctx context.Context, clientID, tenderID string) ([]*domain.Bid, error)
	Award(ctx context.Context, clientID, tenderID, bidID string) error
	Delete(ctx context.Context, contractorID, bidID string) error
}
