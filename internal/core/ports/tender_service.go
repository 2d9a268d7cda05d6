package ports

import (
	"context"
	"time"

	"github.com/tendermarket/tendering-api/internal/core/domain"
)

// CreateTenderInput carries all data needed to publish a tender.
type CreateTenderInput struct {
	OwnerID     string
	Title       string
	Description string
	Deadline    time.Time
	Budget      float64
	Attachment  string
}

// TenderService defines the client-facing tender use cases. Every operation
// is ownership-scoped to the authenticated client.
type TenderService interface {
	Create(ctx context.Context, input CreateTenderInput) (*domain.Tender, error)
	List(ctx context.Context, ownerID string) ([]*domain.Tender, error)
	UpdateStatus(ctx context.Context, ownerID, tenderID string, status domain.TenderStatus) error
	Delete(ctx context.Context, ownerID, tenderID string) error
}
