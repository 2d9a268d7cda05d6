package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tendermarket/tendering-api/internal/core/domain"
	"github.com/tendermarket/tendering-api/internal/core/ports"
)

// BidService implements bid submission, listing, award and deletion.
type BidService struct {
	bids    ports.BidRepository
	tenders ports.TenderRepository
	locker  ports.TenderLocker
	audit   ports.AuditRecorder
	logger  zerolog.Logger
}

func NewBidService(bids ports.BidRepository, tenders ports.TenderRepository, locker ports.TenderLocker, audit ports.AuditRecorder, logger zerolog.Logger) *BidService {
	return &BidService{bids: bids, tenders: tenders, locker: locker, audit: audit, logger: logger}
}

// Submit creates a bid against an open tender. The check-then-insert runs
// under the tender lock so a concurrent close cannot slip between the open
// check and the write.
func (s *BidService) Submit(ctx context.Context, input ports.SubmitBidInput) (*domain.Bid, error) {
	if input.Price <= 0 || input.DeliveryTime <= 0 {
		return nil, domain.ErrInvalidBidData
	}

	unlock, err := s.locker.Lock(ctx, input.TenderID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	tender, err := s.tenders.FindByID(ctx, input.TenderID)
	if err != nil {
		return nil, err
	}
	if !tender.Biddable() {
		return nil, domain.ErrTenderNotOpen
	}

	bid := &domain.Bid{
		TenderID:     input.TenderID,
		ContractorID: input.ContractorID,
		Price:        input.Price,
		DeliveryTime: input.DeliveryTime,
		Comments:     input.Comments,
		Status:       domain.BidSubmitted,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.bids.Create(ctx, bid); err != nil {
		s.logger.Error().Err(err).Str("tender_id", input.TenderID).Msg("failed to create bid")
		return nil, err
	}

	s.logger.Info().Str("bid_id", bid.ID).Str("tender_id", input.TenderID).Str("contractor_id", input.ContractorID).Msg("bid submitted")
	s.audit.Record(domain.AuditEvent{
		EntityType: "bid",
		EntityID:   bid.ID,
		Action:     domain.AuditBidSubmitted,
		ActorID:    input.ContractorID,
		Detail:     input.TenderID,
		Timestamp:  bid.CreatedAt,
	})

	return bid, nil
}

// ListByContractor returns all bids authored by the caller.
func (s *BidService) ListByContractor(ctx context.Context, contractorID string) ([]*domain.Bid, error) {
	return s.bids.ListByContractor(ctx, contractorID)
}

// ListByTender returns all bids against the caller's tender. A tender that is
// absent or owned by someone else is concealed behind the same error.
func (s *BidService) ListByTender(ctx context.Context, clientID, tenderID string) ([]*domain.Bid, error) {
	if _, err := s.tenders.FindOwned(ctx, tenderID, clientID); err != nil {
		return nil, err
	}
	return s.bids.ListByTender(ctx, tenderID)
}

// Award transitions a bid to awarded. Ownership of the tender is verified
// before bid membership, and the at-most-one-award invariant is enforced
// under the tender lock.
func (s *BidService) Award(ctx context.Context, clientID, tenderID, bidID string) error {
	unlock, err := s.locker.Lock(ctx, tenderID)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := s.tenders.FindOwned(ctx, tenderID, clientID); err != nil {
		return err
	}
	if _, err := s.bids.FindInTender(ctx, bidID, tenderID); err != nil {
		return err
	}

	awarded, err := s.bids.HasAwarded(ctx, tenderID)
	if err != nil {
		return err
	}
	if awarded {
		return domain.ErrAlreadyAwarded
	}

	if err := s.bids.Award(ctx, tenderID, bidID); err != nil {
		return err
	}

	s.logger.Info().Str("bid_id", bidID).Str("tender_id", tenderID).Msg("bid awarded")
	s.audit.Record(domain.AuditEvent{
		EntityType: "bid",
		EntityID:   bidID,
		Action:     domain.AuditBidAwarded,
		ActorID:    clientID,
		Detail:     tenderID,
		Timestamp:  time.Now().UTC(),
	})

	return nil
}

// Delete removes the caller's bid. Existence is never revealed to a
// non-owner.
func (s *BidService) Delete(ctx context.Context, contractorID, bidID string) error {
	if err := s.bids.Delete(ctx, bidID, contractorID); err != nil {
		return err
	}

	s.logger.Info().Str("bid_id", bidID).Str("contractor_id", contractorID).Msg("bid deleted")
	s.audit.Record(domain.AuditEvent{
		EntityType: "bid",
		EntityID:   bidID,
		Action:     domain.AuditBidDeleted,
		ActorID:    contractorID,
		Timestamp:  time.Now().UTC(),
	})

	return nil
}
