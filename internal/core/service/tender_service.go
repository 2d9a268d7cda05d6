package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tendermarket/tendering-api/internal/core/domain"
	"github.com/tendermarket/tendering-api/internal/core/ports"
)

// TenderService implements the client-facing tender lifecycle.
type TenderService struct {
	repo   ports.TenderRepository
	locker ports.TenderLocker
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewTenderService(repo ports.TenderRepository, locker ports.TenderLocker, audit ports.AuditRecorder, logger zerolog.Logger) *TenderService {
	return &TenderService{repo: repo, locker: locker, audit: audit, logger: logger}
}

// Create publishes a new tender with status open.
func (s *TenderService) Create(ctx context.Context, input ports.CreateTenderInput) (*domain.Tender, error) {
	if input.Title == "" || input.Description == "" || input.Deadline.IsZero() || input.Budget == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	if !input.Deadline.After(now) || input.Budget <= 0 {
		return nil, domain.ErrInvalidTenderData
	}

	tender := &domain.Tender{
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Budget:      input.Budget,
		Attachment:  input.Attachment,
		Status:      domain.TenderOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, tender); err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create tender")
		return nil, err
	}

	s.logger.Info().Str("tender_id", tender.ID).Str("owner_id", input.OwnerID).Msg("tender created")
	s.audit.Record(domain.AuditEvent{
		EntityType: "tender",
		EntityID:   tender.ID,
		Action:     domain.AuditTenderCreated,
		ActorID:    input.OwnerID,
		Timestamp:  now,
	})

	return tender, nil
}

// List returns the caller's non-deleted tenders in insertion order.
func (s *TenderService) List(ctx context.Context, ownerID string) ([]*domain.Tender, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// UpdateStatus flips a tender between open and closed. A tender that does not
// exist at all reports plain not-found; an existing tender owned by someone
// else reports the concealed access error.
func (s *TenderService) UpdateStatus(ctx context.Context, ownerID, tenderID string, status domain.TenderStatus) error {
	if !domain.ValidTenderStatus(status) {
		return domain.ErrInvalidTenderStatus
	}

	unlock, err := s.locker.Lock(ctx, tenderID)
	if err != nil {
		return err
	}
	defer unlock()

	tender, err := s.repo.FindByID(ctx, tenderID)
	if err != nil {
		return err
	}
	if tender.OwnerID != ownerID {
		return domain.ErrTenderAccess
	}

	if tender.Status == status {
		return nil
	}
	if !tender.Status.CanTransitionTo(status) {
		return domain.ErrInvalidTenderStatus
	}

	if err := s.repo.UpdateStatus(ctx, tenderID, status); err != nil {
		s.logger.Error().Err(err).Str("tender_id", tenderID).Msg("failed to update tender status")
		return err
	}

	s.logger.Info().Str("tender_id", tenderID).Str("status", string(status)).Msg("tender status updated")
	s.audit.Record(domain.AuditEvent{
		EntityType: "tender",
		EntityID:   tenderID,
		Action:     domain.AuditTenderStatusChange,
		ActorID:    ownerID,
		Detail:     string(status),
		Timestamp:  time.Now().UTC(),
	})

	return nil
}

// Delete tombstones the tender. Absent, non-owned and already-deleted all
// fail identically.
func (s *TenderService) Delete(ctx context.Context, ownerID, tenderID string) error {
	unlock, err := s.locker.Lock(ctx, tenderID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.repo.Delete(ctx, tenderID, ownerID); err != nil {
		return err
	}

	s.logger.Info().Str("tender_id", tenderID).Str("owner_id", ownerID).Msg("tender deleted")
	s.audit.Record(domain.AuditEvent{
		EntityType: "tender",
		EntityID:   tenderID,
		Action:     domain.AuditTenderDeleted,
		ActorID:    ownerID,
		Timestamp:  time.Now().UTC(),
	})

	return nil
}
