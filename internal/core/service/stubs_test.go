package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/tendermarket/tendering-api/internal/core/domain"
)

// noopAudit discards events for tests that don't assert on the audit trail.
type noopAudit struct{}

func (noopAudit) Record(domain.AuditEvent) {}

// captureAudit collects recorded events for assertion.
type captureAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *captureAudit) Record(event domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
}

func (a *captureAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.events))
	for i, e := range a.events {
		out[i] = e.Action
	}
	return out
}

// countingLocker hands out no-contention locks and counts acquisitions.
type countingLocker struct {
	mu    sync.Mutex
	locks int
}

func (l *countingLocker) Lock(_ context.Context, _ string) (func(), error) {
	l.mu.Lock()
	l.locks++
	l.mu.Unlock()
	return func() {}, nil
}

// stubTenderRepo is a map-backed TenderRepository.
type stubTenderRepo struct {
	mu      sync.Mutex
	seq     int
	tenders map[string]*domain.Tender
}

func newStubTenderRepo() *stubTenderRepo {
	return &stubTenderRepo{tenders: make(map[string]*domain.Tender)}
}

func (r *stubTenderRepo) Create(_ context.Context, t *domain.Tender) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t.ID = fmt.Sprintf("t_%d", r.seq)
	clone := *t
	r.tenders[t.ID] = &clone
	return nil
}

func (r *stubTenderRepo) FindByID(_ context.Context, id string) (*domain.Tender, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tenders[id]
	if !ok || t.Deleted {
		return nil, domain.ErrTenderNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTenderRepo) FindOwned(_ context.Context, id, ownerID string) (*domain.Tender, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tenders[id]
	if !ok || t.Deleted || t.OwnerID != ownerID {
		return nil, domain.ErrTenderAccess
	}
	clone := *t
	return &clone, nil
}

func (r *stubTenderRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Tender, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Tender{}
	for _, t := range r.tenders {
		if t.OwnerID == ownerID && !t.Deleted {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTenderRepo) UpdateStatus(_ context.Context, id string, status domain.TenderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tenders[id]
	if !ok || t.Deleted {
		return domain.ErrTenderNotFound
	}
	t.Status = status
	return nil
}

func (r *stubTenderRepo) Delete(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tenders[id]
	if !ok || t.Deleted || t.OwnerID != ownerID {
		return domain.ErrTenderAccess
	}
	t.Deleted = true
	return nil
}

// stubBidRepo is a map-backed BidRepository.
type stubBidRepo struct {
	mu   sync.Mutex
	seq  int
	bids map[string]*domain.Bid
}

func newStubBidRepo() *stubBidRepo {
	return &stubBidRepo{bids: make(map[string]*domain.Bid)}
}

func (r *stubBidRepo) Create(_ context.Context, b *domain.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	b.ID = fmt.Sprintf("b_%d", r.seq)
	clone := *b
	r.bids[b.ID] = &clone
	return nil
}

func (r *stubBidRepo) ListByContractor(_ context.Context, contractorID string) ([]*domain.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Bid{}
	for _, b := range r.bids {
		if b.ContractorID == contractorID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBidRepo) ListByTender(_ context.Context, tenderID string) ([]*domain.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Bid{}
	for _, b := range r.bids {
		if b.TenderID == tenderID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBidRepo) FindInTender(_ context.Context, bidID, tenderID string) (*domain.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bids[bidID]
	if !ok || b.TenderID != tenderID {
		return nil, domain.ErrBidNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBidRepo) HasAwarded(_ context.Context, tenderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bids {
		if b.TenderID == tenderID && b.Status == domain.BidAwarded {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubBidRepo) Award(_ context.Context, tenderID, bidID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bids[bidID]
	if !ok || b.TenderID != tenderID || b.Status != domain.BidSubmitted {
		return domain.ErrBidNotFound
	}
	b.Status = domain.BidAwarded
	return nil
}

func (r *stubBidRepo) Delete(_ context.Context, bidID, contractorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bids[bidID]
	if !ok || b.ContractorID != contractorID {
		return domain.ErrBidAccess
	}
	delete(r.bids, bidID)
	return nil
}
