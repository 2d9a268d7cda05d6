package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tendermarket/tendering-api/internal/core/domain"
	"github.com/tendermarket/tendering-api/internal/core/ports"
)

type bidFixture struct {
	tenders *stubTenderRepo
	bids    *stubBidRepo
	audit   *captureAudit
	svc     *BidService
	tender  *domain.Tender
}

func newBidFixture(t *testing.T) *bidFixture {
	t.Helper()
	tenders := newStubTenderRepo()
	bids := newStubBidRepo()
	audit := &captureAudit{}
	svc := NewBidService(bids, tenders, &countingLocker{}, audit, zerolog.Nop())

	tenderSvc := newTenderService(tenders, &countingLocker{}, noopAudit{})
	tender, err := tenderSvc.Create(context.Background(), validTenderInput("client-1"))
	if err != nil {
		t.Fatalf("tender setup failed: %v", err)
	}

	return &bidFixture{tenders: tenders, bids: bids, audit: audit, svc: svc, tender: tender}
}

func (f *bidFixture) submit(t *testing.T, contractorID string) *domain.Bid {
	t.Helper()
	bid, err := f.svc.Submit(context.Background(), ports.SubmitBidInput{
		ContractorID: contractorID,
		TenderID:     f.tender.ID,
		Price:        1200,
		DeliveryTime: 14,
		Comments:     "can start next week",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return bid
}

func TestBidService_Submit(t *testing.T) {
	f := newBidFixture(t)

	bid := f.submit(t, "contractor-1")
	if bid.ID == "" {
		t.Fatalf("expected bid id to be assigned")
	}
	if bid.Status != domain.BidSubmitted {
		t.Fatalf("expected status %s, got %s", domain.BidSubmitted, bid.Status)
	}
	if actions := f.audit.actions(); len(actions) != 1 || actions[0] != domain.AuditBidSubmitted {
		t.Fatalf("expected one %s audit event, got %v", domain.AuditBidSubmitted, actions)
	}
}

func TestBidService_Submit_Validation(t *testing.T) {
	f := newBidFixture(t)

	cases := []struct {
		name  string
		input ports.SubmitBidInput
		want  error
	}{
		{"zero price", ports.SubmitBidInput{ContractorID: "c", TenderID: f.tender.ID, Price: 0, DeliveryTime: 5}, domain.ErrInvalidBidData},
		{"negative price", ports.SubmitBidInput{ContractorID: "c", TenderID: f.tender.ID, Price: -5, DeliveryTime: 5}, domain.ErrInvalidBidData},
		{"zero delivery time", ports.SubmitBidInput{ContractorID: "c", TenderID: f.tender.ID, Price: 100, DeliveryTime: 0}, domain.ErrInvalidBidData},
		{"unknown tender", ports.SubmitBidInput{ContractorID: "c", TenderID: "missing", Price: 100, DeliveryTime: 5}, domain.ErrTenderNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.svc.Submit(context.Background(), tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBidService_Submit_ClosedTender(t *testing.T) {
	f := newBidFixture(t)

	if err := f.tenders.UpdateStatus(context.Background(), f.tender.ID, domain.TenderClosed); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	_, err := f.svc.Submit(context.Background(), ports.SubmitBidInput{
		ContractorID: "contractor-1", TenderID: f.tender.ID, Price: 100, DeliveryTime: 5,
	})
	if !errors.Is(err, domain.ErrTenderNotOpen) {
		t.Fatalf("expected ErrTenderNotOpen, got %v", err)
	}

	// Reopening restores biddability.
	if err := f.tenders.UpdateStatus(context.Background(), f.tender.ID, domain.TenderOpen); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	f.submit(t, "contractor-1")
}

func TestBidService_ListByTender(t *testing.T) {
	f := newBidFixture(t)
	f.submit(t, "contractor-1")
	f.submit(t, "contractor-2")

	bids, err := f.svc.ListByTender(context.Background(), "client-1", f.tender.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(bids) != 2 {
		t.Fatalf("expected 2 bids, got %d", len(bids))
	}

	// Not the owner: tender existence is concealed.
	if _, err := f.svc.ListByTender(context.Background(), "client-2", f.tender.ID); !errors.Is(err, domain.ErrTenderAccess) {
		t.Fatalf("expected ErrTenderAccess, got %v", err)
	}
}

func TestBidService_ListByContractor(t *testing.T) {
	f := newBidFixture(t)
	f.submit(t, "contractor-1")
	f.submit(t, "contractor-2")

	mine, err := f.svc.ListByContractor(context.Background(), "contractor-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 bid, got %d", len(mine))
	}
	if mine[0].ContractorID != "contractor-1" {
		t.Fatalf("listing leaked another contractor's bid")
	}
}

func TestBidService_Award(t *testing.T) {
	f := newBidFixture(t)
	bid := f.submit(t, "contractor-1")

	if err := f.svc.Award(context.Background(), "client-1", f.tender.ID, bid.ID); err != nil {
		t.Fatalf("award failed: %v", err)
	}

	stored, err := f.bids.FindInTender(context.Background(), bid.ID, f.tender.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Status != domain.BidAwarded {
		t.Fatalf("expected status %s, got %s", domain.BidAwarded, stored.Status)
	}
}

func TestBidService_Award_Errors(t *testing.T) {
	f := newBidFixture(t)
	first := f.submit(t, "contractor-1")
	second := f.submit(t, "contractor-2")

	// Not the tender owner: concealed.
	if err := f.svc.Award(context.Background(), "client-2", f.tender.ID, first.ID); !errors.Is(err, domain.ErrTenderAccess) {
		t.Fatalf("expected ErrTenderAccess, got %v", err)
	}
	// Bid not under this tender.
	if err := f.svc.Award(context.Background(), "client-1", f.tender.ID, "missing"); !errors.Is(err, domain.ErrBidNotFound) {
		t.Fatalf("expected ErrBidNotFound, got %v", err)
	}

	if err := f.svc.Award(context.Background(), "client-1", f.tender.ID, first.ID); err != nil {
		t.Fatalf("award failed: %v", err)
	}

	// At most one awarded bid per tender.
	if err := f.svc.Award(context.Background(), "client-1", f.tender.ID, second.ID); !errors.Is(err, domain.ErrAlreadyAwarded) {
		t.Fatalf("expected ErrAlreadyAwarded, got %v", err)
	}
	// Bid existence is still checked before the award state, so an unknown
	// bid on an already-awarded tender reports not-found.
	if err := f.svc.Award(context.Background(), "client-1", f.tender.ID, "missing"); !errors.Is(err, domain.ErrBidNotFound) {
		t.Fatalf("expected ErrBidNotFound after award, got %v", err)
	}
}

func TestBidService_Delete(t *testing.T) {
	f := newBidFixture(t)
	bid := f.submit(t, "contractor-1")

	// Not the author: concealed.
	if err := f.svc.Delete(context.Background(), "contractor-2", bid.ID); !errors.Is(err, domain.ErrBidAccess) {
		t.Fatalf("expected ErrBidAccess, got %v", err)
	}

	if err := f.svc.Delete(context.Background(), "contractor-1", bid.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := f.bids.FindInTender(context.Background(), bid.ID, f.tender.ID); !errors.Is(err, domain.ErrBidNotFound) {
		t.Fatalf("expected bid to be gone, got %v", err)
	}
}
