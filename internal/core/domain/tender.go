package domain

import "time"

// TenderStatus represents the lifecycle state of a tender.
type TenderStatus string

const (
	TenderOpen   TenderStatus = "open"
	TenderClosed TenderStatus = "closed"
)

// validTenderTransitions defines the allowed state machine transitions.
// Deletion is a terminal absorption from either state and is modelled as a
// tombstone flag, not a status.
var validTenderTransitions = map[TenderStatus][]TenderStatus{
	TenderOpen:   {TenderClosed},
	TenderClosed: {TenderOpen},
}

// ValidTenderStatus reports whether s names a recognized tender status.
func ValidTenderStatus(s TenderStatus) bool {
	return s == TenderOpen || s == TenderClosed
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s TenderStatus) CanTransitionTo(next TenderStatus) bool {
	for _, allowed := range validTenderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Tender is the aggregate a client publishes and contractors bid against.
// Owned exclusively by its creating client; only the owner may mutate it.
type Tender struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	OwnerID     string       `json:"-" bson:"owner_id"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description" bson:"description"`
	Deadline    time.Time    `json:"deadline" bson:"deadline"`
	Budget      float64      `json:"budget" bson:"budget"`
	Attachment  string       `json:"attachment,omitempty" bson:"attachment,omitempty"`
	Status      TenderStatus `json:"status" bson:"status"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"-" bson:"updated_at"`
	Deleted     bool         `json:"-" bson:"deleted"`
}

// Biddable reports whether the tender currently accepts bids.
func (t *Tender) Biddable() bool {
	return !t.Deleted && t.Status == TenderOpen
}
