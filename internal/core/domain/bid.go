package domain

import "time"

// BidStatus represents the lifecycle state of a bid.
type BidStatus string

const (
	BidSubmitted BidStatus = "submitted"
	BidAwarded   BidStatus = "awarded"
)

// Bid is a contractor's offer against an open tender. The submitting
// contractor owns it for mutation; the tender's owning client sees it for
// read and award.
type Bid struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	TenderID     string    `json:"tender_id" bson:"tender_id"`
	ContractorID string    `json:"-" bson:"contractor_id"`
	Price        float64   `json:"price" bson:"price"`
	DeliveryTime int       `json:"delivery_time" bson:"delivery_time"`
	Comments     string    `json:"comments" bson:"comments"`
	Status       BidStatus `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
