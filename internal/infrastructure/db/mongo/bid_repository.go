package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tendermarket/tendering-api/internal/core/domain"
)

const bidsCollection = "bids"

// BidRepository persists bids.
type BidRepository struct {
	coll *mongo.Collection
}

func NewBidRepository(db *mongo.Database) *BidRepository {
	return &BidRepository{coll: db.Collection(bidsCollection)}
}

func (r *BidRepository) Create(ctx context.Context, b *domain.Bid) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert bid: %w", err)
	}
	return nil
}

func (r *BidRepository) ListByContractor(ctx context.Context, contractorID string) ([]*domain.Bid, error) {
	return r.list(ctx, bson.M{"contractor_id": contractorID})
}

func (r *BidRepository) ListByTender(ctx context.Context, tenderID string) ([]*domain.Bid, error) {
	return r.list(ctx, bson.M{"tender_id": tenderID})
}

func (r *BidRepository) list(ctx context.Context, filter bson.M) ([]*domain.Bid, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}

	bids := []*domain.Bid{}
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, fmt.Errorf("decode bids: %w", err)
	}
	return bids, nil
}

func (r *BidRepository) FindInTender(ctx context.Context, bidID, tenderID string) (*domain.Bid, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Bid
	err := r.coll.FindOne(ctx, bson.M{"_id": bidID, "tender_id": tenderID}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBidNotFound
		}
		return nil, fmt.Errorf("find bid: %w", err)
	}
	return &b, nil
}

func (r *BidRepository) HasAwarded(ctx context.Context, tenderID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"tender_id": tenderID, "status": domain.BidAwarded})
	if err != nil {
		return false, fmt.Errorf("count awarded bids: %w", err)
	}
	return n > 0, nil
}

func (r *BidRepository) Award(ctx context.Context, tenderID, bidID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": bidID, "tender_id": tenderID, "status": domain.BidSubmitted},
		bson.M{"$set": bson.M{"status": domain.BidAwarded}},
	)
	if err != nil {
		return fmt.Errorf("award bid: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBidNotFound
	}
	return nil
}

func (r *BidRepository) Delete(ctx context.Context, bidID, contractorID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Authorship is part of the delete filter; a non-owner observes the same
	// outcome as a missing bid.
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": bidID, "contractor_id": contractorID})
	if err != nil {
		return fmt.Errorf("delete bid: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBidAccess
	}
	return nil
}

// EnsureIndexes creates the listing indexes.
func (r *BidRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tender_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "contractor_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
