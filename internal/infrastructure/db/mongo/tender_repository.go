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

const tendersCollection = "tenders"

// TenderRepository persists tenders. Deleted tenders are tombstoned, never
// removed, and every read filters them out.
type TenderRepository struct {
	coll *mongo.Collection
}

func NewTenderRepository(db *mongo.Database) *TenderRepository {
	return &TenderRepository{coll: db.Collection(tendersCollection)}
}

func (r *TenderRepository) Create(ctx context.Context, t *domain.Tender) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	t.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("insert tender: %w", err)
	}
	return nil
}

func (r *TenderRepository) FindByID(ctx context.Context, id string) (*domain.Tender, error) {
	return r.findOne(ctx, bson.M{"_id": id, "deleted": false}, domain.ErrTenderNotFound)
}

func (r *TenderRepository) FindOwned(ctx context.Context, id, ownerID string) (*domain.Tender, error) {
	// Absent and not-owned collapse into the same error on purpose.
	return r.findOne(ctx, bson.M{"_id": id, "owner_id": ownerID, "deleted": false}, domain.ErrTenderAccess)
}

func (r *TenderRepository) findOne(ctx context.Context, filter bson.M, notFound error) (*domain.Tender, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Tender
	if err := r.coll.FindOne(ctx, filter).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, fmt.Errorf("find tender: %w", err)
	}
	return &t, nil
}

func (r *TenderRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Tender, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID, "deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("list tenders: %w", err)
	}

	tenders := []*domain.Tender{}
	if err := cursor.All(ctx, &tenders); err != nil {
		return nil, fmt.Errorf("decode tenders: %w", err)
	}
	return tenders, nil
}

func (r *TenderRepository) UpdateStatus(ctx context.Context, id string, status domain.TenderStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "deleted": false},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("update tender status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTenderNotFound
	}
	return nil
}

func (r *TenderRepository) Delete(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// The compound filter makes the tombstone write atomic: it matches only
	// a live tender owned by the caller, so repeated deletes fail identically.
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "owner_id": ownerID, "deleted": false},
		bson.M{"$set": bson.M{"deleted": true, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("delete tender: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTenderAccess
	}
	return nil
}

// EnsureIndexes creates the owner listing index.
func (r *TenderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
