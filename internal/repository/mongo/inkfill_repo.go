package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/repository"
)

// compile-time interface check
var _ repository.InkFillRepository = (*InkFillRepo)(nil)

// InkFillRepo implements repository.InkFillRepository on MongoDB.
type InkFillRepo struct {
	col *mongo.Collection
}

// NewInkFillRepo creates a new InkFillRepo.
func NewInkFillRepo(db *mongo.Database) *InkFillRepo {
	return &InkFillRepo{col: db.Collection(colInkFills)}
}

// Create appends a new ink fill record.
func (r *InkFillRepo) Create(ctx context.Context, record *domain.InkFillRecord) error {
	res, err := r.col.InsertOne(ctx, toInkFillDoc(record))
	if err != nil {
		return fmt.Errorf("insert ink fill: %w", err)
	}
	record.ID = res.InsertedID.(bson.ObjectID).Hex()
	return nil
}

// ListByPrinter returns the owner's fill records for one printer,
// most recent first.
func (r *InkFillRepo) ListByPrinter(ctx context.Context, ownerEmail, printerID string) ([]*domain.InkFillRecord, error) {
	filter := bson.M{"owner_email": ownerEmail, "printer_id": printerID}
	return r.list(ctx, filter)
}

// ListByOwner returns all of the owner's fill records, most recent first.
func (r *InkFillRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.InkFillRecord, error) {
	return r.list(ctx, bson.M{"owner_email": ownerEmail})
}

func (r *InkFillRepo) list(ctx context.Context, filter bson.M) ([]*domain.InkFillRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list ink fills: %w", err)
	}
	defer cursor.Close(ctx)

	records := []*domain.InkFillRecord{}
	for cursor.Next(ctx) {
		var doc inkFillDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode ink fill: %w", err)
		}
		records = append(records, fromInkFillDoc(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate ink fills: %w", err)
	}
	return records, nil
}
