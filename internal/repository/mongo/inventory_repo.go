package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/repository"
)

// compile-time interface check
var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implements repository.InventoryRepository on MongoDB.
type InventoryRepo struct {
	col *mongo.Collection
}

// NewInventoryRepo creates a new InventoryRepo.
func NewInventoryRepo(db *mongo.Database) *InventoryRepo {
	return &InventoryRepo{col: db.Collection(colInventory)}
}

// Create creates a new inventory item.
func (r *InventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) error {
	res, err := r.col.InsertOne(ctx, toInventoryDoc(item))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	item.ID = res.InsertedID.(bson.ObjectID).Hex()
	return nil
}

// ListByOwner returns all inventory items belonging to the owner.
func (r *InventoryRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.InventoryItem, error) {
	cursor, err := r.col.Find(ctx, bson.M{"owner_email": ownerEmail})
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer cursor.Close(ctx)

	items := []*domain.InventoryItem{}
	for cursor.Next(ctx) {
		var doc inventoryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode inventory item: %w", err)
		}
		items = append(items, fromInventoryDoc(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory: %w", err)
	}
	return items, nil
}

// Patch applies a partial update: only the patch's non-nil fields change.
// Returns the document as it stands after the update.
func (r *InventoryRepo) Patch(ctx context.Context, ownerEmail, id string, patch domain.InventoryPatch) (*domain.InventoryItem, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrInvalidID
	}

	set := bson.M{}
	if patch.InkName != nil {
		set["ink_name"] = *patch.InkName
	}
	if patch.UnitVolumeML != nil {
		set["unit_volume_ml"] = *patch.UnitVolumeML
	}
	if patch.StockOnHand != nil {
		set["stock_on_hand"] = *patch.StockOnHand
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc inventoryDoc
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "owner_email": ownerEmail},
		bson.M{"$set": set},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicate
		}
		return nil, fmt.Errorf("patch inventory item: %w", err)
	}
	return fromInventoryDoc(&doc), nil
}

// Delete deletes an item by ID, scoped to the owner.
func (r *InventoryRepo) Delete(ctx context.Context, ownerEmail, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return repository.ErrInvalidID
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner_email": ownerEmail})
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ExistsByName checks if the owner already has an item with the given name.
// The match is a case-sensitive exact comparison.
func (r *InventoryRepo) ExistsByName(ctx context.Context, ownerEmail, inkName string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"owner_email": ownerEmail, "ink_name": inkName})
	if err != nil {
		return false, fmt.Errorf("count inventory: %w", err)
	}
	return count > 0, nil
}
