package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/repository"
)

// compile-time interface check
var _ repository.PrinterRepository = (*PrinterRepo)(nil)

// PrinterRepo implements repository.PrinterRepository on MongoDB.
type PrinterRepo struct {
	col *mongo.Collection
}

// NewPrinterRepo creates a new PrinterRepo.
func NewPrinterRepo(db *mongo.Database) *PrinterRepo {
	return &PrinterRepo{col: db.Collection(colPrinters)}
}

// Create creates a new printer.
func (r *PrinterRepo) Create(ctx context.Context, printer *domain.Printer) error {
	res, err := r.col.InsertOne(ctx, toPrinterDoc(printer))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("insert printer: %w", err)
	}
	printer.ID = res.InsertedID.(bson.ObjectID).Hex()
	return nil
}

// GetByID retrieves a printer by ID, scoped to the owner.
func (r *PrinterRepo) GetByID(ctx context.Context, ownerEmail, id string) (*domain.Printer, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrInvalidID
	}

	var doc printerDoc
	err := r.col.FindOne(ctx, bson.M{"_id": oid, "owner_email": ownerEmail}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find printer: %w", err)
	}
	return fromPrinterDoc(&doc), nil
}

// ListByOwner returns all printers belonging to the owner.
func (r *PrinterRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.Printer, error) {
	cursor, err := r.col.Find(ctx, bson.M{"owner_email": ownerEmail})
	if err != nil {
		return nil, fmt.Errorf("list printers: %w", err)
	}
	defer cursor.Close(ctx)

	printers := []*domain.Printer{}
	for cursor.Next(ctx) {
		var doc printerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode printer: %w", err)
		}
		printers = append(printers, fromPrinterDoc(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate printers: %w", err)
	}
	return printers, nil
}

// Update replaces the stored document with the given printer.
// The caller is responsible for carrying over the protected fields
// (owner_email, created_at) from the existing document.
func (r *PrinterRepo) Update(ctx context.Context, printer *domain.Printer) error {
	oid, ok := parseID(printer.ID)
	if !ok {
		return repository.ErrInvalidID
	}

	res, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": oid, "owner_email": printer.OwnerEmail},
		toPrinterDoc(printer),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("replace printer: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete deletes a printer by ID, scoped to the owner.
func (r *PrinterRepo) Delete(ctx context.Context, ownerEmail, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return repository.ErrInvalidID
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner_email": ownerEmail})
	if err != nil {
		return fmt.Errorf("delete printer: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ExistsBySerial checks if any printer has the given serial number,
// regardless of owner.
func (r *PrinterRepo) ExistsBySerial(ctx context.Context, serialNumber string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"serial_number": serialNumber})
	if err != nil {
		return false, fmt.Errorf("count printers: %w", err)
	}
	return count > 0, nil
}
