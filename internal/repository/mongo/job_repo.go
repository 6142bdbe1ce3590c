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
var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implements repository.JobRepository on MongoDB.
type JobRepo struct {
	col *mongo.Collection
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *mongo.Database) *JobRepo {
	return &JobRepo{col: db.Collection(colPrintJobs)}
}

// Create appends a new print job. printer_id is normalized to the hex
// string form on write.
func (r *JobRepo) Create(ctx context.Context, job *domain.PrintJob) error {
	res, err := r.col.InsertOne(ctx, toJobWriteDoc(job))
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	job.ID = res.InsertedID.(bson.ObjectID).Hex()
	return nil
}

// GetByID retrieves a job by ID, scoped to the owner.
func (r *JobRepo) GetByID(ctx context.Context, ownerEmail, id string) (*domain.PrintJob, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrInvalidID
	}

	var doc jobDoc
	err := r.col.FindOne(ctx, bson.M{"_id": oid, "owner_email": ownerEmail}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return fromJobDoc(&doc), nil
}

// ListByPrinter returns the owner's jobs for one printer, newest first.
// Historical records stored printer_id either as a plain string or as a
// native ObjectID, so the filter matches both representations.
func (r *JobRepo) ListByPrinter(ctx context.Context, ownerEmail, printerID string) ([]*domain.PrintJob, error) {
	oid, ok := parseID(printerID)
	if !ok {
		return nil, repository.ErrInvalidID
	}

	filter := bson.M{
		"owner_email": ownerEmail,
		"$or": bson.A{
			bson.M{"printer_id": printerID},
			bson.M{"printer_id": oid},
		},
	}
	return r.list(ctx, filter)
}

// ListByOwner returns all of the owner's jobs, newest first.
func (r *JobRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.PrintJob, error) {
	return r.list(ctx, bson.M{"owner_email": ownerEmail})
}

func (r *JobRepo) list(ctx context.Context, filter bson.M) ([]*domain.PrintJob, error) {
	opts := options.Find().SetSort(bson.D{{Key: "print_date", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	jobs := []*domain.PrintJob{}
	for cursor.Next(ctx) {
		var doc jobDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, fromJobDoc(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}
