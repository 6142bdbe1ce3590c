// Package mongo implements the repository interfaces on MongoDB.
//
// The store is document-oriented by design: there are no foreign-key
// constraints and no multi-document transactions. Ownership scoping is done
// by filtering every query on owner_email.
package mongo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collection name constants.
const (
	colUsers     = "users"
	colPrinters  = "printers"
	colInkFills  = "ink_fills"
	colPrintJobs = "print_jobs"
	colInventory = "ink_inventory"
	colSettings  = "user_settings"
)

// Connect establishes the single long-lived client for the process and
// verifies connectivity with a ping. The client is safe for concurrent use
// and is injected into every repository rather than held as global state.
func Connect(ctx context.Context, uri, database string, logger zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info().Str("database", database).Msg("connected to MongoDB")
	return client, client.Database(database), nil
}

// EnsureIndexes creates the unique indexes backing the system's conflict
// rules: one account per email, one serial number system-wide, one ink name
// per owner, one settings document per owner.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		colUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		colPrinters: {
			{
				Keys:    bson.D{{Key: "serial_number", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "owner_email", Value: 1}},
			},
		},
		colInkFills: {
			{
				Keys: bson.D{{Key: "owner_email", Value: 1}, {Key: "timestamp", Value: -1}},
			},
		},
		colPrintJobs: {
			{
				Keys: bson.D{{Key: "owner_email", Value: 1}, {Key: "print_date", Value: -1}},
			},
		},
		colInventory: {
			{
				Keys:    bson.D{{Key: "owner_email", Value: 1}, {Key: "ink_name", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		colSettings: {
			{
				Keys:    bson.D{{Key: "owner_email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for col, models := range indexes {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", col, err)
		}
	}
	return nil
}

// parseID converts a hex string into an ObjectID, mapping a malformed value
// to repository.ErrInvalidID via the caller.
func parseID(id string) (bson.ObjectID, bool) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, false
	}
	return oid, true
}
