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
var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements repository.SettingsRepository on MongoDB.
//
// Both operations are single-document upserts keyed by owner_email, so a
// read racing another first read for the same owner settles on one document
// instead of inserting duplicates.
type SettingsRepo struct {
	col *mongo.Collection
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(db *mongo.Database) *SettingsRepo {
	return &SettingsRepo{col: db.Collection(colSettings)}
}

// GetOrCreate returns the owner's settings, atomically inserting the
// defaults if no document exists yet.
func (r *SettingsRepo) GetOrCreate(ctx context.Context, ownerEmail string) (*domain.UserSettings, error) {
	defaults := domain.DefaultSettings(ownerEmail)

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc settingsDoc
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"owner_email": ownerEmail},
		bson.M{"$setOnInsert": bson.M{
			"owner_email":      defaults.OwnerEmail,
			"cost_coefficient": defaults.CostCoefficient,
			"currency_symbol":  defaults.CurrencySymbol,
		}},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("get or create settings: %w", err)
	}
	return fromSettingsDoc(&doc), nil
}

// Upsert replaces both configurable fields, creating the document if absent,
// and returns the settings as stored after the write.
func (r *SettingsRepo) Upsert(ctx context.Context, ownerEmail string, costCoefficient float64, currencySymbol string) (*domain.UserSettings, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc settingsDoc
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"owner_email": ownerEmail},
		bson.M{
			"$set": bson.M{
				"cost_coefficient": costCoefficient,
				"currency_symbol":  currencySymbol,
			},
			"$setOnInsert": bson.M{"owner_email": ownerEmail},
		},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return fromSettingsDoc(&doc), nil
}
