package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// indexes double as the conflict signal for duplicate usernames and
// household codes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	plan := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		collectionHouseholds: {
			{Keys: bson.D{{Key: "household_code", Value: 1}}, Options: unique},
		},
		collectionResidents: {
			{Keys: bson.D{{Key: "last_name", Value: 1}}},
			{Keys: bson.D{{Key: "household_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		collectionCertificates: {
			{Keys: bson.D{{Key: "resident_id", Value: 1}}},
			{Keys: bson.D{{Key: "issued_at", Value: -1}}},
		},
		collectionBlotter: {
			{Keys: bson.D{{Key: "incident_date", Value: -1}}},
		},
	}

	for coll, indexes := range plan {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}
