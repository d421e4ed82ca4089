// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent
(CreateMany is a no-op for indexes that already exist with the same spec).
Errors are aggregated so every problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureMods(ctx, db); err != nil {
		problems = append(problems, "mods: "+err.Error())
	}
	if err := ensureUserCollections(ctx, db); err != nil {
		problems = append(problems, "user_collections: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureMods(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("mods").Indexes().CreateMany(ctx, []mongo.IndexModel{
		// category filter in the list endpoint and the distinct query
		{Keys: bson.D{{Key: "category", Value: 1}}},
		// featured sorts by download count descending
		{Keys: bson.D{{Key: "downloads_count", Value: -1}}},
		{Keys: bson.D{{Key: "author", Value: 1}}},
	})
	return err
}

func ensureUserCollections(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("user_collections").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	return err
}
