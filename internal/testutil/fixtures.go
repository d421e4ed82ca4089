package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/modshelf/modshelf/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateMod inserts a mod with the given id, category, and download count,
// filling the remaining fields with plausible values.
func (f *Fixtures) CreateMod(ctx context.Context, id, category string, downloads int64) models.Mod {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Mod{
		ID:             id,
		Name:           "Mod " + id,
		Description:    "Test mod " + id,
		Author:         "tester",
		Version:        "1.0.0",
		Category:       category,
		Tags:           []string{"test"},
		DownloadURL:    "https://example.com/" + id + ".geode",
		Screenshots:    []string{},
		Compatibility:  []string{"2.206"},
		DownloadsCount: downloads,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("mods").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test mod: %v", err)
	}
	return m
}
