// internal/app/store/mods/modstore.go
package modstore

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/modshelf/modshelf/internal/domain/models"
)

// Store provides access to the mods collection. Reads that miss return
// mongo.ErrNoDocuments so handlers can map them to a not-found response.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("mods")}
}

// ListFilter describes the list query. Category is an exact match; Search is
// a case-insensitive substring match against name, description, and author.
// Limit and Offset are applied as-is; callers are responsible for clamping.
type ListFilter struct {
	Category string
	Search   string
	Limit    int64
	Offset   int64
}

// Create inserts a new Mod, filling server-owned fields: a fresh opaque id
// when none is given, zero rating and download count, and both timestamps.
// Nil slices are normalized so documents (and their JSON form) always carry
// arrays rather than nulls.
func (s *Store) Create(ctx context.Context, m models.Mod) (models.Mod, error) {
	now := time.Now().UTC()

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.Rating = 0
	m.DownloadsCount = 0
	m.CreatedAt = now
	m.UpdatedAt = now

	if m.Tags == nil {
		m.Tags = []string{}
	}
	if m.Screenshots == nil {
		m.Screenshots = []string{}
	}
	if m.Compatibility == nil {
		m.Compatibility = []string{}
	}

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Mod{}, err
	}
	return m, nil
}

// GetByID returns the mod with the given id.
func (s *Store) GetByID(ctx context.Context, id string) (models.Mod, error) {
	var m models.Mod
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return models.Mod{}, err
	}
	return m, nil
}

// List returns mods matching the filter in store-native order.
func (s *Store) List(ctx context.Context, f ListFilter) ([]models.Mod, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Search != "" {
		// QuoteMeta keeps the contract a substring match instead of letting
		// callers inject regex syntax.
		pattern := regexp.QuoteMeta(f.Search)
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
			{"author": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	opts := options.Find().SetSkip(f.Offset).SetLimit(f.Limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	mods := []models.Mod{}
	if err := cur.All(ctx, &mods); err != nil {
		return nil, err
	}
	return mods, nil
}

// Categories returns the distinct category values currently present, in
// store-native order.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	raw, err := s.c.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	cats := make([]string, 0, len(raw))
	for _, v := range raw {
		if c, ok := v.(string); ok {
			cats = append(cats, c)
		}
	}
	return cats, nil
}

// IncrementDownloads bumps downloads_count by one for the given id. The
// update touches nothing else; updated_at is deliberately left alone.
// Returns mongo.ErrNoDocuments when no document matched.
func (s *Store) IncrementDownloads(ctx context.Context, id string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"downloads_count": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Featured returns up to limit mods ordered by download count, highest
// first. Ties fall back to store-native order, which is not deterministic.
func (s *Store) Featured(ctx context.Context, limit int64) ([]models.Mod, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "downloads_count", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	mods := []models.Mod{}
	if err := cur.All(ctx, &mods); err != nil {
		return nil, err
	}
	return mods, nil
}

// Count returns the total number of mods in the collection.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// TotalDownloads sums downloads_count across the whole collection. An empty
// collection yields zero.
func (s *Store) TotalDownloads(ctx context.Context) (int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$downloads_count"}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		return 0, cur.Err()
	}
	var row struct {
		Total int64 `bson:"total"`
	}
	if err := cur.Decode(&row); err != nil {
		return 0, err
	}
	return row.Total, nil
}

// DeleteAll removes every mod. Seed-loader use only; no endpoint exposes it.
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.c.DeleteMany(ctx, bson.M{})
	return err
}

// InsertMany bulk-inserts mods as-is, without filling server defaults.
// Seed-loader use only.
func (s *Store) InsertMany(ctx context.Context, mods []models.Mod) error {
	if len(mods) == 0 {
		return nil
	}
	docs := make([]interface{}, len(mods))
	for i, m := range mods {
		docs[i] = m
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}
