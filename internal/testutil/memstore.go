package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	modstore "github.com/modshelf/modshelf/internal/app/store/mods"
	"github.com/modshelf/modshelf/internal/domain/models"
)

// MemStore is an in-memory stand-in for modstore.Store. It implements the
// store interfaces the feature handlers consume, so handler tests run
// without a MongoDB server. Insertion order stands in for store-native
// order. Misses return mongo.ErrNoDocuments, matching the real store.
type MemStore struct {
	mu   sync.RWMutex
	mods []models.Mod

	// Err, when set, is returned by every operation. Lets tests exercise
	// the store-failure paths.
	Err error
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Seed inserts mods as-is, bypassing creation defaults.
func (s *MemStore) Seed(mods ...models.Mod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mods = append(s.mods, mods...)
}

func (s *MemStore) Create(ctx context.Context, m models.Mod) (models.Mod, error) {
	if s.Err != nil {
		return models.Mod{}, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

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

	s.mods = append(s.mods, m)
	return m, nil
}

func (s *MemStore) GetByID(ctx context.Context, id string) (models.Mod, error) {
	if s.Err != nil {
		return models.Mod{}, s.Err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.mods {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Mod{}, mongo.ErrNoDocuments
}

func (s *MemStore) List(ctx context.Context, f modstore.ListFilter) ([]models.Mod, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Mod{}
	for _, m := range s.mods {
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		if f.Search != "" && !matchesSearch(m, f.Search) {
			continue
		}
		matched = append(matched, m)
	}

	if f.Offset >= int64(len(matched)) {
		return []models.Mod{}, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && int64(len(matched)) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func matchesSearch(m models.Mod, search string) bool {
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.Description), q) ||
		strings.Contains(strings.ToLower(m.Author), q)
}

func (s *MemStore) Categories(ctx context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]struct{}{}
	cats := []string{}
	for _, m := range s.mods {
		if _, ok := seen[m.Category]; ok {
			continue
		}
		seen[m.Category] = struct{}{}
		cats = append(cats, m.Category)
	}
	return cats, nil
}

func (s *MemStore) IncrementDownloads(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.mods {
		if s.mods[i].ID == id {
			s.mods[i].DownloadsCount++
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (s *MemStore) Featured(ctx context.Context, limit int64) ([]models.Mod, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Mod, len(s.mods))
	copy(out, s.mods)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DownloadsCount > out[j].DownloadsCount
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemStore) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.mods)), nil
}

func (s *MemStore) TotalDownloads(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, m := range s.mods {
		total += m.DownloadsCount
	}
	return total, nil
}
