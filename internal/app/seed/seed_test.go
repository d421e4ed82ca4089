package seed_test

import (
	"testing"

	"github.com/modshelf/modshelf/internal/app/seed"
	modstore "github.com/modshelf/modshelf/internal/app/store/mods"
	"github.com/modshelf/modshelf/internal/testutil"
)

func TestMods_ShapeOfSampleSet(t *testing.T) {
	mods := seed.Mods()

	if len(mods) != 8 {
		t.Fatalf("expected 8 sample mods, got %d", len(mods))
	}

	seen := map[string]bool{}
	for _, m := range mods {
		if m.ID == "" || m.Name == "" || m.DownloadURL == "" || m.Category == "" {
			t.Errorf("sample mod %q is missing required fields", m.ID)
		}
		if seen[m.ID] {
			t.Errorf("duplicate sample id %q", m.ID)
		}
		seen[m.ID] = true
		if m.CreatedAt.IsZero() || m.UpdatedAt.IsZero() {
			t.Errorf("sample mod %q is missing timestamps", m.ID)
		}
	}
}

func TestLoad_ClearsAndReinserts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := modstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// pre-existing data must be wiped by the loader
	fx.CreateMod(ctx, "stale", "Testing", 99)

	n, err := seed.Load(ctx, store)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if n != 8 {
		t.Errorf("inserted: got %d, want 8", n)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 8 {
		t.Errorf("count after load: got %d, want 8", count)
	}

	if _, err := store.GetByID(ctx, "stale"); err == nil {
		t.Error("expected stale record to be deleted")
	}

	m, err := store.GetByID(ctx, "globed2")
	if err != nil {
		t.Fatalf("GetByID(globed2) failed: %v", err)
	}
	if m.DownloadsCount != 22100 {
		t.Errorf("globed2 downloads: got %d, want 22100", m.DownloadsCount)
	}

	cats, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(cats) != 8 {
		t.Errorf("distinct categories: got %d, want 8", len(cats))
	}
}
