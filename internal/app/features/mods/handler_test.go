package mods_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/modshelf/modshelf/internal/app/features/mods"
	"github.com/modshelf/modshelf/internal/domain/models"
	"github.com/modshelf/modshelf/internal/testutil"
)

func newHandler(store *testutil.MemStore) *mods.Handler {
	return mods.NewHandler(store, zap.NewNop())
}

func seedMod(id, category string, downloads int64) models.Mod {
	now := time.Now().UTC()
	return models.Mod{
		ID:             id,
		Name:           "Mod " + id,
		Description:    "desc " + id,
		Author:         "author-" + id,
		Version:        "1.0.0",
		Category:       category,
		Tags:           []string{},
		DownloadURL:    "https://example.com/" + id + ".geode",
		Screenshots:    []string{},
		Compatibility:  []string{"2.206"},
		DownloadsCount: downloads,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func decodeMods(t *testing.T, rec *httptest.ResponseRecorder) []models.Mod {
	t.Helper()
	var out []models.Mod
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestList_DefaultLimit(t *testing.T) {
	store := testutil.NewMemStore()
	for i := 0; i < 60; i++ {
		store.Seed(seedMod(fmt.Sprintf("m%02d", i), "Testing", 0))
	}
	h := newHandler(store)

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/api/mods", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeMods(t, rec), 50)
}

func TestList_LimitClampedAt100(t *testing.T) {
	store := testutil.NewMemStore()
	for i := 0; i < 120; i++ {
		store.Seed(seedMod(fmt.Sprintf("m%03d", i), "Testing", 0))
	}
	h := newHandler(store)

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/api/mods?limit=500", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeMods(t, rec), 100, "limit above the ceiling is clamped, not rejected")
}

func TestList_LimitZeroReturnsEmpty(t *testing.T) {
	store := testutil.NewMemStore()
	store.Seed(seedMod("a", "Testing", 0))
	// a store error would surface if the handler touched the store
	store.Err = fmt.Errorf("store must not be queried for limit=0")
	h := newHandler(store)

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/api/mods?limit=0", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeMods(t, rec))
}

func TestList_InvalidLimitFallsBackToDefault(t *testing.T) {
	store := testutil.NewMemStore()
	store.Seed(seedMod("a", "Testing", 0))
	h := newHandler(store)

	for _, v := range []string{"abc", "-3"} {
		rec := httptest.NewRecorder()
		h.ServeList(rec, httptest.NewRequest("GET", "/api/mods?limit="+v, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeMods(t, rec), 1)
	}
}

func TestList_CategoryAndSearchCombined(t *testing.T) {
	store := testutil.NewMemStore()
	store.Seed(
		seedMod("a", "Gameplay", 0),
		seedMod("b", "Gameplay", 0),
		seedMod("c", "Interface", 0),
	)
	h := newHandler(store)

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/api/mods?category=Gameplay&search=mod+b", nil))

	got := decodeMods(t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestList_EmptyResultIsArrayNotError(t *testing.T) {
	h := newHandler(testutil.NewMemStore())

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/api/mods?category=Nothing", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGet_Found(t *testing.T) {
	store := testutil.NewMemStore()
	store.Seed(seedMod("globed2", "Multiplayer", 7))
	h := newHandler(store)

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/api/mods/globed2", nil), "id", "globed2")
	rec := httptest.NewRecorder()
	h.ServeGet(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got models.Mod
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "globed2", got.ID)
	assert.Equal(t, int64(7), got.DownloadsCount)
}

func TestGet_NotFound(t *testing.T) {
	h := newHandler(testutil.NewMemStore())

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/api/mods/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()
	h.ServeGet(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mod not found")
}

func TestCreate_DefaultsApplied(t *testing.T) {
	store := testutil.NewMemStore()
	h := newHandler(store)

	body := `{
		"name": "New Mod",
		"description": "does things",
		"author": "someone",
		"version": "0.1.0",
		"category": "Gameplay",
		"download_url": "https://example.com/new.geode"
	}`
	rec := httptest.NewRecorder()
	h.ServeCreate(rec, httptest.NewRequest("POST", "/api/mods", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Mod
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Zero(t, got.Rating)
	assert.Zero(t, got.DownloadsCount)
	assert.False(t, got.CreatedAt.IsZero())
	assert.NotNil(t, got.Tags)
	assert.NotNil(t, got.Screenshots)
}

func TestCreate_ValidationBeforeStore(t *testing.T) {
	store := testutil.NewMemStore()
	store.Err = fmt.Errorf("store must not be reached for invalid payloads")
	h := newHandler(store)

	cases := []string{
		`{}`,
		`{"name":"x","description":"y","author":"z","version":"1","category":"c"}`,                                // missing download_url
		`{"name":"x","description":"y","author":"z","version":"1","category":"c","download_url":"not a url"}`,     // bad URL
		`{"description":"y","author":"z","version":"1","category":"c","download_url":"https://example.com/x"}`,    // missing name
	}
	for _, body := range cases {
		rec := httptest.NewRecorder()
		h.ServeCreate(rec, httptest.NewRequest("POST", "/api/mods", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload: %s", body)
	}
}

func TestCreate_MalformedJSON(t *testing.T) {
	h := newHandler(testutil.NewMemStore())

	rec := httptest.NewRecorder()
	h.ServeCreate(rec, httptest.NewRequest("POST", "/api/mods", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownload_ResponseUsesPreIncrementRecord(t *testing.T) {
	store := testutil.NewMemStore()
	m := seedMod("noclip", "Practice", 5)
	m.Name = "Noclip"
	m.Version = "2.1.0"
	store.Seed(m)
	h := newHandler(store)

	req := testutil.WithChiURLParam(httptest.NewRequest("POST", "/api/mods/noclip/download", nil), "id", "noclip")
	rec := httptest.NewRecorder()
	h.ServeDownload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp mods.DownloadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, m.DownloadURL, resp.DownloadURL)
	assert.Equal(t, "Noclip-2.1.0.geode", resp.Filename)
	assert.Equal(t, "Install using Geode mod loader", resp.Instructions)

	// the stored counter moved even though the response reflects the
	// pre-increment record
	stored, err := store.GetByID(req.Context(), "noclip")
	require.NoError(t, err)
	assert.Equal(t, int64(6), stored.DownloadsCount)
}

func TestDownload_NotFoundDoesNotMutate(t *testing.T) {
	store := testutil.NewMemStore()
	store.Seed(seedMod("present", "Testing", 3))
	h := newHandler(store)

	req := testutil.WithChiURLParam(httptest.NewRequest("POST", "/api/mods/absent/download", nil), "id", "absent")
	rec := httptest.NewRecorder()
	h.ServeDownload(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	stored, err := store.GetByID(req.Context(), "present")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.DownloadsCount)
}

func TestFeatured_OrderedByDownloads(t *testing.T) {
	store := testutil.NewMemStore()
	store.Seed(
		seedMod("A", "Testing", 5),
		seedMod("B", "Testing", 20),
		seedMod("C", "Testing", 1),
	)
	h := newHandler(store)

	rec := httptest.NewRecorder()
	h.ServeFeatured(rec, httptest.NewRequest("GET", "/api/mods/featured", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeMods(t, rec)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"B", "A", "C"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestFeatured_CappedAtTen(t *testing.T) {
	store := testutil.NewMemStore()
	for i := 0; i < 15; i++ {
		store.Seed(seedMod(fmt.Sprintf("m%02d", i), "Testing", int64(i)))
	}
	h := newHandler(store)

	rec := httptest.NewRecorder()
	h.ServeFeatured(rec, httptest.NewRequest("GET", "/api/mods/featured", nil))

	assert.Len(t, decodeMods(t, rec), 10)
}

func TestRoutes_FeaturedNotShadowedByID(t *testing.T) {
	store := testutil.NewMemStore()
	store.Seed(seedMod("featuredish", "Testing", 2), seedMod("other", "Testing", 9))
	r := mods.Routes(newHandler(store))

	// static /featured must win over the {id} parameter
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/featured", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeMods(t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, "other", got[0].ID)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/featuredish", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var m models.Mod
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, "featuredish", m.ID)
}

func TestStoreFailureMapsTo500(t *testing.T) {
	store := testutil.NewMemStore()
	store.Err = fmt.Errorf("connection reset")
	h := newHandler(store)

	rec := httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest("GET", "/api/mods", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
