package httpjson_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modshelf/modshelf/internal/app/system/httpjson"
)

func TestWrite_SetsContentTypeAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.Write(rec, http.StatusCreated, map[string]string{"hello": "world"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
}

func TestNotFound_DetailShape(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.NotFound(rec, "Mod not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	want := `{"detail":"Mod not found"}`
	if got := rec.Body.String(); got != want+"\n" {
		t.Errorf("body: got %q, want %q", got, want)
	}
}

func TestServerError_GenericDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.ServerError(rec)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
}
