package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

func TestHandleCatalogSearch(t *testing.T) {
	t.Parallel()

	t.Run("filters by query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/catalog?q=tokyo", nil)
		rec := httptest.NewRecorder()
		HandleCatalogSearch().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var entries []domain.TimeZoneEntry
		if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(entries) == 0 || entries[0].City != "Tokyo" {
			t.Fatalf("expected Tokyo, got %+v", entries)
		}
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
		rec := httptest.NewRecorder()
		HandleCatalogSearch().ServeHTTP(rec, req)

		var entries []domain.TimeZoneEntry
		if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(entries) < 100 {
			t.Fatalf("expected the full catalog, got %d entries", len(entries))
		}
	})

	t.Run("rejects POST", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/catalog", nil)
		rec := httptest.NewRecorder()
		HandleCatalogSearch().ServeHTTP(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", rec.Code)
		}
	})
}
