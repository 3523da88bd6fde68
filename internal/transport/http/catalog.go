package http

import (
	"net/http"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/catalog"
)

// HandleCatalogSearch returns an HTTP handler for browsing the fixed city
// catalog. An empty query returns the whole catalog in its curated order.
func HandleCatalogSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		writeJSON(w, http.StatusOK, catalog.Search(r.URL.Query().Get("q")))
	}
}
