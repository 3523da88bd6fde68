package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// TimeZoneAdder is the minimal interface needed to track a new zone.
type TimeZoneAdder interface {
	AddTimeZone(ctx context.Context, scope domain.Scope, entry domain.TimeZoneEntry) (domain.TimeZoneEntry, bool)
}

// TimeZoneRemover is the minimal interface needed to drop a tracked zone.
type TimeZoneRemover interface {
	RemoveTimeZone(ctx context.Context, scope domain.Scope, id string) bool
}

// TimeZoneReorderer is the minimal interface needed to move a tracked zone.
type TimeZoneReorderer interface {
	ReorderTimeZones(ctx context.Context, scope domain.Scope, from, to int) error
	Load(ctx context.Context, scope domain.Scope) domain.Preferences
}

// HandleAddTimeZone returns an HTTP handler that appends a catalog entry to
// the caller's tracked list. A duplicate city/zone pair is not an error; the
// handler reports added=false and leaves the list alone.
func HandleAddTimeZone(svc TimeZoneAdder, auth SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req addTimeZoneRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.City == "" || req.TimeZone == "" {
			writeError(w, http.StatusBadRequest, codeMissingRequiredField, "city and time_zone are required")
			return
		}

		entry, added := svc.AddTimeZone(r.Context(), requestScope(r, auth), domain.TimeZoneEntry{
			City:         req.City,
			Country:      req.Country,
			TimeZone:     req.TimeZone,
			Abbreviation: req.Abbreviation,
		})
		if !added {
			writeJSON(w, http.StatusOK, addTimeZoneResponse{Added: false})
			return
		}
		writeJSON(w, http.StatusCreated, addTimeZoneResponse{Added: true, Entry: &entry})
	}
}

type addTimeZoneRequest struct {
	City         string `json:"city"`
	Country      string `json:"country"`
	TimeZone     string `json:"time_zone"`
	Abbreviation string `json:"abbreviation"`
}

type addTimeZoneResponse struct {
	Added bool                  `json:"added"`
	Entry *domain.TimeZoneEntry `json:"entry,omitempty"`
}

// HandleRemoveTimeZone returns an HTTP handler for DELETE /timezones/{id}.
func HandleRemoveTimeZone(svc TimeZoneRemover, auth SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		id, ok := parseRemoveTimeZonePath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		if !svc.RemoveTimeZone(r.Context(), requestScope(r, auth), id) {
			writeError(w, http.StatusNotFound, codeEntryNotFound, "entry not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// parseRemoveTimeZonePath extracts the entry ID from /timezones/{id}.
func parseRemoveTimeZonePath(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, "/timezones/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

// HandleReorderTimeZones returns an HTTP handler that moves a tracked entry
// from one position to another, shifting the entries in between.
func HandleReorderTimeZones(svc TimeZoneReorderer, auth SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req reorderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		scope := requestScope(r, auth)
		if err := svc.ReorderTimeZones(r.Context(), scope, req.From, req.To); err != nil {
			switch err {
			case domain.ErrIndexOutOfRange:
				writeError(w, http.StatusBadRequest, codeIndexOutOfRange, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		prefs := svc.Load(r.Context(), scope)
		writeJSON(w, http.StatusOK, reorderResponse{TimeZones: prefs.TimeZones})
	}
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type reorderResponse struct {
	TimeZones domain.TrackedList `json:"time_zones"`
}
