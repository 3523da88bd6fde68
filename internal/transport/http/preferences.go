package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// PreferenceReader is the minimal interface needed to read preference state.
type PreferenceReader interface {
	Load(ctx context.Context, scope domain.Scope) domain.Preferences
}

// SettingsUpdater is the minimal interface needed to replace display settings.
type SettingsUpdater interface {
	UpdateSettings(ctx context.Context, scope domain.Scope, settings domain.DisplaySettings) domain.Preferences
}

// PreferenceService is what the /preferences endpoint needs: reads plus
// wholesale settings replacement.
type PreferenceService interface {
	PreferenceReader
	SettingsUpdater
}

type preferencesResponse struct {
	Settings  domain.DisplaySettings `json:"settings"`
	TimeZones domain.TrackedList     `json:"time_zones"`
}

// HandlePreferences returns an HTTP handler for /preferences: GET reads the
// caller's current settings and tracked zones, PUT replaces the display
// settings wholesale. Bounds are enforced here, at the boundary.
func HandlePreferences(svc PreferenceService, auth SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			prefs := svc.Load(r.Context(), requestScope(r, auth))
			writeJSON(w, http.StatusOK, preferencesResponse{
				Settings:  prefs.Settings,
				TimeZones: prefs.TimeZones,
			})
		case http.MethodPut:
			updateSettings(w, r, svc, auth)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

func updateSettings(w http.ResponseWriter, r *http.Request, svc SettingsUpdater, auth SessionResolver) {
	var settings domain.DisplaySettings
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if err := settings.Validate(); err != nil {
		switch err {
		case domain.ErrSizeOutOfBounds:
			writeError(w, http.StatusBadRequest, codeSizeOutOfBounds, err.Error())
		case domain.ErrUnknownOption:
			writeError(w, http.StatusBadRequest, codeUnknownOption, err.Error())
		default:
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, err.Error())
		}
		return
	}

	prefs := svc.UpdateSettings(r.Context(), requestScope(r, auth), settings)
	writeJSON(w, http.StatusOK, preferencesResponse{
		Settings:  prefs.Settings,
		TimeZones: prefs.TimeZones,
	})
}
