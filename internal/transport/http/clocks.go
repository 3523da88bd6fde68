package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/app"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// ClockRenderer formats a tracked list at an instant.
type ClockRenderer interface {
	RenderAll(list domain.TrackedList, settings domain.DisplaySettings, at time.Time) []app.ClockView
}

type clockViewResponse struct {
	Entry   domain.TimeZoneEntry `json:"entry"`
	Time    string               `json:"time"`
	Date    string               `json:"date"`
	Hands   *handsResponse       `json:"hands,omitempty"`
	Invalid bool                 `json:"invalid,omitempty"`
}

type handsResponse struct {
	Hour   float64 `json:"hour"`
	Minute float64 `json:"minute"`
	Second float64 `json:"second"`
}

// HandleClocks returns an HTTP handler that renders every tracked zone for
// the caller. An `at` query pins the instant (RFC 3339) for reproducible
// output; `seconds` overrides the digital-seconds setting for this response
// only.
func HandleClocks(clocks ClockRenderer, prefs PreferenceReader, auth SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var at time.Time
		if raw := r.URL.Query().Get("at"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidInstant, "invalid at format")
				return
			}
			at = parsed
		}

		current := prefs.Load(r.Context(), requestScope(r, auth))
		settings := current.Settings
		if raw := r.URL.Query().Get("seconds"); raw != "" {
			withSeconds, err := strconv.ParseBool(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid seconds value")
				return
			}
			settings.ShowDigitalSeconds = withSeconds
		}

		views := clocks.RenderAll(current.TimeZones, settings, at)
		resp := make([]clockViewResponse, 0, len(views))
		for _, view := range views {
			item := clockViewResponse{
				Entry:   view.Entry,
				Time:    view.Time,
				Date:    view.Date,
				Invalid: view.Invalid,
			}
			if settings.ShowAnalog && !view.Invalid {
				item.Hands = &handsResponse{
					Hour:   view.Hands.Hour,
					Minute: view.Hands.Minute,
					Second: view.Hands.Second,
				}
			}
			resp = append(resp, item)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
