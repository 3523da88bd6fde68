package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/surface"
)

// SurfaceHub is the minimal interface the surface endpoints need from the hub.
type SurfaceHub interface {
	Open(key string, s surface.Surface, settings domain.DisplaySettings) bool
	NotifyClosing(msg surface.Closing)
}

// sseSurface binds one server-sent-events subscriber to the hub. Delivery is
// non-blocking: a subscriber that stops draining its buffer counts as gone.
type sseSurface struct {
	ch     chan surface.Message
	closed atomic.Bool
}

func newSSESurface() *sseSurface {
	return &sseSurface{ch: make(chan surface.Message, 8)}
}

func (s *sseSurface) Deliver(msg surface.Message) error {
	if s.closed.Load() {
		return domain.ErrSurfaceClosed
	}
	select {
	case s.ch <- msg:
		return nil
	default:
		return domain.ErrSurfaceClosed
	}
}

func (s *sseSurface) Closed() bool { return s.closed.Load() }

// Focus is a no-op here; raising the window is the client's job, the server
// only refuses to track a second subscriber for the same entry.
func (s *sseSurface) Focus() {}

// HandleSurfaces returns an HTTP handler for the /surfaces/ tree:
//
//	GET    /surfaces/{id}/events    subscribe to settings updates (SSE)
//	GET    /surfaces/{id}/geometry  window size for the entry
//	DELETE /surfaces/{id}           announce the surface is closing
func HandleSurfaces(hub SurfaceHub, prefs PreferenceReader, auth SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, action, ok := parseSurfacePath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch {
		case action == "" && r.Method == http.MethodDelete:
			hub.NotifyClosing(surface.Closing{TimeZoneID: id})
			w.WriteHeader(http.StatusNoContent)
		case action == "events" && r.Method == http.MethodGet:
			serveSurfaceEvents(w, r, hub, prefs, auth, id)
		case action == "geometry" && r.Method == http.MethodGet:
			serveSurfaceGeometry(w, r, prefs, auth, id)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// parseSurfacePath extracts the entry ID and trailing action from
// /surfaces/{id} or /surfaces/{id}/{action}.
func parseSurfacePath(path string) (id, action string, ok bool) {
	rest, found := strings.CutPrefix(path, "/surfaces/")
	if !found || rest == "" {
		return "", "", false
	}
	id, action, _ = strings.Cut(rest, "/")
	if id == "" || strings.Contains(action, "/") {
		return "", "", false
	}
	return id, action, true
}

func serveSurfaceEvents(w http.ResponseWriter, r *http.Request, hub SurfaceHub, prefs PreferenceReader, auth SessionResolver, id string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, codeStreamingUnsupported, "streaming unsupported")
		return
	}

	current := prefs.Load(r.Context(), requestScope(r, auth))
	entry, found := findTrackedEntry(current.TimeZones, id)
	if !found {
		writeError(w, http.StatusNotFound, codeEntryNotFound, "entry not found")
		return
	}

	sub := newSSESurface()
	if !hub.Open(entry.ID, sub, current.Settings) {
		writeError(w, http.StatusConflict, codeSurfaceConflict, "surface already open")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	for {
		select {
		case <-r.Context().Done():
			// Client went away. The sweep reaps the handle; an explicit
			// DELETE beats it when the popup closes deliberately.
			sub.closed.Store(true)
			return
		case msg := <-sub.ch:
			if update, ok := msg.(surface.UpdateSettings); ok {
				payload, err := json.Marshal(update.Settings)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "event: settings\ndata: %s\n\n", payload)
				flusher.Flush()
			}
		}
	}
}

func serveSurfaceGeometry(w http.ResponseWriter, r *http.Request, prefs PreferenceReader, auth SessionResolver, id string) {
	current := prefs.Load(r.Context(), requestScope(r, auth))
	entry, found := findTrackedEntry(current.TimeZones, id)
	if !found {
		writeError(w, http.StatusNotFound, codeEntryNotFound, "entry not found")
		return
	}

	writeJSON(w, http.StatusOK, surface.PopupGeometry(entry, current.Settings))
}

func findTrackedEntry(list domain.TrackedList, id string) (domain.TimeZoneEntry, bool) {
	for _, entry := range list {
		if entry.ID == id {
			return entry, true
		}
	}
	return domain.TimeZoneEntry{}, false
}
