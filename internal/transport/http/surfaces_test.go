package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/surface"
)

// flushRecorder signals each Flush so streaming tests can synchronize with
// the handler instead of polling the body.
type flushRecorder struct {
	*httptest.ResponseRecorder
	flushed chan struct{}
}

func (r *flushRecorder) Flush() {
	select {
	case r.flushed <- struct{}{}:
	default:
	}
}

func TestParseSurfacePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path       string
		id, action string
		ok         bool
	}{
		{path: "/surfaces/abc", id: "abc", action: "", ok: true},
		{path: "/surfaces/abc/events", id: "abc", action: "events", ok: true},
		{path: "/surfaces/abc/geometry", id: "abc", action: "geometry", ok: true},
		{path: "/surfaces/", ok: false},
		{path: "/surfaces/abc/events/extra", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			id, action, ok := parseSurfacePath(tc.path)
			if ok != tc.ok || id != tc.id || action != tc.action {
				t.Fatalf("parse %s: got (%q, %q, %v), want (%q, %q, %v)", tc.path, id, action, ok, tc.id, tc.action, tc.ok)
			}
		})
	}
}

func TestHandleSurfaces_Close(t *testing.T) {
	t.Parallel()

	hub := &fakeHub{}
	req := httptest.NewRequest(http.MethodDelete, "/surfaces/tz-1", nil)
	rec := httptest.NewRecorder()
	HandleSurfaces(hub, newFakePreferences(), authedFake()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(hub.closings) != 1 || hub.closings[0].TimeZoneID != "tz-1" {
		t.Fatalf("expected closing notification for tz-1, got %v", hub.closings)
	}
}

func TestHandleSurfaces_Geometry(t *testing.T) {
	t.Parallel()

	t.Run("returns the popup size for a tracked entry", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/surfaces/1/geometry", nil)
		rec := httptest.NewRecorder()
		HandleSurfaces(&fakeHub{}, newFakePreferences(), authedFake()).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), `"width"`) || !strings.Contains(rec.Body.String(), `"height"`) {
			t.Fatalf("expected geometry fields, got %s", rec.Body.String())
		}
	})

	t.Run("unknown entry is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/surfaces/missing/geometry", nil)
		rec := httptest.NewRecorder()
		HandleSurfaces(&fakeHub{}, newFakePreferences(), authedFake()).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestHandleSurfaces_Events(t *testing.T) {
	t.Parallel()

	t.Run("streams the initial settings snapshot", func(t *testing.T) {
		hub := &fakeHub{openOK: true}
		ctx, cancel := context.WithCancel(context.Background())

		req := httptest.NewRequest(http.MethodGet, "/surfaces/1/events", nil).WithContext(ctx)
		rec := &flushRecorder{ResponseRecorder: httptest.NewRecorder(), flushed: make(chan struct{}, 1)}

		done := make(chan struct{})
		go func() {
			HandleSurfaces(hub, newFakePreferences(), authedFake()).ServeHTTP(rec, req)
			close(done)
		}()

		// Wait for the initial snapshot to be flushed, then disconnect.
		select {
		case <-rec.flushed:
		case <-time.After(time.Second):
			t.Fatalf("initial settings event was never flushed")
		}
		cancel()
		<-done

		if got := rec.Header().Get("Content-Type"); got != "text/event-stream" {
			t.Fatalf("expected text/event-stream, got %s", got)
		}
		if !strings.Contains(rec.Body.String(), "event: settings") {
			t.Fatalf("expected a settings event, got %s", rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), `"font_family"`) {
			t.Fatalf("expected the settings payload, got %s", rec.Body.String())
		}
		if len(hub.opened) != 1 || hub.opened[0] != "1" {
			t.Fatalf("expected the hub to track entry 1, got %v", hub.opened)
		}
	})

	t.Run("second subscriber for the same entry conflicts", func(t *testing.T) {
		hub := &fakeHub{openOK: false}
		req := httptest.NewRequest(http.MethodGet, "/surfaces/1/events", nil)
		rec := httptest.NewRecorder()
		HandleSurfaces(hub, newFakePreferences(), authedFake()).ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "surface_already_open") {
			t.Fatalf("expected surface_already_open, got %s", rec.Body.String())
		}
	})

	t.Run("untracked entry is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/surfaces/nope/events", nil)
		rec := httptest.NewRecorder()
		HandleSurfaces(&fakeHub{openOK: true}, newFakePreferences(), authedFake()).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestSSESurface_Deliver(t *testing.T) {
	t.Parallel()

	settings := domain.DefaultDisplaySettings()

	t.Run("buffers until full", func(t *testing.T) {
		s := newSSESurface()
		for i := 0; i < cap(s.ch); i++ {
			if err := s.Deliver(surface.UpdateSettings{Settings: settings}); err != nil {
				t.Fatalf("delivery %d: expected no error, got %v", i, err)
			}
		}
		if err := s.Deliver(surface.UpdateSettings{Settings: settings}); err != domain.ErrSurfaceClosed {
			t.Fatalf("expected ErrSurfaceClosed on a full buffer, got %v", err)
		}
	})

	t.Run("closed surface rejects delivery", func(t *testing.T) {
		s := newSSESurface()
		s.closed.Store(true)
		if !s.Closed() {
			t.Fatalf("expected Closed to report true")
		}
		if err := s.Deliver(surface.UpdateSettings{Settings: settings}); err != domain.ErrSurfaceClosed {
			t.Fatalf("expected ErrSurfaceClosed, got %v", err)
		}
	})
}
