package app

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/clock"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

func TestClockService_RenderAll(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewClockService(clock.NewFixed(now))
	settings := domain.DefaultDisplaySettings()

	list := domain.TrackedList{
		{ID: "1", City: "Tokyo", TimeZone: "Asia/Tokyo"},
		{ID: "2", City: "Nowhere", TimeZone: "Invalid/Zone"},
		{ID: "3", City: "New York", TimeZone: "America/New_York"},
	}

	t.Run("renders every entry, flagging bad zones", func(t *testing.T) {
		views := svc.RenderAll(list, settings, time.Time{})
		if len(views) != 3 {
			t.Fatalf("expected 3 views, got %d", len(views))
		}
		if views[0].Time != "09:00:00" {
			t.Fatalf("expected Tokyo at 09:00:00, got %s", views[0].Time)
		}
		if !views[1].Invalid {
			t.Fatalf("expected the bad zone to be flagged")
		}
		if views[2].Time != "19:00:00" {
			t.Fatalf("expected New York at 19:00:00, got %s", views[2].Time)
		}
	})

	t.Run("preserves list order", func(t *testing.T) {
		views := svc.RenderAll(list, settings, time.Time{})
		for i, view := range views {
			if view.Entry.ID != list[i].ID {
				t.Fatalf("position %d: expected %s, got %s", i, list[i].ID, view.Entry.ID)
			}
		}
	})

	t.Run("honors an explicit instant", func(t *testing.T) {
		at := time.Date(2024, 6, 1, 3, 30, 0, 0, time.UTC)
		views := svc.RenderAll(list[:1], settings, at)
		if views[0].Time != "12:30:00" {
			t.Fatalf("expected Tokyo at 12:30:00, got %s", views[0].Time)
		}
	})

	t.Run("computes hand angles only when analog is on", func(t *testing.T) {
		views := svc.RenderAll(list[:1], settings, time.Time{})
		// 09:00 JST.
		if views[0].Hands.Hour != 270 {
			t.Fatalf("expected hour angle 270, got %v", views[0].Hands.Hour)
		}

		digital := settings
		digital.ShowAnalog = false
		views = svc.RenderAll(list[:1], digital, time.Time{})
		if views[0].Hands.Hour != 0 || views[0].Hands.Minute != 0 {
			t.Fatalf("expected zero hand angles when analog is off, got %+v", views[0].Hands)
		}
	})

	t.Run("seconds toggle trims the digital text", func(t *testing.T) {
		noSeconds := settings
		noSeconds.ShowDigitalSeconds = false
		views := svc.RenderAll(list[:1], noSeconds, time.Time{})
		if views[0].Time != "09:00" {
			t.Fatalf("expected 09:00 without seconds, got %s", views[0].Time)
		}
	})
}
