package postgres_test

import (
	"context"
	"testing"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/storage/postgres"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/testutil"
)

func TestPreferenceRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := postgres.NewPreferenceRepository(pool)
	scope := domain.UserScope("u1")

	t.Run("missing scope loads nil without error", func(t *testing.T) {
		got, err := repo.Load(ctx, scope)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil for an empty mirror, got %+v", got)
		}
	})

	t.Run("round-trips the preferences blob", func(t *testing.T) {
		saved := domain.DefaultPreferences(domain.TrackedList{
			{ID: "1", City: "Tokyo", Country: "Japan", TimeZone: "Asia/Tokyo", Abbreviation: "JST"},
		})
		saved.Settings.FontFamily = "Georgia"

		if err := repo.Save(ctx, scope, saved); err != nil {
			t.Fatalf("save: %v", err)
		}

		got, err := repo.Load(ctx, scope)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got == nil {
			t.Fatalf("expected stored preferences")
		}
		if got.Settings != saved.Settings {
			t.Fatalf("expected settings round trip, got %+v", got.Settings)
		}
		if len(got.TimeZones) != 1 || got.TimeZones[0].City != "Tokyo" {
			t.Fatalf("expected tracked list round trip, got %+v", got.TimeZones)
		}
	})

	t.Run("save overwrites the previous mirror", func(t *testing.T) {
		replacement := domain.DefaultPreferences(domain.TrackedList{
			{ID: "2", City: "Paris", Country: "France", TimeZone: "Europe/Paris", Abbreviation: "CET/CEST"},
		})
		if err := repo.Save(ctx, scope, replacement); err != nil {
			t.Fatalf("save: %v", err)
		}

		got, err := repo.Load(ctx, scope)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(got.TimeZones) != 1 || got.TimeZones[0].City != "Paris" {
			t.Fatalf("expected last write to win, got %+v", got.TimeZones)
		}
	})

	t.Run("scopes are isolated", func(t *testing.T) {
		other := domain.UserScope("u2")
		otherPrefs := domain.DefaultPreferences(nil)
		otherPrefs.Settings.FontFamily = "Arial"
		if err := repo.Save(ctx, other, otherPrefs); err != nil {
			t.Fatalf("save: %v", err)
		}

		got, err := repo.Load(ctx, scope)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got.Settings.FontFamily == "Arial" {
			t.Fatalf("expected u1's mirror untouched")
		}
	})
}
