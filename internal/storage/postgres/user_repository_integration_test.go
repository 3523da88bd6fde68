package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/storage/postgres"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/testutil"
)

func testUser(id, username, email string) domain.User {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return domain.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		CreatedAt:    now,
		LastLogin:    now,
	}
}

func TestUserRepository_Users(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := postgres.NewUserRepository(pool)

	t.Run("creates and reads back a user", func(t *testing.T) {
		user := testUser("u1", "alice", "alice@example.com")
		if err := repo.CreateUser(ctx, user); err != nil {
			t.Fatalf("create user: %v", err)
		}

		got, err := repo.GetUser(ctx, "u1")
		if err != nil {
			t.Fatalf("get user: %v", err)
		}
		if got == nil || got.Username != "alice" {
			t.Fatalf("expected alice, got %+v", got)
		}
	})

	t.Run("finds by username case-insensitively", func(t *testing.T) {
		got, err := repo.FindUserByUsername(ctx, "ALICE")
		if err != nil {
			t.Fatalf("find user: %v", err)
		}
		if got == nil || got.ID != "u1" {
			t.Fatalf("expected u1, got %+v", got)
		}
	})

	t.Run("unknown username returns nil without error", func(t *testing.T) {
		got, err := repo.FindUserByUsername(ctx, "nobody")
		if err != nil {
			t.Fatalf("find user: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("rejects duplicate username regardless of case", func(t *testing.T) {
		dup := testUser("u2", "Alice", "alice2@example.com")
		if err := repo.CreateUser(ctx, dup); err != domain.ErrDuplicateCredential {
			t.Fatalf("expected ErrDuplicateCredential, got %v", err)
		}
	})

	t.Run("rejects duplicate email regardless of case", func(t *testing.T) {
		dup := testUser("u3", "bob", "ALICE@example.com")
		if err := repo.CreateUser(ctx, dup); err != domain.ErrDuplicateCredential {
			t.Fatalf("expected ErrDuplicateCredential, got %v", err)
		}
	})

	t.Run("updates last login", func(t *testing.T) {
		later := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
		if err := repo.UpdateLastLogin(ctx, "u1", later); err != nil {
			t.Fatalf("update last login: %v", err)
		}
		got, err := repo.GetUser(ctx, "u1")
		if err != nil {
			t.Fatalf("get user: %v", err)
		}
		if !got.LastLogin.Equal(later) {
			t.Fatalf("expected last login %v, got %v", later, got.LastLogin)
		}
	})
}

func TestUserRepository_Sessions(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	repo := postgres.NewUserRepository(pool)
	if err := repo.CreateUser(ctx, testUser("u1", "alice", "alice@example.com")); err != nil {
		t.Fatalf("create user: %v", err)
	}

	started := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates and reads back a session", func(t *testing.T) {
		session := domain.Session{Token: "tok-1", UserID: "u1", LastActivity: started}
		if err := repo.CreateSession(ctx, session); err != nil {
			t.Fatalf("create session: %v", err)
		}

		got, err := repo.GetSession(ctx, "tok-1")
		if err != nil {
			t.Fatalf("get session: %v", err)
		}
		if got == nil || got.UserID != "u1" {
			t.Fatalf("expected session for u1, got %+v", got)
		}
	})

	t.Run("touch advances the activity stamp", func(t *testing.T) {
		later := started.Add(2 * time.Hour)
		if err := repo.TouchSession(ctx, "tok-1", later); err != nil {
			t.Fatalf("touch session: %v", err)
		}
		got, err := repo.GetSession(ctx, "tok-1")
		if err != nil {
			t.Fatalf("get session: %v", err)
		}
		if !got.LastActivity.Equal(later) {
			t.Fatalf("expected activity %v, got %v", later, got.LastActivity)
		}
	})

	t.Run("delete removes the session", func(t *testing.T) {
		if err := repo.DeleteSession(ctx, "tok-1"); err != nil {
			t.Fatalf("delete session: %v", err)
		}
		got, err := repo.GetSession(ctx, "tok-1")
		if err != nil {
			t.Fatalf("get session: %v", err)
		}
		if got != nil {
			t.Fatalf("expected session gone, got %+v", got)
		}
	})

	t.Run("unknown token returns nil without error", func(t *testing.T) {
		got, err := repo.GetSession(ctx, "no-such-token")
		if err != nil {
			t.Fatalf("get session: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}
