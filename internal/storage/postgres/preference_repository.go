package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// PreferenceRepository is the server-side preference mirror, one JSON blob
// per scope.
type PreferenceRepository struct {
	pool *pgxpool.Pool
}

func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{pool: pool}
}

// Load returns the stored preferences for scope, or nil when nothing has
// been saved yet.
func (r *PreferenceRepository) Load(ctx context.Context, scope domain.Scope) (*domain.Preferences, error) {
	const query = `SELECT payload FROM preferences WHERE scope = $1`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, string(scope)).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(payload, &prefs); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return &prefs, nil
}

// Save upserts the preferences blob for scope. Last write wins.
func (r *PreferenceRepository) Save(ctx context.Context, scope domain.Scope, prefs domain.Preferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	const stmt = `
INSERT INTO preferences (scope, payload, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (scope) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, stmt, string(scope), payload); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
