package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// UserRepository stores accounts and their login sessions.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) error {
	const stmt = `
INSERT INTO users (id, username, email, password_hash, created_at, last_login)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.exec(ctx, stmt,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.LastLogin,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCredential
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
SELECT id, username, email, password_hash, created_at, last_login
FROM users
WHERE LOWER(username) = LOWER($1)`

	var u domain.User
	err := r.queryRow(ctx, query, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	const query = `
SELECT id, username, email, password_hash, created_at, last_login
FROM users
WHERE id = $1`

	var u domain.User
	err := r.queryRow(ctx, query, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	const stmt = `UPDATE users SET last_login = $2 WHERE id = $1`
	if _, err := r.exec(ctx, stmt, id, at); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session domain.Session) error {
	const stmt = `
INSERT INTO sessions (token, user_id, last_activity)
VALUES ($1, $2, $3)`

	if _, err := r.exec(ctx, stmt, session.Token, session.UserID, session.LastActivity); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *UserRepository) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	const query = `SELECT token, user_id, last_activity FROM sessions WHERE token = $1`

	var s domain.Session
	err := r.queryRow(ctx, query, token).Scan(&s.Token, &s.UserID, &s.LastActivity)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

func (r *UserRepository) TouchSession(ctx context.Context, token string, at time.Time) error {
	const stmt = `UPDATE sessions SET last_activity = $2 WHERE token = $1`
	if _, err := r.exec(ctx, stmt, token, at); err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

func (r *UserRepository) DeleteSession(ctx context.Context, token string) error {
	const stmt = `DELETE FROM sessions WHERE token = $1`
	if _, err := r.exec(ctx, stmt, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *UserRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *UserRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
