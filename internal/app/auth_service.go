package app

import (
	"context"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/clock"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

type UserRepository interface {
	// WithTx runs fn atomically; repository calls made with the inner
	// context join the same transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateUser(ctx context.Context, user domain.User) error
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	CreateSession(ctx context.Context, session domain.Session) error
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	TouchSession(ctx context.Context, token string, at time.Time) error
	DeleteSession(ctx context.Context, token string) error
}

type AuthService struct {
	repo  UserRepository
	clock clock.Clock
}

func NewAuthService(repo UserRepository, clk clock.Clock) *AuthService {
	return &AuthService{
		repo:  repo,
		clock: clk,
	}
}

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates an account and an initial session. Username and email are
// unique case-insensitively; a collision fails with ErrDuplicateCredential
// and writes nothing.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, domain.Session, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return domain.User{}, domain.Session{}, domain.ErrMissingField
	}
	if !emailPattern.MatchString(in.Email) {
		return domain.User{}, domain.Session{}, domain.ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLength {
		return domain.User{}, domain.Session{}, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	now := s.clock.Now()
	user := domain.User{
		ID:           newUUID(),
		Username:     in.Username,
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastLogin:    now,
	}
	// The account and its initial session land together or not at all.
	var session domain.Session
	err = s.repo.WithTx(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateUser(ctx, user); err != nil {
			return err
		}
		var err error
		session, err = s.startSession(ctx, user.ID)
		return err
	})
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}
	return user, session, nil
}

type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and starts a session. An unknown username fails
// with ErrUserNotFound, a hash mismatch with ErrInvalidPassword; callers
// surface those two messages and nothing more.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (domain.User, domain.Session, error) {
	if in.Username == "" || in.Password == "" {
		return domain.User{}, domain.Session{}, domain.ErrMissingField
	}

	user, err := s.repo.FindUserByUsername(ctx, in.Username)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}
	if user == nil {
		return domain.User{}, domain.Session{}, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return domain.User{}, domain.Session{}, domain.ErrInvalidPassword
	}

	now := s.clock.Now()
	user.LastLogin = now
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return domain.User{}, domain.Session{}, err
	}

	session, err := s.startSession(ctx, user.ID)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}
	return *user, session, nil
}

// Resume loads the session behind token. Sessions past their 24h window are
// deleted, not refreshed; valid ones get their last-activity stamp advanced.
func (s *AuthService) Resume(ctx context.Context, token string) (domain.User, domain.Session, error) {
	if token == "" {
		return domain.User{}, domain.Session{}, domain.ErrAuthenticationRequired
	}

	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}
	if session == nil {
		return domain.User{}, domain.Session{}, domain.ErrAuthenticationRequired
	}

	now := s.clock.Now()
	if session.Expired(now) {
		if err := s.repo.DeleteSession(ctx, token); err != nil {
			return domain.User{}, domain.Session{}, err
		}
		return domain.User{}, domain.Session{}, domain.ErrSessionExpired
	}

	session.LastActivity = now
	if err := s.repo.TouchSession(ctx, token, now); err != nil {
		return domain.User{}, domain.Session{}, err
	}

	user, err := s.repo.GetUser(ctx, session.UserID)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}
	if user == nil {
		return domain.User{}, domain.Session{}, domain.ErrAuthenticationRequired
	}
	return *user, *session, nil
}

// Logout deletes the session. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.DeleteSession(ctx, token)
}

func (s *AuthService) startSession(ctx context.Context, userID string) (domain.Session, error) {
	session := domain.Session{
		Token:        newToken(),
		UserID:       userID,
		LastActivity: s.clock.Now(),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}
