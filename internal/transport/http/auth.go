package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/app"
	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// Registrar is the minimal interface needed to create accounts.
type Registrar interface {
	Register(ctx context.Context, in app.RegisterInput) (domain.User, domain.Session, error)
}

// Authenticator is the minimal interface needed to log in.
type Authenticator interface {
	Login(ctx context.Context, in app.LoginInput) (domain.User, domain.Session, error)
}

// SessionCloser is the minimal interface needed to log out.
type SessionCloser interface {
	Resume(ctx context.Context, token string) (domain.User, domain.Session, error)
	Logout(ctx context.Context, token string) error
}

// ScopeResetter drops in-memory preference state for a partition.
type ScopeResetter interface {
	Reset(scope domain.Scope)
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func newSessionResponse(user domain.User, session domain.Session) sessionResponse {
	return sessionResponse{
		User: userResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		Token: session.Token,
	}
}

// HandleRegister returns an HTTP handler for account creation.
func HandleRegister(svc Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req registerRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.Password != req.ConfirmPassword {
			writeError(w, http.StatusBadRequest, codePasswordMismatch, "passwords do not match")
			return
		}

		user, session, err := svc.Register(r.Context(), app.RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch err {
			case domain.ErrMissingField:
				writeError(w, http.StatusBadRequest, codeMissingRequiredField, err.Error())
			case domain.ErrInvalidEmail:
				writeError(w, http.StatusBadRequest, codeInvalidEmail, err.Error())
			case domain.ErrPasswordTooShort:
				writeError(w, http.StatusBadRequest, codePasswordTooShort, err.Error())
			case domain.ErrDuplicateCredential:
				writeError(w, http.StatusConflict, codeDuplicateCredential, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, newSessionResponse(user, session))
	}
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// HandleLogin returns an HTTP handler for credential login. Unknown username
// and wrong password are distinct responses on purpose; the source behavior
// reports them separately.
func HandleLogin(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req loginRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		user, session, err := svc.Login(r.Context(), app.LoginInput{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			switch err {
			case domain.ErrMissingField:
				writeError(w, http.StatusBadRequest, codeMissingRequiredField, err.Error())
			case domain.ErrUserNotFound:
				writeError(w, http.StatusUnauthorized, codeUserNotFound, "User not found")
			case domain.ErrInvalidPassword:
				writeError(w, http.StatusUnauthorized, codeInvalidPassword, "Invalid password")
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newSessionResponse(user, session))
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogout returns an HTTP handler that ends the session behind the
// bearer token and drops the user's in-memory preference state, so the next
// anonymous request starts from the anonymous partition.
func HandleLogout(svc SessionCloser, prefs ScopeResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		token := sessionToken(r)
		if token != "" {
			if user, _, err := svc.Resume(r.Context(), token); err == nil {
				prefs.Reset(domain.UserScope(user.ID))
			}
		}
		if err := svc.Logout(r.Context(), token); err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleSession returns an HTTP handler that validates the bearer token and
// returns the account behind it, refreshing the session's activity window.
func HandleSession(svc SessionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		user, session, err := svc.Resume(r.Context(), sessionToken(r))
		if err != nil {
			switch err {
			case domain.ErrAuthenticationRequired:
				writeError(w, http.StatusUnauthorized, codeAuthenticationRequired, "authentication required")
			case domain.ErrSessionExpired:
				writeError(w, http.StatusUnauthorized, codeSessionExpired, "session expired")
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newSessionResponse(user, session))
	}
}
