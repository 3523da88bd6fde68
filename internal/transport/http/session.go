package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

// SessionResolver is the minimal interface needed to map a token to a user.
type SessionResolver interface {
	Resume(ctx context.Context, token string) (domain.User, domain.Session, error)
}

// sessionToken extracts the bearer token, if any, from the request.
func sessionToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// requestScope resolves the preference partition for the request. Requests
// without a usable session fall back to the anonymous partition; an invalid
// or expired token is treated as absent rather than rejected, since every
// read endpoint has meaningful anonymous behavior.
func requestScope(r *http.Request, auth SessionResolver) domain.Scope {
	token := sessionToken(r)
	if token == "" {
		return domain.ScopeAnonymous
	}
	user, _, err := auth.Resume(r.Context(), token)
	if err != nil {
		return domain.ScopeAnonymous
	}
	return domain.UserScope(user.ID)
}

// requireUserScope resolves the partition for endpoints that only work for
// authenticated users, writing the error response itself on failure.
func requireUserScope(w http.ResponseWriter, r *http.Request, auth SessionResolver) (domain.Scope, bool) {
	token := sessionToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, codeAuthenticationRequired, "authentication required")
		return "", false
	}
	user, _, err := auth.Resume(r.Context(), token)
	if err != nil {
		switch err {
		case domain.ErrSessionExpired:
			writeError(w, http.StatusUnauthorized, codeSessionExpired, "session expired")
		case domain.ErrAuthenticationRequired:
			writeError(w, http.StatusUnauthorized, codeAuthenticationRequired, "authentication required")
		default:
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		}
		return "", false
	}
	return domain.UserScope(user.ID), true
}
