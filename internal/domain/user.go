package domain

import "time"

// User is a registered account. Preferences saved to the server are keyed by
// the user's ID.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    time.Time
}

// Session is a login session. Validity is measured from LastActivity; expired
// sessions are deleted, not refreshed.
type Session struct {
	Token        string
	UserID       string
	LastActivity time.Time
}

// SessionTTL is the session validity window.
const SessionTTL = 24 * time.Hour

// Expired reports whether the session is past its validity window at now.
func (s Session) Expired(now time.Time) bool {
	return now.Sub(s.LastActivity) >= SessionTTL
}
