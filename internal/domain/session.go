package domain

import "time"

// Session is one authenticated browser. Only the SHA-256 digest of the
// bearer token is persisted.
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is no longer valid at now.
// A session whose expiry equals now is already expired.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionWithUser is a session row joined with its owning account.
type SessionWithUser struct {
	Session Session
	User    AdminUser
}
