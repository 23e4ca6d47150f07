package domain

import "time"

// Session is a server-side login record. Only the SHA-256 fingerprint of
// the opaque session id is stored; the raw id lives in the client cookie.
// Identity fields are a snapshot taken at issuance.
type Session struct {
	IDHash    string    `db:"id_hash"`
	AccountID string    `db:"account_id"`
	Email     string    `db:"email"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// Expired reports whether the session has passed its fixed expiry window.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionHandle is returned to the caller at issuance. ID is the raw opaque
// value, shown exactly once and safe for a cookie.
type SessionHandle struct {
	ID        string
	ExpiresAt time.Time
}
