package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of authorization roles.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// ErrUnknownRole reports a role outside the closed set.
var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole validates a role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleModerator:
		return RoleModerator, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrUnknownRole
	}
}

// Account is the credential record for one user. Accounts are never
// physically deleted, only deactivated.
type Account struct {
	ID             string     `db:"id"`
	Email          string     `db:"email"` // stored normalized (lower-cased, trimmed)
	Name           string     `db:"name"`
	PasswordHash   string     `db:"password_hash"` // argon2id PHC encoded, never plaintext
	Role           Role       `db:"role"`
	Active         bool       `db:"active"`
	FailedAttempts int        `db:"failed_attempts"`
	LockedUntil    *time.Time `db:"locked_until"`
	LastLoginAt    *time.Time `db:"last_login_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// Locked reports whether the account is under a lockout window at now.
func (a Account) Locked(now time.Time) bool {
	return a.LockedUntil != nil && a.LockedUntil.After(now)
}

// AccountView is the public projection of an account. It never carries the
// password hash or lockout state.
type AccountView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Active bool   `json:"active"`
}

// View returns the public projection of the account.
func (a Account) View() AccountView {
	return AccountView{
		ID:     a.ID,
		Name:   a.Name,
		Email:  a.Email,
		Role:   a.Role,
		Active: a.Active,
	}
}

// NormalizeEmail canonicalizes an identity: trimmed and lower-cased.
// All lookups and uniqueness checks operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
