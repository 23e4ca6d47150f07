package service

import "errors"

// Sentinel errors returned by the catalog services. HTTP handlers map these
// onto status codes; everything else surfaces as an internal error.
var (
	// ErrInvalidCredentials covers both unknown identity and wrong password.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrAccountLocked means the account is inside its lockout window.
	ErrAccountLocked = errors.New("account_locked")

	// ErrAccountInactive means the account exists but has been deactivated.
	ErrAccountInactive = errors.New("account_inactive")

	// ErrDuplicateEmail means the identity is already registered.
	ErrDuplicateEmail = errors.New("duplicate_email")

	// ErrWeakPassword means the candidate secret fails the password policy.
	ErrWeakPassword = errors.New("weak_password")

	// ErrInvalidCurrentPassword means a password change presented a wrong
	// current secret.
	ErrInvalidCurrentPassword = errors.New("invalid_current_password")

	// ErrTokenExpired means a bearer token was well-formed and correctly
	// signed but past its expiry.
	ErrTokenExpired = errors.New("token_expired")

	// ErrTokenInvalid means a bearer token failed verification for any other
	// reason (malformed, bad signature, wrong issuer).
	ErrTokenInvalid = errors.New("token_invalid")

	// ErrSessionInvalid means a session cookie did not resolve to a live
	// server-side session.
	ErrSessionInvalid = errors.New("session_invalid")

	// ErrSelfDeactivation means an admin tried to deactivate their own account.
	ErrSelfDeactivation = errors.New("self_deactivation")

	// ErrNotFound is the service-level projection of a missing record.
	ErrNotFound = errors.New("not_found")
)
