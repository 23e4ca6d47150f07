package domain

import "time"

// LoginAttempt is one row of the append-only authentication ledger.
// Unknown identities are recorded too, so brute-force analysis sees every
// attempt, not just those against real accounts.
type LoginAttempt struct {
	ID         string    `db:"id"`
	Email      string    `db:"email"` // as attempted, normalized
	Success    bool      `db:"success"`
	RemoteAddr *string   `db:"remote_addr"` // optional caller network address
	CreatedAt  time.Time `db:"created_at"`
}
