package store

import (
	"context"
	"errors"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement it. Sub-repositories keep concerns tidy and make the
// transaction boundary explicit at call sites.
type Store interface {
	Accounts() Accounts
	Sessions() Sessions
	LoginAttempts() LoginAttempts
	Products() Products

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and
	// rolling back on error. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail looks up an account by identity. The lookup is
	// case-insensitive: the email is normalized before matching.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by the caller via
	// ULID, the secret is already hashed). Returns ErrAlreadyExists when the
	// normalized email collides with an existing account.
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdateProfile mutates name and identity. Returns ErrAlreadyExists when
	// the new identity collides with a different account.
	UpdateProfile(ctx context.Context, id, name, email string) error

	// UpdatePasswordHash replaces the stored secret hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id, newHash string) error

	// RecordFailedAttempt atomically increments the failed counter and, when
	// the counter reaches threshold, sets the lockout deadline. The
	// increment and conditional lockout are a single read-modify-write so
	// concurrent failures cannot under-trigger the lockout.
	RecordFailedAttempt(ctx context.Context, id string, threshold int, lockedUntil time.Time) error

	// RecordSuccess atomically resets the failed counter, clears any
	// lockout, and stamps the last successful login.
	RecordSuccess(ctx context.Context, id string, at time.Time) error

	// SetActive flips the active flag. Accounts are never deleted.
	SetActive(ctx context.Context, id string, active bool) error

	// ListAccounts returns all accounts ordered by creation date.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// IsEmpty returns true if there are no accounts (used by bootstrap).
	IsEmpty(ctx context.Context) (bool, error)
}

type Sessions interface {
	// CreateSession stores a new session record keyed by id fingerprint.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByHash returns the session by its fingerprinted id.
	GetSessionByHash(ctx context.Context, idHash string) (domain.Session, error)

	// DeleteSession removes one session (logout).
	DeleteSession(ctx context.Context, idHash string) error

	// DeleteAccountSessions removes every session for an account
	// (admin deactivation).
	DeleteAccountSessions(ctx context.Context, accountID string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}

type LoginAttempts interface {
	// AppendAttempt writes one ledger row. The ledger is append-only; rows
	// are never mutated or deleted by this service.
	AppendAttempt(ctx context.Context, a domain.LoginAttempt) error

	// ListAttempts returns ledger rows for one identity, newest first,
	// capped at limit. An empty email returns rows for all identities.
	ListAttempts(ctx context.Context, email string, limit int) ([]domain.LoginAttempt, error)
}

type Products interface {
	// GetProductByID returns a product by id.
	GetProductByID(ctx context.Context, id string) (domain.Product, error)

	// ListProducts returns all products ordered by creation date (newest first).
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// CreateProduct inserts a new product (id is ULID).
	CreateProduct(ctx context.Context, p domain.Product) error

	// UpdateProduct replaces the mutable fields and bumps updated_at.
	UpdateProduct(ctx context.Context, p domain.Product) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id string) error
}
