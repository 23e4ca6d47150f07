package sqlite

import (
	"context"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/jmoiron/sqlx"
)

type accountsRepo struct {
	db sqlx.ExtContext
}

const accountColumns = `id, email, name, password_hash, role, active,
	failed_attempts, locked_until, last_login_at, created_at, updated_at`

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	var a domain.Account
	err := sqlx.GetContext(ctx, r.db, &a,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	var a domain.Account
	err := sqlx.GetContext(ctx, r.db, &a,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`,
		domain.NormalizeEmail(email))
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, name, password_hash, role, active,
			failed_attempts, locked_until, last_login_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		domain.NormalizeEmail(a.Email),
		a.Name,
		a.PasswordHash,
		a.Role,
		a.Active,
		a.FailedAttempts,
		a.LockedUntil,
		a.LastLoginAt,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *accountsRepo) UpdateProfile(ctx context.Context, id, name, email string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET name = ?, email = ?, updated_at = ? WHERE id = ?`,
		name, domain.NormalizeEmail(email), time.Now().UTC(), id)
	if err != nil {
		return mapConflict(err)
	}
	return requireRowsAffected(res, nil)
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, id, newHash string) error {
	return requireRowsAffected(r.db.ExecContext(ctx,
		`UPDATE accounts SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), id))
}

// RecordFailedAttempt is a single read-modify-write statement: SQLite's
// writer lock guarantees two concurrent failures cannot both observe the
// same counter value and under-trigger the lockout.
func (r *accountsRepo) RecordFailedAttempt(
	ctx context.Context,
	id string,
	threshold int,
	lockedUntil time.Time,
) error {
	return requireRowsAffected(r.db.ExecContext(ctx,
		`UPDATE accounts
		 SET failed_attempts = failed_attempts + 1,
		     locked_until = CASE
		         WHEN failed_attempts + 1 >= ? THEN ?
		         ELSE locked_until
		     END,
		     updated_at = ?
		 WHERE id = ?`,
		threshold, lockedUntil, time.Now().UTC(), id))
}

func (r *accountsRepo) RecordSuccess(ctx context.Context, id string, at time.Time) error {
	return requireRowsAffected(r.db.ExecContext(ctx,
		`UPDATE accounts
		 SET failed_attempts = 0,
		     locked_until = NULL,
		     last_login_at = ?,
		     updated_at = ?
		 WHERE id = ?`,
		at, at, id))
}

func (r *accountsRepo) SetActive(ctx context.Context, id string, active bool) error {
	return requireRowsAffected(r.db.ExecContext(ctx,
		`UPDATE accounts SET active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), id))
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var out []domain.Account
	err := sqlx.SelectContext(ctx, r.db, &out,
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	err := sqlx.GetContext(ctx, r.db, &count, `SELECT COUNT(*) FROM accounts`)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
