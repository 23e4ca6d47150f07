package sqlite

import (
	"context"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/jmoiron/sqlx"
)

type sessionsRepo struct {
	db sqlx.ExtContext
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id_hash, account_id, email, role, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.IDHash, s.AccountID, s.Email, s.Role, s.CreatedAt, s.ExpiresAt)
	return mapConflict(err)
}

func (r *sessionsRepo) GetSessionByHash(ctx context.Context, idHash string) (domain.Session, error) {
	var s domain.Session
	err := sqlx.GetContext(ctx, r.db, &s,
		`SELECT id_hash, account_id, email, role, created_at, expires_at
		 FROM sessions WHERE id_hash = ?`, idHash)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, idHash string) error {
	return requireRowsAffected(r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE id_hash = ?`, idHash))
}

func (r *sessionsRepo) DeleteAccountSessions(ctx context.Context, accountID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE account_id = ?`, accountID)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, time.Now().UTC())
	return err
}
