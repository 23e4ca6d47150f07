package sqlite

import (
	"context"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/jmoiron/sqlx"
)

type attemptsRepo struct {
	db sqlx.ExtContext
}

func (r *attemptsRepo) AppendAttempt(ctx context.Context, a domain.LoginAttempt) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO login_attempts (id, email, success, remote_addr, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.Success, a.RemoteAddr, a.CreatedAt)
	return err
}

func (r *attemptsRepo) ListAttempts(ctx context.Context, email string, limit int) ([]domain.LoginAttempt, error) {
	if limit <= 0 {
		limit = 100
	}

	var out []domain.LoginAttempt
	var err error
	if email == "" {
		err = sqlx.SelectContext(ctx, r.db, &out,
			`SELECT id, email, success, remote_addr, created_at
			 FROM login_attempts ORDER BY created_at DESC LIMIT ?`, limit)
	} else {
		err = sqlx.SelectContext(ctx, r.db, &out,
			`SELECT id, email, success, remote_addr, created_at
			 FROM login_attempts WHERE email = ? ORDER BY created_at DESC LIMIT ?`,
			email, limit)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
