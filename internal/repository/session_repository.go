package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
)

// SessionRepository persists admin sessions keyed by token digest.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// GetByTokenHash returns (nil, nil) when no session matches.
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.SessionWithUser, error)
	// DeleteByTokenHash removes every session with the digest. Deleting a
	// missing session is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository returns a Postgres-backed implementation.
func NewSessionRepository(pool *pgxpool.Pool) SessionRepository {
	return &sessionRepository{pool: pool}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	const query = `
        INSERT INTO admin_sessions (user_id, token_hash, expires_at)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		session.UserID,
		session.TokenHash,
		session.ExpiresAt,
	).Scan(&session.ID, &session.CreatedAt)
}

func (r *sessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.SessionWithUser, error) {
	const query = `
        SELECT s.id, s.user_id, s.token_hash, s.expires_at, s.created_at,
               u.id, u.email, u.password_hash, u.display_name, u.role, u.created_at, u.updated_at
        FROM admin_sessions s
        JOIN admin_users u ON u.id = s.user_id
        WHERE s.token_hash=$1`

	var row domain.SessionWithUser
	err := r.pool.QueryRow(ctx, query, tokenHash).Scan(
		&row.Session.ID,
		&row.Session.UserID,
		&row.Session.TokenHash,
		&row.Session.ExpiresAt,
		&row.Session.CreatedAt,
		&row.User.ID,
		&row.User.Email,
		&row.User.PasswordHash,
		&row.User.DisplayName,
		&row.User.Role,
		&row.User.CreatedAt,
		&row.User.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM admin_sessions WHERE token_hash=$1`, tokenHash)
	return err
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM admin_sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
