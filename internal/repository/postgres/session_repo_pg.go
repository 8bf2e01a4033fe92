package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

const sessionColumns = `id, user_id, tenant_id, token, created_at, expires_at, revoked_at`

type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepo(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	const query = `
        INSERT INTO sessions (user_id, tenant_id, token, expires_at)
        VALUES (:user_id, :tenant_id, :token, :expires_at)
        RETURNING ` + sessionColumns
	return insertReturning[domain.Session](ctx, r.db, query, session)
}

func (r *SessionRepository) FindActive(ctx context.Context, token string) (*domain.Session, error) {
	const query = `
        SELECT ` + sessionColumns + `
        FROM sessions
        WHERE token = $1 AND revoked_at IS NULL AND expires_at > NOW()
    `
	return getOne[domain.Session](ctx, r.db, query, token)
}

func (r *SessionRepository) Revoke(ctx context.Context, token string) error {
	const query = `
        UPDATE sessions SET revoked_at = NOW()
        WHERE token = $1 AND revoked_at IS NULL
    `
	_, err := r.db.ExecContext(ctx, query, token)
	return err
}
