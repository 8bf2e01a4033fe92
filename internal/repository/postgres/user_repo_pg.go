package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

const userColumns = `id, tenant_id, email, full_name, role, password_hash, password_salt, created_at, updated_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (tenant_id, email, full_name, role, password_hash, password_salt)
        VALUES (:tenant_id, lower(:email), :full_name, :role, :password_hash, :password_salt)
        RETURNING ` + userColumns
	return insertReturning[domain.User](ctx, r.db, query, user)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM user_account
        WHERE lower(email) = lower($1)
    `
	return getOne[domain.User](ctx, r.db, query, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM user_account
        WHERE id = $1
    `
	return getOne[domain.User](ctx, r.db, query, id)
}

// FindByTenantEmail only matches accounts that belong to tenantID; platform
// accounts without a tenant are never returned.
func (r *UserRepository) FindByTenantEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM user_account
        WHERE tenant_id = $1 AND lower(email) = lower($2)
    `
	return getOne[domain.User](ctx, r.db, query, tenantID, email)
}
