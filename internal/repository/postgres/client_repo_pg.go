package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

const clientColumns = `id, tenant_id, email, first_name, last_name, phone, birth_date, address, notes,
        loyalty_points, total_spent, visit_count, created_at`

type ClientRepository struct {
	db *sqlx.DB
}

func NewClientRepo(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.Client, error) {
	const query = `
        SELECT ` + clientColumns + `
        FROM clients
        WHERE tenant_id = $1 AND lower(email) = lower($2)
    `
	return getOne[domain.Client](ctx, r.db, query, tenantID, email)
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	const query = `
        INSERT INTO clients (tenant_id, email, first_name, last_name, phone, birth_date, address, notes,
            loyalty_points, total_spent, visit_count)
        VALUES (:tenant_id, lower(:email), :first_name, :last_name, :phone, :birth_date, :address, :notes,
            :loyalty_points, :total_spent, :visit_count)
        RETURNING ` + clientColumns
	return insertReturning[domain.Client](ctx, r.db, query, client)
}
