package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

const (
	serviceColumns   = `id, tenant_id, name, description, category, price, duration_minutes, active, featured, created_at`
	productColumns   = `id, tenant_id, name, description, category, sku, price, stock, active, featured, created_at`
	formationColumns = `id, tenant_id, name, slug, description, level, price, duration_hours, max_participants,
        start_date, active, featured, created_at`
	packageColumns = `id, tenant_id, name, description, price, services, session_count, validity_days,
        active, featured, created_at`
)

type ServiceRepository struct {
	db *sqlx.DB
}

func NewServiceRepo(db *sqlx.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Service, error) {
	const query = `
        SELECT ` + serviceColumns + `
        FROM services
        WHERE tenant_id = $1 AND lower(name) = lower($2)
    `
	return getOne[domain.Service](ctx, r.db, query, tenantID, name)
}

func (r *ServiceRepository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	const query = `
        INSERT INTO services (tenant_id, name, description, category, price, duration_minutes, active, featured)
        VALUES (:tenant_id, :name, :description, :category, :price, :duration_minutes, :active, :featured)
        RETURNING ` + serviceColumns
	return insertReturning[domain.Service](ctx, r.db, query, service)
}

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepo(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Product, error) {
	const query = `
        SELECT ` + productColumns + `
        FROM products
        WHERE tenant_id = $1 AND lower(name) = lower($2)
    `
	return getOne[domain.Product](ctx, r.db, query, tenantID, name)
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	const query = `
        INSERT INTO products (tenant_id, name, description, category, sku, price, stock, active, featured)
        VALUES (:tenant_id, :name, :description, :category, :sku, :price, :stock, :active, :featured)
        RETURNING ` + productColumns
	return insertReturning[domain.Product](ctx, r.db, query, product)
}

type FormationRepository struct {
	db *sqlx.DB
}

func NewFormationRepo(db *sqlx.DB) *FormationRepository {
	return &FormationRepository{db: db}
}

func (r *FormationRepository) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Formation, error) {
	const query = `
        SELECT ` + formationColumns + `
        FROM formations
        WHERE tenant_id = $1 AND lower(name) = lower($2)
    `
	return getOne[domain.Formation](ctx, r.db, query, tenantID, name)
}

func (r *FormationRepository) Create(ctx context.Context, formation *domain.Formation) (*domain.Formation, error) {
	const query = `
        INSERT INTO formations (tenant_id, name, slug, description, level, price, duration_hours,
            max_participants, start_date, active, featured)
        VALUES (:tenant_id, :name, :slug, :description, :level, :price, :duration_hours,
            :max_participants, :start_date, :active, :featured)
        RETURNING ` + formationColumns
	return insertReturning[domain.Formation](ctx, r.db, query, formation)
}

type PackageRepository struct {
	db *sqlx.DB
}

func NewPackageRepo(db *sqlx.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Package, error) {
	const query = `
        SELECT ` + packageColumns + `
        FROM packages
        WHERE tenant_id = $1 AND lower(name) = lower($2)
    `
	return getOne[domain.Package](ctx, r.db, query, tenantID, name)
}

func (r *PackageRepository) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	const query = `
        INSERT INTO packages (tenant_id, name, description, price, services, session_count, validity_days,
            active, featured)
        VALUES (:tenant_id, :name, :description, :price, :services, :session_count, :validity_days,
            :active, :featured)
        RETURNING ` + packageColumns
	return insertReturning[domain.Package](ctx, r.db, query, pkg)
}
