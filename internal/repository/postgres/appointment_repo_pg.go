package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

const appointmentColumns = `id, tenant_id, client_id, service_id, start_at, end_at, status, price, notes, created_at`

type AppointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepo(db *sqlx.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) FindBySlot(ctx context.Context, tenantID, clientID, serviceID uuid.UUID, startAt time.Time) (*domain.Appointment, error) {
	const query = `
        SELECT ` + appointmentColumns + `
        FROM appointments
        WHERE tenant_id = $1 AND client_id = $2 AND service_id = $3 AND start_at = $4
    `
	return getOne[domain.Appointment](ctx, r.db, query, tenantID, clientID, serviceID, startAt)
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	const query = `
        INSERT INTO appointments (tenant_id, client_id, service_id, start_at, end_at, status, price, notes)
        VALUES (:tenant_id, :client_id, :service_id, :start_at, :end_at, :status, :price, :notes)
        RETURNING ` + appointmentColumns
	return insertReturning[domain.Appointment](ctx, r.db, query, appointment)
}
