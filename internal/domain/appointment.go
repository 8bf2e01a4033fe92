package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

type Appointment struct {
	ID        uuid.UUID         `db:"id" json:"id"`
	TenantID  uuid.UUID         `db:"tenant_id" json:"tenant_id"`
	ClientID  uuid.UUID         `db:"client_id" json:"client_id"`
	ServiceID uuid.UUID         `db:"service_id" json:"service_id"`
	StartAt   time.Time         `db:"start_at" json:"start_at"`
	EndAt     time.Time         `db:"end_at" json:"end_at"`
	Status    AppointmentStatus `db:"status" json:"status"`
	Price     decimal.Decimal   `db:"price" json:"price"`
	Notes     *string           `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
}
