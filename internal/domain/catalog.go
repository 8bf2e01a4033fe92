package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Service is a bookable prestation offered by a tenant.
type Service struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	TenantID        uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Name            string          `db:"name" json:"name"`
	Description     *string         `db:"description" json:"description,omitempty"`
	Category        *string         `db:"category" json:"category,omitempty"`
	Price           decimal.Decimal `db:"price" json:"price"`
	DurationMinutes int             `db:"duration_minutes" json:"duration_minutes"`
	Active          bool            `db:"active" json:"active"`
	Featured        bool            `db:"featured" json:"featured"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

type Product struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	TenantID    uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Name        string          `db:"name" json:"name"`
	Description *string         `db:"description" json:"description,omitempty"`
	Category    *string         `db:"category" json:"category,omitempty"`
	SKU         *string         `db:"sku" json:"sku,omitempty"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Stock       int             `db:"stock" json:"stock"`
	Active      bool            `db:"active" json:"active"`
	Featured    bool            `db:"featured" json:"featured"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

type FormationLevel string

const (
	FormationLevelBeginner     FormationLevel = "beginner"
	FormationLevelIntermediate FormationLevel = "intermediate"
	FormationLevelAdvanced     FormationLevel = "advanced"
)

// Formation is a training course sold by a tenant.
type Formation struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	TenantID        uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Name            string          `db:"name" json:"name"`
	Slug            string          `db:"slug" json:"slug"`
	Description     *string         `db:"description" json:"description,omitempty"`
	Level           FormationLevel  `db:"level" json:"level"`
	Price           decimal.Decimal `db:"price" json:"price"`
	DurationHours   int             `db:"duration_hours" json:"duration_hours"`
	MaxParticipants *int            `db:"max_participants" json:"max_participants,omitempty"`
	StartDate       *time.Time      `db:"start_date" json:"start_date,omitempty"`
	Active          bool            `db:"active" json:"active"`
	Featured        bool            `db:"featured" json:"featured"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// Package bundles several services sold together. Services holds the service
// names as written in the source, not resolved ids.
type Package struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	TenantID     uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Name         string          `db:"name" json:"name"`
	Description  *string         `db:"description" json:"description,omitempty"`
	Price        decimal.Decimal `db:"price" json:"price"`
	Services     pq.StringArray  `db:"services" json:"services"`
	SessionCount int             `db:"session_count" json:"session_count"`
	ValidityDays int             `db:"validity_days" json:"validity_days"`
	Active       bool            `db:"active" json:"active"`
	Featured     bool            `db:"featured" json:"featured"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}
