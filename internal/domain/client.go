package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Client struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	TenantID      uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Email         string          `db:"email" json:"email"`
	FirstName     *string         `db:"first_name" json:"first_name,omitempty"`
	LastName      *string         `db:"last_name" json:"last_name,omitempty"`
	Phone         *string         `db:"phone" json:"phone,omitempty"`
	BirthDate     *time.Time      `db:"birth_date" json:"birth_date,omitempty"`
	Address       *string         `db:"address" json:"address,omitempty"`
	Notes         *string         `db:"notes" json:"notes,omitempty"`
	LoyaltyPoints int             `db:"loyalty_points" json:"loyalty_points"`
	TotalSpent    decimal.Decimal `db:"total_spent" json:"total_spent"`
	VisitCount    int             `db:"visit_count" json:"visit_count"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}
