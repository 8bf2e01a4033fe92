package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type GiftCardStatus string

const (
	GiftCardStatusActive  GiftCardStatus = "active"
	GiftCardStatusUsed    GiftCardStatus = "used"
	GiftCardStatusExpired GiftCardStatus = "expired"
)

type GiftCard struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	TenantID        uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Code            string          `db:"code" json:"code"`
	InitialAmount   decimal.Decimal `db:"initial_amount" json:"initial_amount"`
	RemainingAmount decimal.Decimal `db:"remaining_amount" json:"remaining_amount"`
	BuyerID         *uuid.UUID      `db:"buyer_id" json:"buyer_id,omitempty"`
	RecipientName   *string         `db:"recipient_name" json:"recipient_name,omitempty"`
	RecipientEmail  *string         `db:"recipient_email" json:"recipient_email,omitempty"`
	Message         *string         `db:"message" json:"message,omitempty"`
	Status          GiftCardStatus  `db:"status" json:"status"`
	ExpiresAt       *time.Time      `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

type PromoCodeType string

const (
	PromoCodeTypePercentage PromoCodeType = "percentage"
	PromoCodeTypeFixed      PromoCodeType = "fixed"
)

// PromoCode keeps its applicable services as the names written in the source.
type PromoCode struct {
	ID                 uuid.UUID        `db:"id" json:"id"`
	TenantID           uuid.UUID        `db:"tenant_id" json:"tenant_id"`
	Code               string           `db:"code" json:"code"`
	Description        *string          `db:"description" json:"description,omitempty"`
	Type               PromoCodeType    `db:"type" json:"type"`
	Value              decimal.Decimal  `db:"value" json:"value"`
	MinPurchase        *decimal.Decimal `db:"min_purchase" json:"min_purchase,omitempty"`
	MaxUses            *int             `db:"max_uses" json:"max_uses,omitempty"`
	UsedCount          int              `db:"used_count" json:"used_count"`
	ValidFrom          *time.Time       `db:"valid_from" json:"valid_from,omitempty"`
	ValidUntil         *time.Time       `db:"valid_until" json:"valid_until,omitempty"`
	ApplicableServices pq.StringArray   `db:"applicable_services" json:"applicable_services"`
	Active             bool             `db:"active" json:"active"`
	CreatedAt          time.Time        `db:"created_at" json:"created_at"`
}

// Review links to a user and a service when those could be found; both links
// are optional.
type Review struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	TenantID   uuid.UUID  `db:"tenant_id" json:"tenant_id"`
	UserID     *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	ServiceID  *uuid.UUID `db:"service_id" json:"service_id,omitempty"`
	AuthorName string     `db:"author_name" json:"author_name"`
	Rating     int        `db:"rating" json:"rating"`
	Comment    *string    `db:"comment" json:"comment,omitempty"`
	Published  bool       `db:"published" json:"published"`
	ReviewedAt *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

type SubscriberStatus string

const (
	SubscriberStatusActive       SubscriberStatus = "active"
	SubscriberStatusUnsubscribed SubscriberStatus = "unsubscribed"
)

type NewsletterSubscriber struct {
	ID           uuid.UUID        `db:"id" json:"id"`
	TenantID     uuid.UUID        `db:"tenant_id" json:"tenant_id"`
	Email        string           `db:"email" json:"email"`
	Name         *string          `db:"name" json:"name,omitempty"`
	Status       SubscriberStatus `db:"status" json:"status"`
	Source       *string          `db:"source" json:"source,omitempty"`
	SubscribedAt time.Time        `db:"subscribed_at" json:"subscribed_at"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
}
