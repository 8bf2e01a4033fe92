package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks an issued bearer token so it can be revoked before expiry.
type Session struct {
	ID        int64      `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	TenantID  *uuid.UUID `db:"tenant_id" json:"tenant_id,omitempty"`
	Token     string     `db:"token" json:"-"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	ExpiresAt time.Time  `db:"expires_at" json:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
}

func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
