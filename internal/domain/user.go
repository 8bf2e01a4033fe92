package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	TenantID     *uuid.UUID `db:"tenant_id" json:"tenant_id,omitempty"`
	Email        string     `db:"email" json:"email"`
	FullName     *string    `db:"full_name" json:"full_name,omitempty"`
	Role         RoleName   `db:"role" json:"role"`
	PasswordHash []byte     `db:"password_hash" json:"-"`
	PasswordSalt []byte     `db:"password_salt" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

func (u *User) HasRole(roles ...RoleName) bool {
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}
