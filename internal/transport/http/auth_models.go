package http

import (
	"time"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

// ErrorResponse represents a generic error payload.
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid email or password"`
	Details string `json:"details,omitempty" example:"import aborted: driver exploded"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"owner@salon.example"`
	Password string `json:"password" example:"Str0ng!Password"`
}

// AuthUser is the sanitized user returned by auth endpoints.
type AuthUser struct {
	ID        string    `json:"id" example:"9fd13fd2-63c5-4f29-a210-4a1a8e285f74"`
	Email     string    `json:"email" example:"owner@salon.example"`
	FullName  *string   `json:"full_name,omitempty" example:"Camille Martin"`
	Role      string    `json:"role" example:"admin"`
	TenantID  *string   `json:"tenant_id,omitempty" example:"2b0f5c52-8d0e-4d84-9f0f-0d8c0b7b44a1"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-01T12:00:00Z"`
}

type AuthTokenResponse struct {
	Token     string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt string   `json:"expires_at" example:"2025-01-02T09:30:00Z"`
	User      AuthUser `json:"user"`
}

func toAuthUser(u *domain.User) AuthUser {
	out := AuthUser{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
	if u.TenantID != nil {
		tenant := u.TenantID.String()
		out.TenantID = &tenant
	}
	return out
}
