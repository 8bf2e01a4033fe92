package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
	"github.com/njprem/BizSuite_BackEnd/internal/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionInvalid     = errors.New("session expired or revoked")
	ErrUserExists         = errors.New("user already exists")
)

type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	jwt      *util.JWTManager
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, jwt *util.JWTManager) *AuthService {
	return &AuthService{users: users, sessions: sessions, jwt: jwt}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, user)
}

func (s *AuthService) issue(ctx context.Context, user *domain.User) (*LoginResult, error) {
	token, expiresAt, err := s.jwt.Generate(user)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.Create(ctx, &domain.Session{
		UserID:    user.ID,
		TenantID:  user.TenantID,
		Token:     token,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Authenticate resolves a bearer token to its user. The token must be
// correctly signed and still backed by an active session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.FindActive(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	if !session.Active(time.Now()) || session.UserID != claims.UserID {
		return nil, ErrSessionInvalid
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

type CreateUserInput struct {
	Email    string
	FullName *string
	Password string
	Role     domain.RoleName
	TenantID *uuid.UUID
}

// CreateUser provisions an operator account. Every role except super_admin
// must belong to a tenant.
func (s *AuthService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !strings.Contains(email, "@") {
		return nil, errors.New("a valid email is required")
	}
	switch input.Role {
	case domain.RoleSuperAdmin:
		input.TenantID = nil
	case domain.RoleAdmin, domain.RoleStaff, domain.RoleCustomer:
		if input.TenantID == nil || *input.TenantID == uuid.Nil {
			return nil, errors.New("tenant is required for role " + string(input.Role))
		}
	default:
		return nil, errors.New("unknown role: " + string(input.Role))
	}
	if err := util.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, salt, err := util.DerivePassword(input.Password)
	if err != nil {
		return nil, err
	}
	return s.users.Create(ctx, &domain.User{
		TenantID:     input.TenantID,
		Email:        email,
		FullName:     input.FullName,
		Role:         input.Role,
		PasswordHash: hash,
		PasswordSalt: salt,
	})
}
