package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/util"
)

func newAuthServiceForTests(users *fakeUserRepo, sessions *fakeSessionRepo) *AuthService {
	if sessions == nil {
		sessions = newFakeSessionRepo()
	}
	return NewAuthService(users, sessions, util.NewJWTManager("test-secret", time.Hour))
}

func seededAdmin(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, salt, err := util.DerivePassword(password)
	if err != nil {
		t.Fatalf("derive password: %v", err)
	}
	tenantID := uuid.New()
	return &domain.User{
		ID:           uuid.New(),
		TenantID:     &tenantID,
		Email:        "owner@salon.example",
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Run("user not found", func(t *testing.T) {
		svc := newAuthServiceForTests(newFakeUserRepo(), nil)
		_, err := svc.Login(context.Background(), "none@example.com", "password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		user := seededAdmin(t, "different")
		svc := newAuthServiceForTests(newFakeUserRepo(user), nil)
		_, err := svc.Login(context.Background(), user.Email, "password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestLoginThenAuthenticate(t *testing.T) {
	user := seededAdmin(t, "right-password")
	users := newFakeUserRepo(user)
	sessions := newFakeSessionRepo()
	svc := newAuthServiceForTests(users, sessions)

	result, err := svc.Login(context.Background(), "  OWNER@salon.example ", "right-password")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if users.findByEmailInput != "owner@salon.example" {
		t.Fatalf("email should be normalized before lookup, got %q", users.findByEmailInput)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected session to be created, got %d", len(sessions.sessions))
	}

	authenticated, err := svc.Authenticate(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Fatalf("expected user to be returned")
	}
	if users.findByIDInput != user.ID {
		t.Fatalf("expected user lookup by id")
	}
}

func TestAuthenticateRejectsRevokedSession(t *testing.T) {
	user := seededAdmin(t, "right-password")
	sessions := newFakeSessionRepo()
	svc := newAuthServiceForTests(newFakeUserRepo(user), sessions)

	result, err := svc.Login(context.Background(), user.Email, "right-password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sessions.revoked != result.Token {
		t.Fatalf("expected session to be revoked")
	}
	if _, err := svc.Authenticate(context.Background(), result.Token); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid, got %v", err)
	}
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc := newAuthServiceForTests(newFakeUserRepo(), nil)
	if _, err := svc.Authenticate(context.Background(), "not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestCreateUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTests(users, nil)
	tenantID := uuid.New()

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:    "Admin@Salon.example",
		Password: "Str0ng!Password",
		Role:     domain.RoleAdmin,
		TenantID: &tenantID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "admin@salon.example" || len(user.PasswordHash) == 0 {
		t.Fatalf("unexpected user %+v", user)
	}
	if !util.VerifyPassword("Str0ng!Password", user.PasswordSalt, user.PasswordHash) {
		t.Fatalf("stored hash should verify")
	}

	if _, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email: "admin@salon.example", Password: "Str0ng!Password", Role: domain.RoleAdmin, TenantID: &tenantID,
	}); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email: "staff@salon.example", Password: "Str0ng!Password", Role: domain.RoleStaff,
	}); err == nil {
		t.Fatalf("expected tenant to be required for staff")
	}
	if _, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email: "weak@salon.example", Password: "short", Role: domain.RoleSuperAdmin,
	}); err == nil {
		t.Fatalf("expected weak password to be rejected")
	}
}
