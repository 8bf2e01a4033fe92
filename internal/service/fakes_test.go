package service

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type fakeClientRepo struct {
	byKey      map[string]*domain.Client
	panicOnAdd bool
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byKey: map[string]*domain.Client{}}
}

func clientKey(tenantID uuid.UUID, email string) string {
	return tenantID.String() + "|" + strings.ToLower(email)
}

func (f *fakeClientRepo) FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.Client, error) {
	if c, ok := f.byKey[clientKey(tenantID, email)]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeClientRepo) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if f.panicOnAdd {
		panic("driver exploded")
	}
	c.ID = uuid.New()
	f.byKey[clientKey(c.TenantID, c.Email)] = c
	return c, nil
}

type fakeUserRepo struct {
	byID    map[uuid.UUID]*domain.User
	created []*domain.User

	findByIDInput    uuid.UUID
	findByEmailInput string
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: map[uuid.UUID]*domain.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = uuid.New()
	f.byID[user.ID] = user
	f.created = append(f.created, user)
	return user, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.findByIDInput = id
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.findByEmailInput = email
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) FindByTenantEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error) {
	for _, u := range f.byID {
		if u.Email == email && u.TenantID != nil && *u.TenantID == tenantID {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
	revoked  string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.Session{}}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	session.ID = int64(len(f.sessions) + 1)
	session.CreatedAt = time.Now()
	f.sessions[session.Token] = session
	return session, nil
}

func (f *fakeSessionRepo) FindActive(ctx context.Context, token string) (*domain.Session, error) {
	s, ok := f.sessions[token]
	if !ok || !s.Active(time.Now()) {
		return nil, sql.ErrNoRows
	}
	return s, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	f.revoked = token
	if s, ok := f.sessions[token]; ok {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}
