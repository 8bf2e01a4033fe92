package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
)

// Resolver looks up already persisted records referenced by import rows.
// Every lookup is scoped to a tenant. A miss is reported as a nil result and
// a nil error; only datastore failures return an error.
type Resolver struct {
	clients  ports.ClientRepository
	services ports.ServiceRepository
	users    ports.UserRepository
}

func NewResolver(store ports.Store) *Resolver {
	return &Resolver{
		clients:  store.Clients,
		services: store.Services,
		users:    store.Users,
	}
}

// Resolve maps (entity, lookupField, value) to the referenced record id.
func (r *Resolver) Resolve(ctx context.Context, tenantID uuid.UUID, entity domain.EntityType, lookupField, value string) (*uuid.UUID, error) {
	switch {
	case entity == domain.EntityClients && lookupField == "email":
		c, err := r.Client(ctx, tenantID, value)
		if err != nil || c == nil {
			return nil, err
		}
		return &c.ID, nil
	case entity == domain.EntityServices && lookupField == "name":
		s, err := r.Service(ctx, tenantID, value)
		if err != nil || s == nil {
			return nil, err
		}
		return &s.ID, nil
	case entity == domain.EntityUsers && lookupField == "email":
		u, err := r.User(ctx, tenantID, value)
		if err != nil || u == nil {
			return nil, err
		}
		return &u.ID, nil
	}
	return nil, fmt.Errorf("no lookup for %s by %s", entity, lookupField)
}

func (r *Resolver) Client(ctx context.Context, tenantID uuid.UUID, email string) (*domain.Client, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, nil
	}
	c, err := r.clients.FindByEmail(ctx, tenantID, email)
	return found(c, err)
}

func (r *Resolver) Service(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	s, err := r.services.FindByName(ctx, tenantID, name)
	return found(s, err)
}

func (r *Resolver) User(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, nil
	}
	u, err := r.users.FindByTenantEmail(ctx, tenantID, email)
	return found(u, err)
}

func found[T any](record *T, err error) (*T, error) {
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}
