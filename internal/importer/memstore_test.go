package importer

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
)

// memTable is a tenant-keyed record set that behaves like the postgres
// repositories: misses return sql.ErrNoRows and key conflicts a 23505 error.
type memTable[T any] struct {
	mu        sync.Mutex
	rows      map[string]*T
	findErr   error
	createErr error
	// blind hides stored rows from lookups to reproduce a concurrent insert
	// slipping past the duplicate check.
	blind bool
}

func newMemTable[T any]() *memTable[T] {
	return &memTable[T]{rows: make(map[string]*T)}
}

func tenantKey(tenantID uuid.UUID, parts ...string) string {
	return tenantID.String() + "|" + strings.Join(parts, "|")
}

func (t *memTable[T]) find(key string) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.findErr != nil {
		return nil, t.findErr
	}
	rec, ok := t.rows[key]
	if !ok || t.blind {
		return nil, sql.ErrNoRows
	}
	cp := *rec
	return &cp, nil
}

func (t *memTable[T]) insert(key string, rec *T) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.createErr != nil {
		return nil, t.createErr
	}
	if _, exists := t.rows[key]; exists {
		return nil, &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	}
	cp := *rec
	t.rows[key] = &cp
	return rec, nil
}

func (t *memTable[T]) all() []*T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*T, 0, len(t.rows))
	for _, rec := range t.rows {
		out = append(out, rec)
	}
	return out
}

func (t *memTable[T]) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

type memStore struct {
	clients      *memTable[domain.Client]
	services     *memTable[domain.Service]
	products     *memTable[domain.Product]
	appointments *memTable[domain.Appointment]
	formations   *memTable[domain.Formation]
	giftCards    *memTable[domain.GiftCard]
	packages     *memTable[domain.Package]
	promoCodes   *memTable[domain.PromoCode]
	reviews      *memTable[domain.Review]
	newsletter   *memTable[domain.NewsletterSubscriber]
	users        *memTable[domain.User]
}

func newMemStore() *memStore {
	return &memStore{
		clients:      newMemTable[domain.Client](),
		services:     newMemTable[domain.Service](),
		products:     newMemTable[domain.Product](),
		appointments: newMemTable[domain.Appointment](),
		formations:   newMemTable[domain.Formation](),
		giftCards:    newMemTable[domain.GiftCard](),
		packages:     newMemTable[domain.Package](),
		promoCodes:   newMemTable[domain.PromoCode](),
		reviews:      newMemTable[domain.Review](),
		newsletter:   newMemTable[domain.NewsletterSubscriber](),
		users:        newMemTable[domain.User](),
	}
}

func (m *memStore) ports() ports.Store {
	return ports.Store{
		Clients:      memClients{m.clients},
		Services:     memServices{m.services},
		Products:     memProducts{m.products},
		Appointments: memAppointments{m.appointments},
		Formations:   memFormations{m.formations},
		GiftCards:    memGiftCards{m.giftCards},
		Packages:     memPackages{m.packages},
		PromoCodes:   memPromoCodes{m.promoCodes},
		Reviews:      memReviews{m.reviews},
		Newsletter:   memNewsletter{m.newsletter},
		Users:        memUsers{m.users},
	}
}

func (m *memStore) seedClient(tenantID uuid.UUID, email string) *domain.Client {
	c := &domain.Client{ID: uuid.New(), TenantID: tenantID, Email: email}
	m.clients.rows[tenantKey(tenantID, strings.ToLower(email))] = c
	return c
}

func (m *memStore) seedService(tenantID uuid.UUID, name, price string, minutes int) *domain.Service {
	s := &domain.Service{ID: uuid.New(), TenantID: tenantID, Name: name, DurationMinutes: minutes, Active: true}
	s.Price, _ = parseDecimal(price)
	m.services.rows[tenantKey(tenantID, strings.ToLower(name))] = s
	return s
}

func (m *memStore) seedUser(tenantID uuid.UUID, email string) *domain.User {
	tid := tenantID
	u := &domain.User{ID: uuid.New(), TenantID: &tid, Email: email, Role: domain.RoleCustomer}
	m.users.rows[tenantKey(tenantID, strings.ToLower(email))] = u
	return u
}

func stamp[T any](rec *T, id *uuid.UUID, createdAt *time.Time) *T {
	*id = uuid.New()
	*createdAt = time.Now().UTC()
	return rec
}

type memClients struct{ t *memTable[domain.Client] }

func (r memClients) FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.Client, error) {
	return r.t.find(tenantKey(tenantID, strings.ToLower(email)))
}

func (r memClients) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	return r.t.insert(tenantKey(c.TenantID, strings.ToLower(c.Email)), stamp(c, &c.ID, &c.CreatedAt))
}

type memServices struct{ t *memTable[domain.Service] }

func (r memServices) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Service, error) {
	return r.t.find(tenantKey(tenantID, strings.ToLower(name)))
}

func (r memServices) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	return r.t.insert(tenantKey(s.TenantID, strings.ToLower(s.Name)), stamp(s, &s.ID, &s.CreatedAt))
}

type memProducts struct{ t *memTable[domain.Product] }

func (r memProducts) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Product, error) {
	return r.t.find(tenantKey(tenantID, strings.ToLower(name)))
}

func (r memProducts) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	return r.t.insert(tenantKey(p.TenantID, strings.ToLower(p.Name)), stamp(p, &p.ID, &p.CreatedAt))
}

type memAppointments struct{ t *memTable[domain.Appointment] }

func slotKey(tenantID, clientID, serviceID uuid.UUID, startAt time.Time) string {
	return tenantKey(tenantID, clientID.String(), serviceID.String(), startAt.UTC().Format(time.RFC3339))
}

func (r memAppointments) FindBySlot(ctx context.Context, tenantID, clientID, serviceID uuid.UUID, startAt time.Time) (*domain.Appointment, error) {
	return r.t.find(slotKey(tenantID, clientID, serviceID, startAt))
}

func (r memAppointments) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	return r.t.insert(slotKey(a.TenantID, a.ClientID, a.ServiceID, a.StartAt), stamp(a, &a.ID, &a.CreatedAt))
}

type memFormations struct{ t *memTable[domain.Formation] }

func (r memFormations) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Formation, error) {
	return r.t.find(tenantKey(tenantID, strings.ToLower(name)))
}

func (r memFormations) Create(ctx context.Context, f *domain.Formation) (*domain.Formation, error) {
	return r.t.insert(tenantKey(f.TenantID, strings.ToLower(f.Name)), stamp(f, &f.ID, &f.CreatedAt))
}

type memGiftCards struct{ t *memTable[domain.GiftCard] }

func (r memGiftCards) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.GiftCard, error) {
	return r.t.find(tenantKey(tenantID, strings.ToUpper(code)))
}

func (r memGiftCards) Create(ctx context.Context, g *domain.GiftCard) (*domain.GiftCard, error) {
	return r.t.insert(tenantKey(g.TenantID, strings.ToUpper(g.Code)), stamp(g, &g.ID, &g.CreatedAt))
}

type memPackages struct{ t *memTable[domain.Package] }

func (r memPackages) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Package, error) {
	return r.t.find(tenantKey(tenantID, strings.ToLower(name)))
}

func (r memPackages) Create(ctx context.Context, p *domain.Package) (*domain.Package, error) {
	return r.t.insert(tenantKey(p.TenantID, strings.ToLower(p.Name)), stamp(p, &p.ID, &p.CreatedAt))
}

type memPromoCodes struct{ t *memTable[domain.PromoCode] }

func (r memPromoCodes) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.PromoCode, error) {
	return r.t.find(tenantKey(tenantID, strings.ToUpper(code)))
}

func (r memPromoCodes) Create(ctx context.Context, p *domain.PromoCode) (*domain.PromoCode, error) {
	return r.t.insert(tenantKey(p.TenantID, strings.ToUpper(p.Code)), stamp(p, &p.ID, &p.CreatedAt))
}

type memReviews struct{ t *memTable[domain.Review] }

func reviewKey(tenantID uuid.UUID, author, comment string) string {
	return tenantKey(tenantID, strings.ToLower(author), comment)
}

func (r memReviews) FindByAuthorAndComment(ctx context.Context, tenantID uuid.UUID, author string, comment string) (*domain.Review, error) {
	return r.t.find(reviewKey(tenantID, author, comment))
}

// Create mirrors the partial unique index: only commented reviews are keyed.
func (r memReviews) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	key := tenantKey(rv.TenantID, "uncommented", uuid.NewString())
	if rv.Comment != nil {
		key = reviewKey(rv.TenantID, rv.AuthorName, *rv.Comment)
	}
	return r.t.insert(key, stamp(rv, &rv.ID, &rv.CreatedAt))
}

type memNewsletter struct {
	t *memTable[domain.NewsletterSubscriber]
}

func (r memNewsletter) FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.NewsletterSubscriber, error) {
	return r.t.find(tenantKey(tenantID, strings.ToLower(email)))
}

func (r memNewsletter) Create(ctx context.Context, s *domain.NewsletterSubscriber) (*domain.NewsletterSubscriber, error) {
	return r.t.insert(tenantKey(s.TenantID, strings.ToLower(s.Email)), stamp(s, &s.ID, &s.CreatedAt))
}

type memUsers struct{ t *memTable[domain.User] }

func (r memUsers) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	tenant := uuid.Nil
	if u.TenantID != nil {
		tenant = *u.TenantID
	}
	return r.t.insert(tenantKey(tenant, strings.ToLower(u.Email)), stamp(u, &u.ID, &u.CreatedAt))
}

func (r memUsers) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range r.t.all() {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r memUsers) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.t.all() {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r memUsers) FindByTenantEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error) {
	return r.t.find(tenantKey(tenantID, strings.ToLower(email)))
}
