package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

const (
	giftCardColumns = `id, tenant_id, code, initial_amount, remaining_amount, buyer_id, recipient_name,
        recipient_email, message, status, expires_at, created_at`
	promoCodeColumns = `id, tenant_id, code, description, type, value, min_purchase, max_uses, used_count,
        valid_from, valid_until, applicable_services, active, created_at`
	reviewColumns     = `id, tenant_id, user_id, service_id, author_name, rating, comment, published, reviewed_at, created_at`
	subscriberColumns = `id, tenant_id, email, name, status, source, subscribed_at, created_at`
)

type GiftCardRepository struct {
	db *sqlx.DB
}

func NewGiftCardRepo(db *sqlx.DB) *GiftCardRepository {
	return &GiftCardRepository{db: db}
}

func (r *GiftCardRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.GiftCard, error) {
	const query = `
        SELECT ` + giftCardColumns + `
        FROM gift_cards
        WHERE tenant_id = $1 AND code = upper($2)
    `
	return getOne[domain.GiftCard](ctx, r.db, query, tenantID, code)
}

func (r *GiftCardRepository) Create(ctx context.Context, card *domain.GiftCard) (*domain.GiftCard, error) {
	const query = `
        INSERT INTO gift_cards (tenant_id, code, initial_amount, remaining_amount, buyer_id, recipient_name,
            recipient_email, message, status, expires_at)
        VALUES (:tenant_id, upper(:code), :initial_amount, :remaining_amount, :buyer_id, :recipient_name,
            :recipient_email, :message, :status, :expires_at)
        RETURNING ` + giftCardColumns
	return insertReturning[domain.GiftCard](ctx, r.db, query, card)
}

type PromoCodeRepository struct {
	db *sqlx.DB
}

func NewPromoCodeRepo(db *sqlx.DB) *PromoCodeRepository {
	return &PromoCodeRepository{db: db}
}

func (r *PromoCodeRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.PromoCode, error) {
	const query = `
        SELECT ` + promoCodeColumns + `
        FROM promo_codes
        WHERE tenant_id = $1 AND code = upper($2)
    `
	return getOne[domain.PromoCode](ctx, r.db, query, tenantID, code)
}

func (r *PromoCodeRepository) Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	const query = `
        INSERT INTO promo_codes (tenant_id, code, description, type, value, min_purchase, max_uses,
            valid_from, valid_until, applicable_services, active)
        VALUES (:tenant_id, upper(:code), :description, :type, :value, :min_purchase, :max_uses,
            :valid_from, :valid_until, :applicable_services, :active)
        RETURNING ` + promoCodeColumns
	return insertReturning[domain.PromoCode](ctx, r.db, query, promo)
}

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepo(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// FindByAuthorAndComment only matches commented reviews; reviews without a
// comment are never considered duplicates.
func (r *ReviewRepository) FindByAuthorAndComment(ctx context.Context, tenantID uuid.UUID, author string, comment string) (*domain.Review, error) {
	const query = `
        SELECT ` + reviewColumns + `
        FROM reviews
        WHERE tenant_id = $1
          AND lower(author_name) = lower($2)
          AND comment = $3
        LIMIT 1
    `
	return getOne[domain.Review](ctx, r.db, query, tenantID, author, comment)
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	const query = `
        INSERT INTO reviews (tenant_id, user_id, service_id, author_name, rating, comment, published, reviewed_at)
        VALUES (:tenant_id, :user_id, :service_id, :author_name, :rating, :comment, :published, :reviewed_at)
        RETURNING ` + reviewColumns
	return insertReturning[domain.Review](ctx, r.db, query, review)
}

type NewsletterRepository struct {
	db *sqlx.DB
}

func NewNewsletterRepo(db *sqlx.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

func (r *NewsletterRepository) FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.NewsletterSubscriber, error) {
	const query = `
        SELECT ` + subscriberColumns + `
        FROM newsletter_subscribers
        WHERE tenant_id = $1 AND lower(email) = lower($2)
    `
	return getOne[domain.NewsletterSubscriber](ctx, r.db, query, tenantID, email)
}

func (r *NewsletterRepository) Create(ctx context.Context, subscriber *domain.NewsletterSubscriber) (*domain.NewsletterSubscriber, error) {
	const query = `
        INSERT INTO newsletter_subscribers (tenant_id, email, name, status, source, subscribed_at)
        VALUES (:tenant_id, lower(:email), :name, :status, :source, :subscribed_at)
        RETURNING ` + subscriberColumns
	return insertReturning[domain.NewsletterSubscriber](ctx, r.db, query, subscriber)
}
