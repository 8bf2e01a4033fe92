package importer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
)

// giftCardImporter links the buyer when a client with buyer_email exists; an
// unknown buyer leaves the link empty.
type giftCardImporter struct {
	schema   *Schema
	repo     ports.GiftCardRepository
	resolver *Resolver
}

func (i *giftCardImporter) Import(ctx context.Context, tenantID uuid.UUID, row Row) Outcome {
	fr := newFieldReader(i.schema, row)
	card := &domain.GiftCard{
		TenantID:       tenantID,
		Code:           strings.ToUpper(fr.String("code")),
		InitialAmount:  fr.Decimal("initial_amount"),
		RecipientName:  fr.OptionalString("recipient_name"),
		RecipientEmail: fr.OptionalString("recipient_email"),
		Message:        fr.OptionalString("message"),
		Status:         domain.GiftCardStatus(fr.Enum("status")),
		ExpiresAt:      fr.OptionalDate("expires_at"),
	}
	card.RemainingAmount = card.InitialAmount
	if remaining := fr.OptionalDecimal("remaining_amount"); remaining != nil {
		card.RemainingAmount = *remaining
	}
	buyerEmail := fr.Email("buyer_email")
	if err := fr.Err(); err != nil {
		return Failed("%v", err)
	}

	buyer, err := i.resolver.Resolve(ctx, tenantID, domain.EntityClients, "email", buyerEmail)
	if err != nil {
		return Failed("could not look up buyer %s: %v", buyerEmail, err)
	}
	card.BuyerID = buyer

	existing, err := i.repo.FindByCode(ctx, tenantID, card.Code)
	if out, stop := duplicateCheck(existing != nil, err, i.schema.Label, card.Code); stop {
		return out
	}

	created, err := i.repo.Create(ctx, card)
	if err != nil {
		return persistFailure(err, i.schema.Label, card.Code)
	}
	return Created(created.ID)
}

type promoCodeImporter struct {
	schema *Schema
	repo   ports.PromoCodeRepository
}

func (i *promoCodeImporter) Import(ctx context.Context, tenantID uuid.UUID, row Row) Outcome {
	fr := newFieldReader(i.schema, row)
	promo := &domain.PromoCode{
		TenantID:           tenantID,
		Code:               strings.ToUpper(fr.String("code")),
		Description:        fr.OptionalString("description"),
		Type:               domain.PromoCodeType(fr.Enum("type")),
		Value:              fr.Decimal("value"),
		MinPurchase:        fr.OptionalDecimal("min_purchase"),
		MaxUses:            fr.OptionalInt("max_uses"),
		ValidFrom:          fr.OptionalDate("valid_from"),
		ValidUntil:         fr.OptionalDate("valid_until"),
		ApplicableServices: pq.StringArray(fr.List("applicable_services")),
		Active:             fr.Bool("active"),
	}
	if err := fr.Err(); err != nil {
		return Failed("%v", err)
	}

	existing, err := i.repo.FindByCode(ctx, tenantID, promo.Code)
	if out, stop := duplicateCheck(existing != nil, err, i.schema.Label, promo.Code); stop {
		return out
	}

	created, err := i.repo.Create(ctx, promo)
	if err != nil {
		return persistFailure(err, i.schema.Label, promo.Code)
	}
	return Created(created.ID)
}

const (
	minRating = 1
	maxRating = 5
)

// reviewImporter links the review to a user and a service when they can be
// found. Neither link is required.
type reviewImporter struct {
	schema   *Schema
	repo     ports.ReviewRepository
	resolver *Resolver
}

func (i *reviewImporter) Import(ctx context.Context, tenantID uuid.UUID, row Row) Outcome {
	fr := newFieldReader(i.schema, row)
	review := &domain.Review{
		TenantID:   tenantID,
		AuthorName: fr.String("author_name"),
		Rating:     fr.Int("rating"),
		Comment:    fr.OptionalString("comment"),
		Published:  fr.Bool("published"),
		ReviewedAt: fr.OptionalDate("date"),
	}
	userEmail := fr.Email("user_email")
	serviceName := fr.String("service_name")
	if err := fr.Err(); err != nil {
		return Failed("%v", err)
	}
	if review.Rating < minRating || review.Rating > maxRating {
		return Failed("invalid rating: %d (expected %d to %d)", review.Rating, minRating, maxRating)
	}

	userID, err := i.resolver.Resolve(ctx, tenantID, domain.EntityUsers, "email", userEmail)
	if err != nil {
		return Failed("could not look up user %s: %v", userEmail, err)
	}
	serviceID, err := i.resolver.Resolve(ctx, tenantID, domain.EntityServices, "name", serviceName)
	if err != nil {
		return Failed("could not look up service %s: %v", serviceName, err)
	}
	review.UserID = userID
	review.ServiceID = serviceID

	// Rating-only reviews carry no natural key and are always created.
	if review.Comment != nil {
		existing, err := i.repo.FindByAuthorAndComment(ctx, tenantID, review.AuthorName, *review.Comment)
		if out, stop := duplicateCheck(existing != nil, err, i.schema.Label, review.AuthorName); stop {
			return out
		}
	}

	created, err := i.repo.Create(ctx, review)
	if err != nil {
		return persistFailure(err, i.schema.Label, review.AuthorName)
	}
	return Created(created.ID)
}

// newsletterImporter stamps subscribers without a subscribed_at date with the
// import time.
type newsletterImporter struct {
	schema *Schema
	repo   ports.NewsletterRepository
	now    func() time.Time
}

func (i *newsletterImporter) Import(ctx context.Context, tenantID uuid.UUID, row Row) Outcome {
	fr := newFieldReader(i.schema, row)
	subscriber := &domain.NewsletterSubscriber{
		TenantID: tenantID,
		Email:    fr.Email("email"),
		Name:     fr.OptionalString("name"),
		Status:   domain.SubscriberStatus(fr.Enum("status")),
		Source:   fr.OptionalString("source"),
	}
	subscriber.SubscribedAt = i.now().UTC()
	if at := fr.OptionalDate("subscribed_at"); at != nil {
		subscriber.SubscribedAt = *at
	}
	if err := fr.Err(); err != nil {
		return Failed("%v", err)
	}

	existing, err := i.repo.FindByEmail(ctx, tenantID, subscriber.Email)
	if out, stop := duplicateCheck(existing != nil, err, i.schema.Label, subscriber.Email); stop {
		return out
	}

	created, err := i.repo.Create(ctx, subscriber)
	if err != nil {
		return persistFailure(err, i.schema.Label, subscriber.Email)
	}
	return Created(created.ID)
}
