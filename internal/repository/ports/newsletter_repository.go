package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type NewsletterRepository interface {
	FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.NewsletterSubscriber, error)
	Create(ctx context.Context, subscriber *domain.NewsletterSubscriber) (*domain.NewsletterSubscriber, error)
}
