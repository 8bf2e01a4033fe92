package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type GiftCardRepository interface {
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.GiftCard, error)
	Create(ctx context.Context, card *domain.GiftCard) (*domain.GiftCard, error)
}
