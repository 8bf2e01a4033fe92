package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type PromoCodeRepository interface {
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*domain.PromoCode, error)
	Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
}
