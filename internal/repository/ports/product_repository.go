package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type ProductRepository interface {
	FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
}
