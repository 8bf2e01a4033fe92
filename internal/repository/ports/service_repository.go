package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type ServiceRepository interface {
	FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
}
