package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type PackageRepository interface {
	FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Package, error)
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
}
