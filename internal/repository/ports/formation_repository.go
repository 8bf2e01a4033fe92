package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type FormationRepository interface {
	FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*domain.Formation, error)
	Create(ctx context.Context, formation *domain.Formation) (*domain.Formation, error)
}
