package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type ClientRepository interface {
	FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
}
