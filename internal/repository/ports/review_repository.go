package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type ReviewRepository interface {
	FindByAuthorAndComment(ctx context.Context, tenantID uuid.UUID, author string, comment string) (*domain.Review, error)
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
}
