package ports

import (
	"context"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	FindActive(ctx context.Context, token string) (*domain.Session, error)
	Revoke(ctx context.Context, token string) error
}
