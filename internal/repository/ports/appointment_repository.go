package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

type AppointmentRepository interface {
	FindBySlot(ctx context.Context, tenantID, clientID, serviceID uuid.UUID, startAt time.Time) (*domain.Appointment, error)
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}
