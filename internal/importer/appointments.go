package importer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
)

type appointmentInput struct {
	ClientEmail string
	ServiceName string
	StartAt     time.Time
	Status      domain.AppointmentStatus
	Notes       *string
}

func decodeAppointment(schema *Schema, row Row) (appointmentInput, error) {
	fr := newFieldReader(schema, row)
	in := appointmentInput{
		ClientEmail: fr.Email("client_email"),
		ServiceName: fr.String("service_name"),
		StartAt:     fr.Date("date"),
		Status:      domain.AppointmentStatus(fr.Enum("status")),
		Notes:       fr.OptionalString("notes"),
	}
	if clock, ok := fr.Clock("time"); ok {
		in.StartAt = startOfDay(in.StartAt).Add(clock)
	}
	return in, fr.Err()
}

// appointmentImporter requires both the client and the service to exist. The
// stored price is always the service's current price; a price column in the
// row is ignored.
type appointmentImporter struct {
	schema   *Schema
	repo     ports.AppointmentRepository
	resolver *Resolver
}

func (i *appointmentImporter) Import(ctx context.Context, tenantID uuid.UUID, row Row) Outcome {
	in, err := decodeAppointment(i.schema, row)
	if err != nil {
		return Failed("%v", err)
	}

	client, err := i.resolver.Client(ctx, tenantID, in.ClientEmail)
	if err != nil {
		return Failed("could not look up client %s: %v", in.ClientEmail, err)
	}
	if client == nil {
		return Failed("client not found: %s", in.ClientEmail)
	}
	service, err := i.resolver.Service(ctx, tenantID, in.ServiceName)
	if err != nil {
		return Failed("could not look up service %s: %v", in.ServiceName, err)
	}
	if service == nil {
		return Failed("service not found: %s", in.ServiceName)
	}

	key := in.ClientEmail + " / " + service.Name + " / " + in.StartAt.Format("2006-01-02 15:04")
	existing, err := i.repo.FindBySlot(ctx, tenantID, client.ID, service.ID, in.StartAt)
	if out, stop := duplicateCheck(existing != nil, err, i.schema.Label, key); stop {
		return out
	}

	created, err := i.repo.Create(ctx, &domain.Appointment{
		TenantID:  tenantID,
		ClientID:  client.ID,
		ServiceID: service.ID,
		StartAt:   in.StartAt,
		EndAt:     in.StartAt.Add(time.Duration(service.DurationMinutes) * time.Minute),
		Status:    in.Status,
		Price:     service.Price,
		Notes:     in.Notes,
	})
	if err != nil {
		return persistFailure(err, i.schema.Label, key)
	}
	return Created(created.ID)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
