package importer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
)

type clientInput struct {
	Email         string
	FirstName     *string
	LastName      *string
	Phone         *string
	BirthDate     *time.Time
	Address       *string
	Notes         *string
	LoyaltyPoints int
	TotalSpent    decimal.Decimal
	VisitCount    int
}

func decodeClient(schema *Schema, row Row) (clientInput, error) {
	fr := newFieldReader(schema, row)
	in := clientInput{
		Email:         fr.Email("email"),
		FirstName:     fr.OptionalString("first_name"),
		LastName:      fr.OptionalString("last_name"),
		Phone:         fr.OptionalString("phone"),
		BirthDate:     fr.OptionalDate("birth_date"),
		Address:       fr.OptionalString("address"),
		Notes:         fr.OptionalString("notes"),
		LoyaltyPoints: fr.Int("loyalty_points"),
		TotalSpent:    fr.Decimal("total_spent"),
		VisitCount:    fr.Int("visit_count"),
	}
	if in.FirstName == nil && in.LastName == nil {
		in.FirstName, in.LastName = splitFullName(fr.String("name"))
	}
	return in, fr.Err()
}

type clientImporter struct {
	schema *Schema
	repo   ports.ClientRepository
}

func (i *clientImporter) Import(ctx context.Context, tenantID uuid.UUID, row Row) Outcome {
	in, err := decodeClient(i.schema, row)
	if err != nil {
		return Failed("%v", err)
	}

	existing, err := i.repo.FindByEmail(ctx, tenantID, in.Email)
	if out, stop := duplicateCheck(existing != nil, err, i.schema.Label, in.Email); stop {
		return out
	}

	created, err := i.repo.Create(ctx, &domain.Client{
		TenantID:      tenantID,
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Phone:         in.Phone,
		BirthDate:     in.BirthDate,
		Address:       in.Address,
		Notes:         in.Notes,
		LoyaltyPoints: in.LoyaltyPoints,
		TotalSpent:    in.TotalSpent,
		VisitCount:    in.VisitCount,
	})
	if err != nil {
		return persistFailure(err, i.schema.Label, in.Email)
	}
	return Created(created.ID)
}

func splitFullName(name string) (*string, *string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	first, last, ok := strings.Cut(name, " ")
	if !ok {
		return &first, nil
	}
	last = strings.TrimSpace(last)
	return &first, &last
}
