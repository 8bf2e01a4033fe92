package importer

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
)

// catalogInput holds the columns shared by services, products, formations and
// packages.
type catalogInput struct {
	Name        string
	Price       decimal.Decimal
	Description *string
	Active      bool
	Featured    bool
}

func decodeCatalog(fr *fieldReader) catalogInput {
	in := catalogInput{
		Name:        fr.String("name"),
		Price:       fr.Decimal("price"),
		Description: fr.OptionalString("description"),
		Active:      fr.Bool("active"),
	}
	if _, ok := fr.schema.Field("featured"); ok {
		in.Featured = fr.Bool("featured")
	}
	return in
}

type serviceImporter struct {
	schema *Schema
	repo   ports.ServiceRepository
}

func (i *serviceImporter) Import(ctx context.Context, tenantID uuid.UUID, row Row) Outcome {
	fr := newFieldReader(i.schema, row)
	in := decodeCatalog(fr)
	duration := fr.Int("duration")
	category := fr.OptionalString("category")
	if err := fr.Err(); err != nil {
		return Failed("%v", err)
	}

	existing, err := i.repo.FindByName(ctx, tenantID, in.Name)
	if out, stop := duplicateCheck(existing != nil, err, i.schema.Label, in.Name); stop {
		return out
	}

	created, err := i.repo.Create(ctx, &domain.Service{
		TenantID:        tenantID,
		Name:            in.Name,
		Description:     in.Description,
		Category:        category,
		Price:           in.Price,
		DurationMinutes: duration,
		Active:          in.Active,
		Featured:        in.Featured,
	})
	if err != nil {
		return persistFailure(err, i.schema.Label, in.Name)
	}
	return Created(created.ID)
}

type productImporter struct {
	schema *Schema
	repo   ports.ProductRepository
}

func (i *productImporter) Import(ctx context.Context, tenantID uuid.UUID, row Row) Outcome {
	fr := newFieldReader(i.schema, row)
	in := decodeCatalog(fr)
	stock := fr.Int("stock")
	sku := fr.OptionalString("sku")
	category := fr.OptionalString("category")
	if err := fr.Err(); err != nil {
		return Failed("%v", err)
	}

	existing, err := i.repo.FindByName(ctx, tenantID, in.Name)
	if out, stop := duplicateCheck(existing != nil, err, i.schema.Label, in.Name); stop {
		return out
	}

	created, err := i.repo.Create(ctx, &domain.Product{
		TenantID:    tenantID,
		Name:        in.Name,
		Description: in.Description,
		Category:    category,
		SKU:         sku,
		Price:       in.Price,
		Stock:       stock,
		Active:      in.Active,
		Featured:    in.Featured,
	})
	if err != nil {
		return persistFailure(err, i.schema.Label, in.Name)
	}
	return Created(created.ID)
}

type formationImporter struct {
	schema *Schema
	repo   ports.FormationRepository
	suffix func() string
}

func (i *formationImporter) Import(ctx context.Context, tenantID uuid.UUID, row Row) Outcome {
	fr := newFieldReader(i.schema, row)
	in := decodeCatalog(fr)
	formation := &domain.Formation{
		TenantID:        tenantID,
		Name:            in.Name,
		Description:     in.Description,
		Level:           domain.FormationLevel(fr.Enum("level")),
		Price:           in.Price,
		DurationHours:   fr.Int("duration_hours"),
		MaxParticipants: fr.OptionalInt("max_participants"),
		StartDate:       fr.OptionalDate("start_date"),
		Active:          in.Active,
		Featured:        in.Featured,
	}
	if err := fr.Err(); err != nil {
		return Failed("%v", err)
	}

	existing, err := i.repo.FindByName(ctx, tenantID, in.Name)
	if out, stop := duplicateCheck(existing != nil, err, i.schema.Label, in.Name); stop {
		return out
	}

	formation.Slug = buildSlug(in.Name, i.suffix())
	created, err := i.repo.Create(ctx, formation)
	if err != nil {
		return persistFailure(err, i.schema.Label, in.Name)
	}
	return Created(created.ID)
}

type packageImporter struct {
	schema *Schema
	repo   ports.PackageRepository
}

func (i *packageImporter) Import(ctx context.Context, tenantID uuid.UUID, row Row) Outcome {
	fr := newFieldReader(i.schema, row)
	in := decodeCatalog(fr)
	pkg := &domain.Package{
		TenantID:     tenantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Services:     pq.StringArray(fr.List("services")),
		SessionCount: fr.Int("session_count"),
		ValidityDays: fr.Int("validity_days"),
		Active:       in.Active,
		Featured:     in.Featured,
	}
	if err := fr.Err(); err != nil {
		return Failed("%v", err)
	}

	existing, err := i.repo.FindByName(ctx, tenantID, in.Name)
	if out, stop := duplicateCheck(existing != nil, err, i.schema.Label, in.Name); stop {
		return out
	}

	created, err := i.repo.Create(ctx, pkg)
	if err != nil {
		return persistFailure(err, i.schema.Label, in.Name)
	}
	return Created(created.ID)
}
