package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
)

var (
	ErrUnknownEntityType = errors.New("unknown import type")
	ErrMissingTenant     = errors.New("tenant scope is required")
)

// Importer turns one validated row into a persisted entity. It never returns
// an error: every failure is reported through the Outcome.
type Importer interface {
	Import(ctx context.Context, tenantID uuid.UUID, row Row) Outcome
}

// Pipeline dispatches parsed rows to the importer registered for an entity
// type and aggregates the outcomes. Rows are processed one at a time in input
// order.
type Pipeline struct {
	registry  *Registry
	importers map[domain.EntityType]Importer
}

func NewPipeline(registry *Registry, store ports.Store) *Pipeline {
	resolver := NewResolver(store)
	p := &Pipeline{
		registry:  registry,
		importers: make(map[domain.EntityType]Importer, len(registry.Types())),
	}
	for _, schema := range registry.All() {
		p.importers[schema.Type] = newImporter(schema, store, resolver)
	}
	return p
}

func newImporter(schema *Schema, store ports.Store, resolver *Resolver) Importer {
	switch schema.Type {
	case domain.EntityClients:
		return &clientImporter{schema: schema, repo: store.Clients}
	case domain.EntityServices:
		return &serviceImporter{schema: schema, repo: store.Services}
	case domain.EntityProducts:
		return &productImporter{schema: schema, repo: store.Products}
	case domain.EntityAppointments:
		return &appointmentImporter{schema: schema, repo: store.Appointments, resolver: resolver}
	case domain.EntityFormations:
		return &formationImporter{schema: schema, repo: store.Formations, suffix: randomSlugSuffix}
	case domain.EntityGiftCards:
		return &giftCardImporter{schema: schema, repo: store.GiftCards, resolver: resolver}
	case domain.EntityPackages:
		return &packageImporter{schema: schema, repo: store.Packages}
	case domain.EntityPromoCodes:
		return &promoCodeImporter{schema: schema, repo: store.PromoCodes}
	case domain.EntityReviews:
		return &reviewImporter{schema: schema, repo: store.Reviews, resolver: resolver}
	case domain.EntityNewsletter:
		return &newsletterImporter{schema: schema, repo: store.Newsletter, now: time.Now}
	}
	panic(fmt.Sprintf("no importer for registered type %s", schema.Type))
}

func (p *Pipeline) Registry() *Registry {
	return p.registry
}

// Run imports rows for tenantID. It only fails before touching any row: on an
// unregistered type or a missing tenant.
func (p *Pipeline) Run(ctx context.Context, tenantID uuid.UUID, entity domain.EntityType, rows []Row) (domain.ImportResult, error) {
	if tenantID == uuid.Nil {
		return domain.ImportResult{}, ErrMissingTenant
	}
	schema, ok := p.registry.Lookup(entity)
	imp := p.importers[entity]
	if !ok || imp == nil {
		return domain.ImportResult{}, fmt.Errorf("%w: %s", ErrUnknownEntityType, entity)
	}

	agg := NewAggregator()
	for _, row := range rows {
		if row.IsEmpty() {
			continue
		}
		if missing := schema.MissingRequired(row); len(missing) > 0 {
			agg.Record(row.Line, Failed("%s", missingFieldsMessage(missing)))
			continue
		}
		agg.Record(row.Line, imp.Import(ctx, tenantID, row))
	}
	return agg.Result(), nil
}

// duplicateCheck reports whether a uniqueness lookup ends the row.
func duplicateCheck(exists bool, err error, label, key string) (Outcome, bool) {
	switch {
	case err != nil && !isNotFound(err):
		return Failed("could not check %s %s: %v", label, key, err), true
	case err == nil && exists:
		return Skipped("%s already exists: %s", label, key), true
	}
	return Outcome{}, false
}

func persistFailure(err error, label, key string) Outcome {
	if isUniqueViolation(err) {
		return Skipped("%s already exists: %s", label, key)
	}
	return Failed("could not create %s %s: %v", label, key, err)
}
