package importer

import (
	"fmt"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
)

// Registry is the immutable set of importable entity schemas. Build it once
// with NewRegistry and share it by pointer.
type Registry struct {
	schemas map[domain.EntityType]*Schema
	order   []domain.EntityType
}

func NewRegistry() *Registry {
	r := &Registry{schemas: make(map[domain.EntityType]*Schema)}
	for _, s := range builtinSchemas() {
		r.register(s)
	}
	return r
}

func (r *Registry) register(s Schema) {
	if _, exists := r.schemas[s.Type]; exists {
		panic(fmt.Sprintf("schema already registered: %s", s.Type))
	}
	schema := s
	r.schemas[s.Type] = &schema
	r.order = append(r.order, s.Type)
}

// Lookup returns the schema for t, or false when t is not importable.
func (r *Registry) Lookup(t domain.EntityType) (*Schema, bool) {
	s, ok := r.schemas[t]
	return s, ok
}

// Types returns the registered tags in registration order.
func (r *Registry) Types() []domain.EntityType {
	out := make([]domain.EntityType, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) All() []*Schema {
	out := make([]*Schema, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.schemas[t])
	}
	return out
}

func boolField(name, def string) FieldSpec {
	return FieldSpec{Name: name, Kind: KindBool, Default: def, Sample: def}
}

func builtinSchemas() []Schema {
	return []Schema{
		{
			Type:  domain.EntityClients,
			Label: "client",
			Fields: []FieldSpec{
				{Name: "email", Kind: KindEmail, Required: true, Sample: "jane.doe@example.com"},
				{Name: "name", Aliases: []string{"full_name"}, Kind: KindString, Sample: "Jane Doe"},
				{Name: "first_name", Aliases: []string{"firstname", "prenom"}, Kind: KindString},
				{Name: "last_name", Aliases: []string{"lastname", "nom"}, Kind: KindString},
				{Name: "phone", Aliases: []string{"telephone"}, Kind: KindString, Sample: "+33 6 12 34 56 78"},
				{Name: "birth_date", Aliases: []string{"birthdate"}, Kind: KindDate, Sample: "1990-04-12"},
				{Name: "address", Kind: KindString},
				{Name: "notes", Kind: KindString},
				{Name: "loyalty_points", Kind: KindInt, Default: "0", Sample: "0"},
				{Name: "total_spent", Kind: KindDecimal, Default: "0", Sample: "0"},
				{Name: "visit_count", Aliases: []string{"visits"}, Kind: KindInt, Default: "0", Sample: "0"},
			},
			UniqueKey: []string{"email"},
		},
		{
			Type:  domain.EntityServices,
			Label: "service",
			Fields: []FieldSpec{
				{Name: "name", Kind: KindString, Required: true, Sample: "Haircut"},
				{Name: "price", Kind: KindDecimal, Required: true, Sample: "35.00"},
				{Name: "duration", Aliases: []string{"duration_minutes"}, Kind: KindInt, Default: "30", Sample: "45"},
				{Name: "category", Kind: KindString, Sample: "Hair"},
				{Name: "description", Kind: KindString},
				boolField("active", "true"),
				boolField("featured", "false"),
			},
			UniqueKey: []string{"name"},
		},
		{
			Type:  domain.EntityProducts,
			Label: "product",
			Fields: []FieldSpec{
				{Name: "name", Kind: KindString, Required: true, Sample: "Argan oil shampoo"},
				{Name: "price", Kind: KindDecimal, Required: true, Sample: "18.90"},
				{Name: "stock", Aliases: []string{"quantity"}, Kind: KindInt, Default: "0", Sample: "12"},
				{Name: "sku", Kind: KindString, Sample: "SHP-001"},
				{Name: "category", Kind: KindString},
				{Name: "description", Kind: KindString},
				boolField("active", "true"),
				boolField("featured", "false"),
			},
			UniqueKey: []string{"name"},
		},
		{
			Type:  domain.EntityAppointments,
			Label: "appointment",
			Fields: []FieldSpec{
				{Name: "client_email", Aliases: []string{"email", "client"}, Kind: KindEmail, Required: true, Sample: "jane.doe@example.com"},
				{Name: "service_name", Aliases: []string{"service"}, Kind: KindString, Required: true, Sample: "Haircut"},
				{Name: "date", Aliases: []string{"start_at", "start_date"}, Kind: KindDate, Required: true, Sample: "2025-03-14"},
				{Name: "time", Aliases: []string{"start_time", "hour"}, Kind: KindTime, Sample: "14:30"},
				{
					Name:       "status",
					Kind:       KindEnum,
					Default:    string(domain.AppointmentStatusScheduled),
					EnumValues: []string{"scheduled", "confirmed", "completed", "cancelled", "no_show"},
					Sample:     "scheduled",
				},
				{Name: "notes", Kind: KindString},
			},
			UniqueKey: []string{"client_email", "service_name", "date", "time"},
			References: []Reference{
				{Field: "client_email", Target: domain.EntityClients, LookupField: "email", Required: true},
				{Field: "service_name", Target: domain.EntityServices, LookupField: "name", Required: true},
			},
		},
		{
			Type:  domain.EntityFormations,
			Label: "formation",
			Fields: []FieldSpec{
				{Name: "name", Aliases: []string{"title"}, Kind: KindString, Required: true, Sample: "Advanced balayage"},
				{Name: "price", Kind: KindDecimal, Required: true, Sample: "450"},
				{Name: "duration_hours", Aliases: []string{"duration"}, Kind: KindInt, Default: "0", Sample: "14"},
				{
					Name:       "level",
					Kind:       KindEnum,
					Default:    string(domain.FormationLevelBeginner),
					EnumValues: []string{"beginner", "intermediate", "advanced"},
					Sample:     "intermediate",
				},
				{Name: "max_participants", Kind: KindInt, Sample: "8"},
				{Name: "start_date", Kind: KindDate, Sample: "2025-06-02"},
				{Name: "description", Kind: KindString},
				boolField("active", "true"),
				boolField("featured", "false"),
			},
			UniqueKey: []string{"name"},
		},
		{
			Type:  domain.EntityGiftCards,
			Label: "gift card",
			Fields: []FieldSpec{
				{Name: "code", Kind: KindString, Required: true, Sample: "GIFT-2025-0001"},
				{Name: "initial_amount", Aliases: []string{"amount"}, Kind: KindDecimal, Required: true, Sample: "50"},
				{Name: "remaining_amount", Aliases: []string{"balance"}, Kind: KindDecimal, Sample: "50"},
				{Name: "buyer_email", Kind: KindEmail, Sample: "jane.doe@example.com"},
				{Name: "recipient_name", Kind: KindString},
				{Name: "recipient_email", Kind: KindString},
				{Name: "message", Kind: KindString},
				{Name: "expires_at", Aliases: []string{"expiry_date"}, Kind: KindDate, Sample: "2026-12-31"},
				{
					Name:       "status",
					Kind:       KindEnum,
					Default:    string(domain.GiftCardStatusActive),
					EnumValues: []string{"active", "used", "expired"},
					Sample:     "active",
				},
			},
			UniqueKey: []string{"code"},
			References: []Reference{
				{Field: "buyer_email", Target: domain.EntityClients, LookupField: "email"},
			},
		},
		{
			Type:  domain.EntityPackages,
			Label: "package",
			Fields: []FieldSpec{
				{Name: "name", Kind: KindString, Required: true, Sample: "Wellness pack"},
				{Name: "price", Kind: KindDecimal, Required: true, Sample: "120"},
				{Name: "services", Aliases: []string{"service_names"}, Kind: KindList, Sample: "Haircut;Massage"},
				{Name: "session_count", Aliases: []string{"sessions"}, Kind: KindInt, Default: "1", Sample: "5"},
				{Name: "validity_days", Kind: KindInt, Default: "365", Sample: "180"},
				{Name: "description", Kind: KindString},
				boolField("active", "true"),
				boolField("featured", "false"),
			},
			UniqueKey: []string{"name"},
			References: []Reference{
				{Field: "services", Target: domain.EntityServices, LookupField: "name", Verbatim: true},
			},
		},
		{
			Type:  domain.EntityPromoCodes,
			Label: "promo code",
			Fields: []FieldSpec{
				{Name: "code", Kind: KindString, Required: true, Sample: "SPRING10"},
				{
					Name:       "type",
					Aliases:    []string{"discount_type"},
					Kind:       KindEnum,
					Default:    string(domain.PromoCodeTypePercentage),
					EnumValues: []string{"percentage", "fixed"},
					Sample:     "percentage",
				},
				{Name: "value", Aliases: []string{"discount"}, Kind: KindDecimal, Required: true, Sample: "10"},
				{Name: "min_purchase", Kind: KindDecimal},
				{Name: "max_uses", Kind: KindInt, Sample: "100"},
				{Name: "valid_from", Kind: KindDate, Sample: "2025-03-01"},
				{Name: "valid_until", Kind: KindDate, Sample: "2025-05-31"},
				{Name: "applicable_services", Aliases: []string{"services"}, Kind: KindList, Sample: "Haircut;Coloring"},
				{Name: "description", Kind: KindString},
				boolField("active", "true"),
			},
			UniqueKey: []string{"code"},
			References: []Reference{
				{Field: "applicable_services", Target: domain.EntityServices, LookupField: "name", Verbatim: true},
			},
		},
		{
			Type:  domain.EntityReviews,
			Label: "review",
			Fields: []FieldSpec{
				{Name: "rating", Aliases: []string{"note"}, Kind: KindInt, Required: true, Sample: "5"},
				{Name: "author_name", Aliases: []string{"author", "client_name"}, Kind: KindString, Default: "Anonymous", Sample: "Jane D."},
				{Name: "comment", Aliases: []string{"content"}, Kind: KindString, Sample: "Lovely team"},
				{Name: "user_email", Aliases: []string{"email"}, Kind: KindEmail},
				{Name: "service_name", Aliases: []string{"service"}, Kind: KindString, Sample: "Haircut"},
				{Name: "date", Aliases: []string{"reviewed_at"}, Kind: KindDate, Sample: "2025-02-20"},
				boolField("published", "true"),
			},
			UniqueKey: []string{"author_name", "comment"},
			References: []Reference{
				{Field: "user_email", Target: domain.EntityUsers, LookupField: "email"},
				{Field: "service_name", Target: domain.EntityServices, LookupField: "name"},
			},
		},
		{
			Type:  domain.EntityNewsletter,
			Label: "subscriber",
			Fields: []FieldSpec{
				{Name: "email", Kind: KindEmail, Required: true, Sample: "jane.doe@example.com"},
				{Name: "name", Kind: KindString, Sample: "Jane Doe"},
				{
					Name:       "status",
					Kind:       KindEnum,
					Default:    string(domain.SubscriberStatusActive),
					EnumValues: []string{"active", "unsubscribed"},
					Sample:     "active",
				},
				{Name: "source", Kind: KindString, Sample: "website"},
				{Name: "subscribed_at", Kind: KindDate, Sample: "2025-01-10"},
			},
			UniqueKey: []string{"email"},
		},
	}
}
